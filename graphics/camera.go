// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package graphics

import (
	"math"

	"github.com/galvanized-logic/raytrace/math/lin"
)

// Camera turns pixel coordinates into primary rays. It is the CPU
// ray-tracer analog of the engine's own Camera interface (camera.go)
// which cached view/projection matrices for GPU draw calls; here the
// cached values are half_width/half_height/pixel_size instead.
type Camera struct {
	ViewportWidth  int
	ViewportHeight int
	FieldOfView    float64

	transform *lin.M4
	inverse   *lin.M4

	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera returns a camera of the given viewport and field of view,
// looking down the world's -z axis (identity transform) until
// SetTransform is called.
func NewCamera(width, height int, fov float64) *Camera {
	c := &Camera{ViewportWidth: width, ViewportHeight: height, FieldOfView: fov}
	c.SetTransform(lin.M4I)
	return c
}

// SetTransform assigns the camera's world-to-camera transform and
// recomputes the cached inverse and viewport geometry.
func (c *Camera) SetTransform(m *lin.M4) {
	cp := &lin.M4{}
	cp.Set(m)
	c.transform = cp
	inv, ok := (&lin.M4{}).Inverse(cp)
	if !ok {
		panic("graphics: singular camera transform has no inverse")
	}
	c.inverse = inv
	c.recompute()
}

// recompute derives half_width, half_height, and pixel_size from the
// current viewport and field of view, per §4.10's formulas.
func (c *Camera) recompute() {
	halfView := math.Tan(c.FieldOfView / 2)
	aspect := float64(c.ViewportWidth) / float64(c.ViewportHeight)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = 2 * c.halfWidth / float64(c.ViewportWidth)
}

// CastRay returns the primary ray through pixel (px, py), walking the
// pixel's camera-space center and the camera origin through the
// transform's inverse into world space.
func (c *Camera) CastRay(px, py int) Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := *lin.Point(worldX, worldY, -1)
	origin := *lin.Point(0, 0, 0)

	var pixelWorld, originWorld lin.V4
	pixelWorld.MultvM(&pixel, c.inverse)
	originWorld.MultvM(&origin, c.inverse)

	var direction lin.V4
	direction.Sub(&pixelWorld, &originWorld)
	direction.Unit()

	return NewRay(originWorld, direction)
}
