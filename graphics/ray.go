// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package graphics implements the ray tracer core: the scene tree of
// transformed primitives, the intersection and shading pipeline, and
// the camera that turns pixels into primary rays. It is the CPU render
// path analog of the engine's old GPU scene graph (pov.go, camera.go,
// part.go) — transforms and parent links instead of draw calls.
package graphics

import "github.com/galvanized-logic/raytrace/math/lin"

// Ray is a parametric line origin + t*direction. Both origin and
// direction are V4 tuples; origin.W is always 1, direction.W always 0.
type Ray struct {
	Origin    lin.V4
	Direction lin.V4
}

// NewRay returns a Ray from a point origin and a direction vector.
func NewRay(origin, direction lin.V4) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at distance t along the ray:
// origin + direction*t.
func (r Ray) Position(t float64) lin.V4 {
	var scaled, pos lin.V4
	scaled.Scale(&r.Direction, t)
	pos.Add(&r.Origin, &scaled)
	return pos
}

// Transform returns the ray mapped through m: the origin and direction
// are each multiplied by m, so a translation in m moves the origin but
// leaves the direction (W==0) untouched.
func (r Ray) Transform(m *lin.M4) Ray {
	var origin, direction lin.V4
	origin.MultvM(&r.Origin, m)
	direction.MultvM(&r.Direction, m)
	return Ray{Origin: origin, Direction: direction}
}
