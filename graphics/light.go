// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package graphics

import "github.com/galvanized-logic/raytrace/math/lin"

// PointLight is a single point source of light with no size or
// falloff, generalized from the engine's own Light (light.go), which
// only ever carried a color since real-time lighting got its position
// from the Pov it was attached to.
type PointLight struct {
	Intensity lin.Color
	Position  lin.V4
}

// NewPointLight returns a point light of the given intensity at position.
func NewPointLight(position lin.V4, intensity lin.Color) PointLight {
	return PointLight{Intensity: intensity, Position: position}
}
