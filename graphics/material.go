// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package graphics

import "github.com/galvanized-logic/raytrace/math/lin"

// Material is the surface's optical properties plus its texture.
// Grounded on the engine's own material.go (kd/ka/ks + transparency)
// generalized from a GPU-shader-consumed triple of colors to the
// single Phong-parameter set a CPU shader evaluates directly.
type Material struct {
	Texture *Texture

	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64

	Reflectivity    float64
	Transparency    float64
	RefractiveIndex float64
}

// NewMaterial returns the spec.md default material: a white solid
// texture, ambient 0.1, diffuse 0.9, specular 0.9, shininess 200,
// reflectivity 0, transparency 0, refractive index 1 (air).
func NewMaterial() *Material {
	return &Material{
		Texture:         NewSolid(lin.Color{R: 1, G: 1, B: 1}),
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflectivity:    0,
		Transparency:    0,
		RefractiveIndex: 1,
	}
}

// Glass returns a material preset with full transparency and a glass
// refractive index, leaving the other Phong terms at NewMaterial's
// defaults.
func Glass() *Material {
	m := NewMaterial()
	m.Transparency = 1
	m.RefractiveIndex = 1.5
	return m
}

// Aeq (~=) almost-equals compares every real-valued property with
// Epsilon tolerance and the texture structurally, via Texture.Aeq, so
// two independently-built materials with the same texture values
// compare equal even though they never share a Texture pointer.
func (m *Material) Aeq(o *Material) bool {
	return m.Texture.Aeq(o.Texture) &&
		lin.Aeq(m.Ambient, o.Ambient) &&
		lin.Aeq(m.Diffuse, o.Diffuse) &&
		lin.Aeq(m.Specular, o.Specular) &&
		lin.Aeq(m.Shininess, o.Shininess) &&
		lin.Aeq(m.Reflectivity, o.Reflectivity) &&
		lin.Aeq(m.Transparency, o.Transparency) &&
		lin.Aeq(m.RefractiveIndex, o.RefractiveIndex)
}
