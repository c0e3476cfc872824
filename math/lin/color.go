// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "math"

// Color is an RGB triple of real numbers, unclamped during computation,
// clamped and quantized only at export. Same shape as the engine's own
// rgb type in material.go, widened to float64 and given the componentwise
// arithmetic and Hadamard product a shader needs.
type Color struct {
	R, G, B float64
}

// Black is a convenience reference color. Never mutate it.
var Black = &Color{0, 0, 0}

// White is a convenience reference color. Never mutate it.
var White = &Color{1, 1, 1}

// Add (+) updates c to be the componentwise sum of a and b.
func (c *Color) Add(a, b *Color) *Color {
	c.R, c.G, c.B = a.R+b.R, a.G+b.G, a.B+b.B
	return c
}

// Sub (-) updates c to be the componentwise difference of a and b.
func (c *Color) Sub(a, b *Color) *Color {
	c.R, c.G, c.B = a.R-b.R, a.G-b.G, a.B-b.B
	return c
}

// Scale (*) updates c to be a with each component multiplied by s.
func (c *Color) Scale(a *Color, s float64) *Color {
	c.R, c.G, c.B = a.R*s, a.G*s, a.B*s
	return c
}

// Mult (Hadamard, componentwise *) updates c to be a and b multiplied
// element by element — the way two lights or a light and a surface
// color combine.
func (c *Color) Mult(a, b *Color) *Color {
	c.R, c.G, c.B = a.R*b.R, a.G*b.G, a.B*b.B
	return c
}

// Aeq (~=) almost-equals returns true if all three components of c are
// within Epsilon of the corresponding components of a.
func (c *Color) Aeq(a *Color) bool {
	return Aeq(c.R, a.R) && Aeq(c.G, a.G) && Aeq(c.B, a.B)
}

// Clamped01 returns c with each component restricted to [0,1].
func (c *Color) Clamped01() Color {
	return Color{Clamp(c.R, 0, 1), Clamp(c.G, 0, 1), Clamp(c.B, 0, 1)}
}

// Quantize returns c clamped to [0,1] and scaled/rounded to [0,255],
// the conversion spec.md's PPM writer applies on export.
func (c *Color) Quantize() (r, g, b int) {
	clamped := c.Clamped01()
	round := func(v float64) int { return int(math.Round(v * 255)) }
	return round(clamped.R), round(clamped.G), round(clamped.B)
}
