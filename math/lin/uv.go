// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "math"

// UV is a 2D texture coordinate, the output of a TextureMap and the
// sampling space of a Pattern2D texture.
type UV struct {
	U, V float64
}

// Floor returns the integer lattice cell (floor(U), floor(V)) containing
// the coordinate, used by the stripe/ring/checker pattern rules.
func (uv *UV) Floor() (u, v int) {
	return int(math.Floor(uv.U)), int(math.Floor(uv.V))
}

// Fract returns the fractional part of U, used by the gradient pattern.
func (uv *UV) Fract() float64 {
	return uv.U - math.Floor(uv.U)
}

// Apply returns the UV obtained by treating uv as a 2D homogeneous point
// (u, v, 1) and multiplying by 3x3 matrix m (row-vector convention,
// matching V3/V4.MultvM elsewhere in this package).
func (uv *UV) Apply(m *M3) UV {
	x := uv.U*m.Xx + uv.V*m.Yx + m.Zx
	y := uv.U*m.Xy + uv.V*m.Yy + m.Zy
	return UV{U: x, V: y}
}
