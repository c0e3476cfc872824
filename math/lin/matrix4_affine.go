// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// matrix4_affine.go extends M4 with the general 4x4 inverse and the affine
// transform factories a ray tracer needs: translation, scaling, the three
// axis rotations, shearing, and a look-from/look-to view transform. The
// translation, scaling, rotation and shearing factories fill M4 fields
// directly the same way Ortho/Persp/PerspInv do; View composes a
// translation with an orientation matrix.

import "math"

// Det returns the determinant of m using cofactor expansion along row X.
// Same purpose as M3.Det — see its comment for background.
func (m *M4) Det() float64 {
	return m.Xx*m.Cof(0, 0) + m.Xy*m.Cof(0, 1) + m.Xz*m.Cof(0, 2) + m.Xw*m.Cof(0, 3)
}

// Cof returns the cofactor of m for the given row, col (0-3), i.e. the
// signed determinant of the 3x3 submatrix formed by removing that row
// and column. Same purpose as M3.Cof.
func (m *M4) Cof(row, col int) float64 {
	rows := [4][4]float64{
		{m.Xx, m.Xy, m.Xz, m.Xw},
		{m.Yx, m.Yy, m.Yz, m.Yw},
		{m.Zx, m.Zy, m.Zz, m.Zw},
		{m.Wx, m.Wy, m.Wz, m.Ww},
	}
	var sub [3][3]float64
	si := 0
	for i := 0; i < 4; i++ {
		if i == row {
			continue
		}
		sj := 0
		for j := 0; j < 4; j++ {
			if j == col {
				continue
			}
			sub[si][sj] = rows[i][j]
			sj++
		}
		si++
	}
	minor := sub[0][0]*(sub[1][1]*sub[2][2]-sub[1][2]*sub[2][1]) -
		sub[0][1]*(sub[1][0]*sub[2][2]-sub[1][2]*sub[2][0]) +
		sub[0][2]*(sub[1][0]*sub[2][1]-sub[1][1]*sub[2][0])
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}

// Inverse updates m to be the inverse of matrix a using the adjoint
// (transposed cofactor matrix) divided by the determinant. Matrix m is
// unchanged, and ok is false, if a has a zero determinant — a scene
// transform with no inverse is a scene authoring error the caller
// surfaces, not something this package recovers from.
func (m *M4) Inverse(a *M4) (inv *M4, ok bool) {
	det := a.Det()
	if AeqZ(det) {
		return m, false
	}
	s := 1 / det
	var c [4][4]float64
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			c[row][col] = a.Cof(row, col) * s
		}
	}
	// adjoint is the transpose of the cofactor matrix.
	m.Xx, m.Xy, m.Xz, m.Xw = c[0][0], c[1][0], c[2][0], c[3][0]
	m.Yx, m.Yy, m.Yz, m.Yw = c[0][1], c[1][1], c[2][1], c[3][1]
	m.Zx, m.Zy, m.Zz, m.Zw = c[0][2], c[1][2], c[2][2], c[3][2]
	m.Wx, m.Wy, m.Wz, m.Ww = c[0][3], c[1][3], c[2][3], c[3][3]
	return m, true
}

// Translation returns a new M4 that translates a point by x, y, z and
// leaves a direction (W==0) unchanged. Row-vector convention: the
// translation lives in the W row, consistent with TranslateTM/TranslateMT.
func Translation(x, y, z float64) *M4 {
	m := &M4{}
	m.Set(M4I)
	m.Wx, m.Wy, m.Wz = x, y, z
	return m
}

// Scaling returns a new M4 that scales by sx, sy, sz.
func Scaling(sx, sy, sz float64) *M4 {
	m := &M4{}
	m.Set(M4I)
	m.Xx, m.Yy, m.Zz = sx, sy, sz
	return m
}

// RotationX returns a new M4 rotating rad radians around the X axis.
// Fields are the row-vector (v*M) transpose of the usual column-vector
// rotation matrix: v.MultvM(v, RotationX(r)) rotates v the same way
// M3.SetAa(1,0,0,r) would for a column-vector library.
func RotationX(rad float64) *M4 {
	m := &M4{}
	m.Set(M4I)
	c, s := math.Cos(rad), math.Sin(rad)
	m.Yy, m.Yz = c, s
	m.Zy, m.Zz = -s, c
	return m
}

// RotationY returns a new M4 rotating rad radians around the Y axis.
func RotationY(rad float64) *M4 {
	m := &M4{}
	m.Set(M4I)
	c, s := math.Cos(rad), math.Sin(rad)
	m.Xx, m.Xz = c, -s
	m.Zx, m.Zz = s, c
	return m
}

// RotationZ returns a new M4 rotating rad radians around the Z axis.
func RotationZ(rad float64) *M4 {
	m := &M4{}
	m.Set(M4I)
	c, s := math.Cos(rad), math.Sin(rad)
	m.Xx, m.Xy = c, s
	m.Yx, m.Yy = -s, c
	return m
}

// Shearing returns a new M4 that shears x in proportion to y and z (xy,
// xz), y in proportion to x and z (yx, yz), and z in proportion to x and
// y (zx, zy) — the six values in spec.md's "skew" transform record, in
// that order.
func Shearing(xy, xz, yx, yz, zx, zy float64) *M4 {
	m := &M4{}
	m.Set(M4I)
	m.Xy, m.Xz = yx, zx
	m.Yx, m.Yz = xy, zy
	m.Zx, m.Zy = xz, yz
	return m
}

// View returns the world-to-camera matrix looking from eye toward
// center with the given up direction. Built the way every view matrix
// is: move the world so eye sits at the origin, then reorient so
// center lies down -z, applied in that order under row-vector
// convention (translate first, orient second).
func View(eye, center, up *V3) *M4 {
	forward := (&V3{}).Sub(center, eye)
	forward.Unit()
	upn := (&V3{}).Set(up)
	upn.Unit()
	left := (&V3{}).Cross(forward, upn)
	left.Unit()
	trueUp := (&V3{}).Cross(left, forward)

	orient := &M4{}
	orient.Set(M4I)
	orient.Xx, orient.Xy, orient.Xz = left.X, trueUp.X, -forward.X
	orient.Yx, orient.Yy, orient.Yz = left.Y, trueUp.Y, -forward.Y
	orient.Zx, orient.Zy, orient.Zz = left.Z, trueUp.Z, -forward.Z

	view := Translation(-eye.X, -eye.Y, -eye.Z)
	return (&M4{}).Mult(view, orient)
}
