// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// matrix3_affine.go repurposes M3 as a 2D homogeneous affine transform
// (u, v, 1) for Pattern2D texture coordinates, the same way M4 is a 3D
// homogeneous affine transform for (x, y, z, 1) object-space points.
// The translation component lives in the Z row (Zx, Zy), mirroring how
// M4's translation lives in the W row.

import "math"

// Translation2D returns a new M3 translating a UV point by u, v.
func Translation2D(u, v float64) *M3 {
	m := &M3{}
	m.Set(M3I)
	m.Zx, m.Zy = u, v
	return m
}

// Scaling2D returns a new M3 scaling a UV point by su, sv.
func Scaling2D(su, sv float64) *M3 {
	m := &M3{}
	m.Set(M3I)
	m.Xx, m.Yy = su, sv
	return m
}

// Rotation2D returns a new M3 rotating rad radians in the UV plane.
func Rotation2D(rad float64) *M3 {
	m := &M3{}
	m.Set(M3I)
	c, s := math.Cos(rad), math.Sin(rad)
	m.Xx, m.Xy = c, s
	m.Yx, m.Yy = -s, c
	return m
}

// Inverse updates m to be the inverse of a, reusing M3.Inv (already a
// general 3x3 adjoint/determinant inverse, equally valid whether the
// matrix represents a 3D rotation basis or a 2D homogeneous transform).
// Matrix m is unchanged, and ok is false, if a has a zero determinant.
func (m *M3) Inverse(a *M3) (inv *M3, ok bool) {
	det := a.Det()
	if AeqZ(det) {
		return m, false
	}
	return m.Inv(a), true
}
