// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// tuple.go adds the handful of V4 operations a ray tracer needs that a
// real-time 3D engine never did: treating W as the point/direction tag,
// cross product, reflection, and approximate equality.

// Point returns a new V4 at x, y, z with W set to 1, i.e. an affine
// point that translates under an M4.
func Point(x, y, z float64) *V4 { return &V4{X: x, Y: y, Z: z, W: 1} }

// Vector returns a new V4 at x, y, z with W set to 0, i.e. a direction
// that is unaffected by translation.
func Vector(x, y, z float64) *V4 { return &V4{X: x, Y: y, Z: z, W: 0} }

// IsPoint returns true if v carries the W==1 point tag.
func (v *V4) IsPoint() bool { return v.W == 1 }

// IsVector returns true if v carries the W==0 direction tag.
func (v *V4) IsVector() bool { return v.W == 0 }

// Aeq (~=) almost-equals returns true if all elements of v are within
// Epsilon of the corresponding elements of a. Same purpose as V3.Aeq.
func (v *V4) Aeq(a *V4) bool {
	return Aeq(v.X, a.X) && Aeq(v.Y, a.Y) && Aeq(v.Z, a.Z) && Aeq(v.W, a.W)
}

// Cross updates v to be the cross product of vectors a and b, ignoring
// W (cross product is only meaningful for directions, W==0). Same
// behaviour as V3.Cross.
func (v *V4) Cross(a, b *V4) *V4 {
	v.X, v.Y, v.Z = a.Y*b.Z-a.Z*b.Y, a.Z*b.X-a.X*b.Z, a.X*b.Y-a.Y*b.X
	v.W = 0
	return v
}

// Reflect updates v to be vector a reflected about normal, following
// the standard reflection identity r = a - normal*2*dot(a, normal).
// W is preserved from a so a direction reflects to a direction.
func (v *V4) Reflect(a, normal *V4) *V4 {
	d := 2 * a.Dot(normal)
	v.X, v.Y, v.Z = a.X-normal.X*d, a.Y-normal.Y*d, a.Z-normal.Z*d
	v.W = a.W
	return v
}
