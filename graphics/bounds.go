// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package graphics

import (
	"math"

	"github.com/galvanized-logic/raytrace/math/lin"
)

// BoundingBox is an axis-aligned min/max extent, grounded on the
// engine's physics.Abox (physics/shape.go) — same Sx/Sy/Sz, Lx/Ly/Lz
// shape, generalized here with a ray slab test instead of Abox.Overlaps,
// since a ray tracer tests a box against a line, not against another box.
type BoundingBox struct {
	Min, Max lin.V4
}

// EmptyBounds returns the identity element for Union: min at +Inf,
// max at -Inf, so unioning it with any box yields that box unchanged.
func EmptyBounds() BoundingBox {
	inf := math.Inf(1)
	return BoundingBox{
		Min: lin.V4{X: inf, Y: inf, Z: inf, W: 1},
		Max: lin.V4{X: -inf, Y: -inf, Z: -inf, W: 1},
	}
}

// AddPoint grows the box, if necessary, to contain p, using plain
// componentwise min/max; no Epsilon tolerance is applied here (only
// ContainsPoint applies one).
func (b *BoundingBox) AddPoint(p lin.V4) {
	b.Min.X, b.Max.X = math.Min(b.Min.X, p.X), math.Max(b.Max.X, p.X)
	b.Min.Y, b.Max.Y = math.Min(b.Min.Y, p.Y), math.Max(b.Max.Y, p.Y)
	b.Min.Z, b.Max.Z = math.Min(b.Min.Z, p.Z), math.Max(b.Max.Z, p.Z)
}

// Union grows b, if necessary, to also contain other.
func (b *BoundingBox) Union(other BoundingBox) {
	b.AddPoint(other.Min)
	b.AddPoint(other.Max)
}

// ContainsPoint returns true if p lies within b on every axis, with
// Epsilon tolerance at the boundary.
func (b *BoundingBox) ContainsPoint(p lin.V4) bool {
	return p.X >= b.Min.X-lin.Epsilon && p.X <= b.Max.X+lin.Epsilon &&
		p.Y >= b.Min.Y-lin.Epsilon && p.Y <= b.Max.Y+lin.Epsilon &&
		p.Z >= b.Min.Z-lin.Epsilon && p.Z <= b.Max.Z+lin.Epsilon
}

// IntersectedBy reports whether ray hits b, using the slab method: for
// each axis compute the near/far t where the ray crosses that axis's
// pair of planes, swapping if near > far, then the box is hit iff the
// largest near is <= the smallest far. A direction component of zero
// produces a signed infinite t (rather than dividing by zero) so the
// slab for that axis never narrows the interval on the wrong side.
func (b *BoundingBox) IntersectedBy(r Ray) bool {
	xtMin, xtMax := axisSlab(b.Min.X, b.Max.X, r.Origin.X, r.Direction.X)
	ytMin, ytMax := axisSlab(b.Min.Y, b.Max.Y, r.Origin.Y, r.Direction.Y)
	ztMin, ztMax := axisSlab(b.Min.Z, b.Max.Z, r.Origin.Z, r.Direction.Z)

	tMin := math.Max(xtMin, math.Max(ytMin, ztMin))
	tMax := math.Min(xtMax, math.Min(ytMax, ztMax))
	return tMin <= tMax
}

// axisSlab returns the near, far t values where a ray with the given
// origin/direction component crosses the [min,max] slab on one axis.
// A direction of exactly zero would make a plain division produce NaN
// whenever origin sits exactly on min or max; that case is handled
// explicitly so the slab reports "unconstrained" rather than poisoning
// the max/min reduction in IntersectedBy with NaN.
func axisSlab(min, max, origin, dir float64) (tMin, tMax float64) {
	if dir == 0 {
		if origin >= min-lin.Epsilon && origin <= max+lin.Epsilon {
			return math.Inf(-1), math.Inf(1)
		}
		return math.Inf(1), math.Inf(1)
	}
	t1 := (min - origin) / dir
	t2 := (max - origin) / dir
	if t1 > t2 {
		return t2, t1
	}
	return t1, t2
}

// Transform returns the box that results from mapping all eight corners
// of b through m and re-bounding, the way a composite's cached bounds
// are derived from a transformed child.
func (b BoundingBox) Transform(m *lin.M4) BoundingBox {
	out := EmptyBounds()
	for _, corner := range b.corners() {
		var p lin.V4
		p.MultvM(&corner, m)
		out.AddPoint(p)
	}
	return out
}

func (b BoundingBox) corners() [8]lin.V4 {
	return [8]lin.V4{
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z, W: 1},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z, W: 1},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z, W: 1},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z, W: 1},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z, W: 1},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z, W: 1},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z, W: 1},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z, W: 1},
	}
}
