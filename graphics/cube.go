// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package graphics

import (
	"math"

	"github.com/galvanized-logic/raytrace/math/lin"
)

// intersectCube applies the slab test (the same algorithm as
// BoundingBox.IntersectedBy) to the unit cube [-1,1]^3, returning both
// crossing t values when the three slab intervals overlap, and nothing
// when they do not.
func intersectCube(o *Object, local Ray) []Intersection {
	xtMin, xtMax := cubeAxis(local.Origin.X, local.Direction.X)
	ytMin, ytMax := cubeAxis(local.Origin.Y, local.Direction.Y)
	ztMin, ztMax := cubeAxis(local.Origin.Z, local.Direction.Z)

	tMin := math.Max(xtMin, math.Max(ytMin, ztMin))
	tMax := math.Min(xtMax, math.Min(ytMax, ztMax))
	if tMin > tMax {
		return nil
	}
	return []Intersection{{T: tMin, Object: o}, {T: tMax, Object: o}}
}

// cubeAxis mirrors BoundingBox's axisSlab but against the fixed [-1,1]
// slab: a zero direction component reports the axis as unconstrained
// when origin already lies within the slab, else a guaranteed miss,
// the same NaN-avoidance as the general bounding box slab test.
func cubeAxis(origin, dir float64) (tMin, tMax float64) {
	if dir == 0 {
		if origin >= -1-lin.Epsilon && origin <= 1+lin.Epsilon {
			return math.Inf(-1), math.Inf(1)
		}
		return math.Inf(1), math.Inf(1)
	}
	t1 := (-1 - origin) / dir
	t2 := (1 - origin) / dir
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return t1, t2
}

// cubeNormal returns the outward normal at object-space point p on the
// surface of the unit cube: the axis with the largest absolute
// coordinate identifies which face p lies on.
func cubeNormal(p lin.V4) lin.V4 {
	absX, absY, absZ := math.Abs(p.X), math.Abs(p.Y), math.Abs(p.Z)
	maxc := math.Max(absX, math.Max(absY, absZ))
	switch {
	case maxc == absX:
		return *lin.Vector(p.X, 0, 0)
	case maxc == absY:
		return *lin.Vector(0, p.Y, 0)
	default:
		return *lin.Vector(0, 0, p.Z)
	}
}
