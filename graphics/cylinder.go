// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package graphics

import (
	"math"

	"github.com/galvanized-logic/raytrace/math/lin"
)

// intersectCylinder intersects local against the infinite-radius-1
// cylinder wall x^2+z^2=1, clipped to (o.YMin, o.YMax) exclusive, plus
// its two end caps when o.Closed.
func intersectCylinder(o *Object, local Ray) []Intersection {
	var xs []Intersection

	a := local.Direction.X*local.Direction.X + local.Direction.Z*local.Direction.Z
	if !lin.AeqZ(a) {
		b := 2*local.Origin.X*local.Direction.X + 2*local.Origin.Z*local.Direction.Z
		c := local.Origin.X*local.Origin.X + local.Origin.Z*local.Origin.Z - 1

		disc := b*b - 4*a*c
		if disc < 0 {
			return nil
		}
		sq := math.Sqrt(disc)
		t0 := (-b - sq) / (2 * a)
		t1 := (-b + sq) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		y0 := local.Origin.Y + t0*local.Direction.Y
		if o.YMin < y0 && y0 < o.YMax {
			xs = append(xs, Intersection{T: t0, Object: o})
		}
		y1 := local.Origin.Y + t1*local.Direction.Y
		if o.YMin < y1 && y1 < o.YMax {
			xs = append(xs, Intersection{T: t1, Object: o})
		}
	}
	xs = append(xs, intersectCaps(o, local, 1)...)
	return xs
}

// checkCap reports whether the ray at parameter t lies within the
// radius-r disc at the cap's y plane.
func checkCap(local Ray, t, r float64) bool {
	x := local.Origin.X + t*local.Direction.X
	z := local.Origin.Z + t*local.Direction.Z
	return x*x+z*z <= r*r+lin.Epsilon
}

// intersectCaps handles the flat end caps shared by cylinders (radius
// constant at capRadius) and cones (radius equal to |y| at each cap).
func intersectCaps(o *Object, local Ray, capRadius float64) []Intersection {
	var xs []Intersection
	if !o.Closed || lin.AeqZ(local.Direction.Y) {
		return xs
	}
	radiusAt := func(y float64) float64 {
		if o.Kind == KindCone {
			return math.Abs(y)
		}
		return capRadius
	}
	tMin := (o.YMin - local.Origin.Y) / local.Direction.Y
	if checkCap(local, tMin, radiusAt(o.YMin)) {
		xs = append(xs, Intersection{T: tMin, Object: o})
	}
	tMax := (o.YMax - local.Origin.Y) / local.Direction.Y
	if checkCap(local, tMax, radiusAt(o.YMax)) {
		xs = append(xs, Intersection{T: tMax, Object: o})
	}
	return xs
}

// cylinderNormal returns the outward normal at object-space point p: a
// cap normal (straight up or down) if p is on a flat end within
// Epsilon of o.YMin/o.YMax, else the radial wall normal.
func cylinderNormal(o *Object, p lin.V4) lin.V4 {
	dist := p.X*p.X + p.Z*p.Z
	if dist < 1 && p.Y >= o.YMax-lin.Epsilon {
		return *lin.Vector(0, 1, 0)
	}
	if dist < 1 && p.Y <= o.YMin+lin.Epsilon {
		return *lin.Vector(0, -1, 0)
	}
	return *lin.Vector(p.X, 0, p.Z)
}
