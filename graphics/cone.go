// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package graphics

import (
	"math"

	"github.com/galvanized-logic/raytrace/math/lin"
)

// intersectCone intersects local against the double-napped cone
// x^2+z^2=y^2, clipped to (o.YMin, o.YMax) exclusive, plus caps. The
// quadratic's "a" coefficient can vanish when the ray is parallel to
// one of the cone's slanted surfaces, in which case the equation
// degenerates to linear and is solved directly.
func intersectCone(o *Object, local Ray) []Intersection {
	var xs []Intersection

	a := local.Direction.X*local.Direction.X - local.Direction.Y*local.Direction.Y + local.Direction.Z*local.Direction.Z
	b := 2*local.Origin.X*local.Direction.X - 2*local.Origin.Y*local.Direction.Y + 2*local.Origin.Z*local.Direction.Z
	c := local.Origin.X*local.Origin.X - local.Origin.Y*local.Origin.Y + local.Origin.Z*local.Origin.Z

	switch {
	case lin.AeqZ(a) && lin.AeqZ(b):
		// Ray is parallel to one of the cone's surface lines and the
		// quadratic has no linear term either; no wall hit is reported.
	case lin.AeqZ(a):
		t := -c / (2 * b)
		xs = append(xs, coneWallHit(o, local, t)...)
	default:
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
		xs = append(xs, coneWallHit(o, local, t0)...)
		xs = append(xs, coneWallHit(o, local, t1)...)
	}

	xs = append(xs, intersectCaps(o, local, 0)...)
	return xs
}

func coneWallHit(o *Object, local Ray, t float64) []Intersection {
	y := local.Origin.Y + t*local.Direction.Y
	if o.YMin < y && y < o.YMax {
		return []Intersection{{T: t, Object: o}}
	}
	return nil
}

// coneNormal returns the outward normal at object-space point p: a cap
// normal when p sits on a flat end, else the slanted wall normal
// y = sqrt(x^2+z^2), signed to slope away from the apex on p's nap.
func coneNormal(o *Object, p lin.V4) lin.V4 {
	dist := p.X*p.X + p.Z*p.Z
	if dist < p.Y*p.Y && p.Y >= o.YMax-lin.Epsilon {
		return *lin.Vector(0, 1, 0)
	}
	if dist < p.Y*p.Y && p.Y <= o.YMin+lin.Epsilon {
		return *lin.Vector(0, -1, 0)
	}
	y := math.Sqrt(dist)
	if p.Y > 0 {
		y = -y
	}
	return *lin.Vector(p.X, y, p.Z)
}
