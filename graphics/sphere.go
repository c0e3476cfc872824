// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package graphics

import "math"

// intersectSphere solves the quadratic for a ray against the unit
// sphere centered at the object-space origin: with sphereToRay =
// local.Origin (the vector from the sphere's center to the ray's
// origin), a = dir.dir, b = 2*dir.sphereToRay, c = sphereToRay.sphereToRay-1.
func intersectSphere(o *Object, local Ray) []Intersection {
	sphereToRay := local.Origin
	sphereToRay.W = 0

	a := local.Direction.Dot(&local.Direction)
	b := 2 * local.Direction.Dot(&sphereToRay)
	c := sphereToRay.Dot(&sphereToRay) - 1

	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)
	return []Intersection{{T: t1, Object: o}, {T: t2, Object: o}}
}
