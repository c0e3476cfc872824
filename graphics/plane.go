// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package graphics

import "github.com/galvanized-logic/raytrace/math/lin"

// intersectPlane intersects local against the xz plane (y == 0). A ray
// parallel to the plane (direction.Y ~= 0) never hits it, including a
// ray that lies exactly in the plane.
func intersectPlane(o *Object, local Ray) []Intersection {
	if lin.AeqZ(local.Direction.Y) {
		return nil
	}
	t := -local.Origin.Y / local.Direction.Y
	return []Intersection{{T: t, Object: o}}
}
