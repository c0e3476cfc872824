// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package graphics

import "github.com/galvanized-logic/raytrace/math/lin"

// intersectTriangle applies the Möller–Trumbore algorithm using the
// edges precomputed in NewTriangle (edgeA = B-A, edgeB = C-A). A
// near-zero determinant means the ray runs parallel to the triangle's
// plane; u or v outside [0,1] (or their sum exceeding 1) means the hit
// point falls outside the triangle.
func intersectTriangle(o *Object, local Ray) []Intersection {
	var dirCrossE2 lin.V4
	dirCrossE2.Cross(&local.Direction, &o.edgeB)
	det := o.edgeA.Dot(&dirCrossE2)
	if lin.AeqZ(det) {
		return nil
	}
	f := 1 / det

	var p1 lin.V4
	p1.Sub(&local.Origin, &o.A)
	u := f * p1.Dot(&dirCrossE2)
	if u < 0 || u > 1 {
		return nil
	}

	var originCrossE1 lin.V4
	originCrossE1.Cross(&p1, &o.edgeA)
	v := f * local.Direction.Dot(&originCrossE1)
	if v < 0 || u+v > 1 {
		return nil
	}

	t := f * o.edgeB.Dot(&originCrossE1)
	return []Intersection{{T: t, Object: o}}
}
