// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

func TestPointAndVectorTagging(t *testing.T) {
	p := Point(4, -4, 3)
	if !p.IsPoint() || p.IsVector() {
		t.Errorf("Point(): got W=%v, want a point (W=1)", p.W)
	}
	v := Vector(4, -4, 3)
	if !v.IsVector() || v.IsPoint() {
		t.Errorf("Vector(): got W=%v, want a vector (W=0)", v.W)
	}
}

func TestTupleCross(t *testing.T) {
	a := Vector(1, 2, 3)
	b := Vector(2, 3, 4)
	var c V4
	c.Cross(a, b)
	want := Vector(-1, 2, -1)
	if !c.Aeq(want) {
		t.Errorf("got %+v, want %+v", c, *want)
	}
	if c.W != 0 {
		t.Errorf("cross product of two vectors should stay a vector, got W=%v", c.W)
	}
}

func TestTupleReflectOffFlatSurface(t *testing.T) {
	v := Vector(1, -1, 0)
	n := Vector(0, 1, 0)
	var r V4
	r.Reflect(v, n)
	want := Vector(1, 1, 0)
	if !r.Aeq(want) {
		t.Errorf("got %+v, want %+v", r, *want)
	}
}

func TestTupleReflectOffSlantedSurface(t *testing.T) {
	v := Vector(0, -1, 0)
	two := 0.70710678118
	n := Vector(two, two, 0)
	var r V4
	r.Reflect(v, n)
	want := Vector(1, 0, 0)
	if !r.Aeq(want) {
		t.Errorf("got %+v, want %+v", r, *want)
	}
}
