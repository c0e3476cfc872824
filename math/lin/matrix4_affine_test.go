// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import (
	"math"
	"testing"
)

func TestTranslationMovesPoints(t *testing.T) {
	m := Translation(5, -3, 2)
	p := Point(-3, 4, 5)
	var got V4
	got.MultvM(p, m)
	want := Point(2, 1, 7)
	if !got.Aeq(want) {
		t.Errorf("got %+v, want %+v", got, *want)
	}
}

func TestTranslationDoesNotAffectVectors(t *testing.T) {
	m := Translation(5, -3, 2)
	v := Vector(-3, 4, 5)
	var got V4
	got.MultvM(v, m)
	if !got.Aeq(v) {
		t.Errorf("got %+v, want unchanged %+v", got, *v)
	}
}

func TestScalingAppliesToPointsAndVectors(t *testing.T) {
	m := Scaling(2, 3, 4)
	p := Point(-4, 6, 8)
	var got V4
	got.MultvM(p, m)
	want := Point(-8, 18, 32)
	if !got.Aeq(want) {
		t.Errorf("got %+v, want %+v", got, *want)
	}
}

func TestRotationXHalfQuarter(t *testing.T) {
	p := Point(0, 1, 0)
	m := RotationX(math.Pi / 4)
	var got V4
	got.MultvM(p, m)
	two := math.Sqrt(2) / 2
	want := Point(0, two, two)
	if !got.Aeq(want) {
		t.Errorf("got %+v, want %+v", got, *want)
	}
}

func TestRotationYFullQuarter(t *testing.T) {
	p := Point(0, 0, 1)
	m := RotationY(math.Pi / 2)
	var got V4
	got.MultvM(p, m)
	want := Point(1, 0, 0)
	if !got.Aeq(want) {
		t.Errorf("got %+v, want %+v", got, *want)
	}
}

func TestRotationZFullQuarter(t *testing.T) {
	p := Point(0, 1, 0)
	m := RotationZ(math.Pi / 2)
	var got V4
	got.MultvM(p, m)
	want := Point(-1, 0, 0)
	if !got.Aeq(want) {
		t.Errorf("got %+v, want %+v", got, *want)
	}
}

func TestShearingMovesXInProportionToY(t *testing.T) {
	m := Shearing(1, 0, 0, 0, 0, 0)
	p := Point(2, 3, 4)
	var got V4
	got.MultvM(p, m)
	want := Point(5, 3, 4)
	if !got.Aeq(want) {
		t.Errorf("got %+v, want %+v", got, *want)
	}
}

func TestM4InverseRoundTrip(t *testing.T) {
	m := (&M4{}).Mult(RotationX(0.7), Translation(1, -2, 3))
	inv, ok := (&M4{}).Inverse(m)
	if !ok {
		t.Fatal("expected an invertible matrix")
	}
	roundTrip := (&M4{}).Mult(m, inv)
	if !roundTrip.Aeq(M4I) {
		t.Errorf("m * m^-1 = %+v, want identity", roundTrip)
	}
}

func TestM4InverseSingularFails(t *testing.T) {
	if _, ok := (&M4{}).Inverse(M4Z); ok {
		t.Fatal("expected the zero matrix to have no inverse")
	}
}

func TestViewDefaultOrientationIsIdentity(t *testing.T) {
	eye := V3{X: 0, Y: 0, Z: 0}
	center := V3{X: 0, Y: 0, Z: -1}
	up := V3{X: 0, Y: 1, Z: 0}
	m := View(&eye, &center, &up)
	if !m.Aeq(M4I) {
		t.Errorf("got %+v, want identity", m)
	}
}

func TestViewLookingInPositiveZDirection(t *testing.T) {
	eye := V3{X: 0, Y: 0, Z: 0}
	center := V3{X: 0, Y: 0, Z: 1}
	up := V3{X: 0, Y: 1, Z: 0}
	m := View(&eye, &center, &up)
	want := Scaling(-1, 1, -1)
	if !m.Aeq(want) {
		t.Errorf("got %+v, want %+v", m, *want)
	}
}

func TestViewMovesTheWorld(t *testing.T) {
	eye := V3{X: 0, Y: 0, Z: 8}
	center := V3{X: 0, Y: 0, Z: 0}
	up := V3{X: 0, Y: 1, Z: 0}
	m := View(&eye, &center, &up)
	want := Translation(0, 0, -8)
	if !m.Aeq(want) {
		t.Errorf("got %+v, want %+v", m, *want)
	}
}
