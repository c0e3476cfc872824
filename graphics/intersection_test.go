// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package graphics

import (
	"math"
	"testing"

	"github.com/galvanized-logic/raytrace/math/lin"
)

func TestHit(t *testing.T) {
	s := NewSphere()
	xs := []Intersection{{T: 1, Object: s}, {T: -1, Object: s}}
	hit, ok := Hit(xs)
	if !ok || !lin.Aeq(hit.T, 1) {
		t.Fatalf("got %v/%v, want T=1", hit, ok)
	}

	xs = []Intersection{{T: -2, Object: s}, {T: -1, Object: s}}
	if _, ok := Hit(xs); ok {
		t.Fatal("expected no hit when every T is negative")
	}

	xs = []Intersection{{T: 5, Object: s}, {T: 7, Object: s}, {T: -3, Object: s}, {T: 2, Object: s}}
	hit, ok = Hit(xs)
	if !ok || !lin.Aeq(hit.T, 2) {
		t.Fatalf("got %v/%v, want T=2 (lowest nonnegative)", hit, ok)
	}
}

func TestPrepareComputationsOutsideHit(t *testing.T) {
	s := NewSphere()
	r := NewRay(*lin.Point(0, 0, -5), *lin.Vector(0, 0, 1))
	hit := Intersection{T: 4, Object: s}
	d := PrepareComputations(hit, r, []Intersection{hit})
	if d.Inside {
		t.Error("expected Inside=false for an outside hit")
	}
	wantPoint := *lin.Point(0, 0, -1)
	if !d.Point.Aeq(&wantPoint) {
		t.Errorf("got Point %+v, want %+v", d.Point, wantPoint)
	}
}

func TestPrepareComputationsInsideHit(t *testing.T) {
	s := NewSphere()
	r := NewRay(*lin.Point(0, 0, 0), *lin.Vector(0, 0, 1))
	hit := Intersection{T: 1, Object: s}
	d := PrepareComputations(hit, r, []Intersection{hit})
	if !d.Inside {
		t.Error("expected Inside=true")
	}
	wantNormal := *lin.Vector(0, 0, -1)
	if !d.Normal.Aeq(&wantNormal) {
		t.Errorf("got Normal %+v, want %+v (should be negated)", d.Normal, wantNormal)
	}
}

func TestRefractiveIndicesThreeOverlappingSpheres(t *testing.T) {
	a := NewSphere()
	a.SetTransform(lin.Scaling(2, 2, 2))
	a.Material = Glass()
	a.Material.RefractiveIndex = 1.5

	b := NewSphere()
	b.SetTransform(lin.Translation(0, 0, -0.25))
	b.Material = Glass()
	b.Material.RefractiveIndex = 2.0

	c := NewSphere()
	c.SetTransform(lin.Translation(0, 0, 0.25))
	c.Material = Glass()
	c.Material.RefractiveIndex = 2.5

	r := NewRay(*lin.Point(0, 0, -4), *lin.Vector(0, 0, 1))
	xs := []Intersection{
		{T: 2, Object: a}, {T: 2.75, Object: b}, {T: 3.25, Object: c},
		{T: 4.75, Object: b}, {T: 5.25, Object: c}, {T: 6, Object: a},
	}

	wantN1 := []float64{1.0, 1.5, 2.0, 2.5, 2.5, 1.5}
	wantN2 := []float64{1.5, 2.0, 2.5, 2.5, 1.5, 1.0}
	for i, x := range xs {
		d := PrepareComputations(x, r, xs)
		if !lin.Aeq(d.N1, wantN1[i]) || !lin.Aeq(d.N2, wantN2[i]) {
			t.Errorf("hit %d: got n1=%v n2=%v, want n1=%v n2=%v", i, d.N1, d.N2, wantN1[i], wantN2[i])
		}
	}
}

func TestSchlickTotalInternalReflection(t *testing.T) {
	s := NewSphere()
	s.Material = Glass()
	two := math.Sqrt(2) / 2
	r := NewRay(*lin.Point(0, 0, two), *lin.Vector(0, 1, 0))
	xs := []Intersection{{T: -two, Object: s}, {T: two, Object: s}}
	d := PrepareComputations(xs[1], r, xs)
	if !lin.Aeq(d.Schlick(), 1) {
		t.Errorf("got %v, want 1 (total internal reflection)", d.Schlick())
	}
}

func TestSchlickPerpendicularViewingAngle(t *testing.T) {
	s := NewSphere()
	s.Material = Glass()
	r := NewRay(*lin.Point(0, 0, 0), *lin.Vector(0, 1, 0))
	xs := []Intersection{{T: -1, Object: s}, {T: 1, Object: s}}
	d := PrepareComputations(xs[1], r, xs)
	if !lin.Aeq(d.Schlick(), 0.04) {
		t.Errorf("got %v, want ~0.04", d.Schlick())
	}
}
