// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package graphics

import (
	"math"
	"testing"

	"github.com/galvanized-logic/raytrace/math/lin"
)

func TestCameraPixelSize(t *testing.T) {
	horiz := NewCamera(200, 125, math.Pi/2)
	if !lin.Aeq(horiz.pixelSize, 0.01) {
		t.Errorf("horizontal canvas: got pixelSize %v, want 0.01", horiz.pixelSize)
	}
	vert := NewCamera(125, 200, math.Pi/2)
	if !lin.Aeq(vert.pixelSize, 0.01) {
		t.Errorf("vertical canvas: got pixelSize %v, want 0.01", vert.pixelSize)
	}
}

func TestCameraCastRay(t *testing.T) {
	c := NewCamera(201, 101, math.Pi/2)
	r := c.CastRay(100, 50)
	wantOrigin := *lin.Point(0, 0, 0)
	wantDir := *lin.Vector(0, 0, -1)
	if !r.Origin.Aeq(&wantOrigin) || !r.Direction.Aeq(&wantDir) {
		t.Errorf("center ray: got %+v/%+v, want %+v/%+v", r.Origin, r.Direction, wantOrigin, wantDir)
	}

	r = c.CastRay(0, 0)
	wantDir = *lin.Vector(0.66519, 0.33259, -0.66851)
	if !r.Origin.Aeq(&wantOrigin) || !r.Direction.Aeq(&wantDir) {
		t.Errorf("corner ray: got %+v/%+v, want %+v/%+v", r.Origin, r.Direction, wantOrigin, wantDir)
	}
}

func TestCameraCastRayTransformed(t *testing.T) {
	c := NewCamera(201, 101, math.Pi/2)
	m := (&lin.M4{}).Mult(lin.Translation(0, -2, 5), lin.RotationY(math.Pi/4))
	c.SetTransform(m)
	r := c.CastRay(100, 50)
	wantOrigin := *lin.Point(0, 2, -5)
	two := math.Sqrt(2) / 2
	wantDir := *lin.Vector(two, 0, -two)
	if !r.Origin.Aeq(&wantOrigin) || !r.Direction.Aeq(&wantDir) {
		t.Errorf("got %+v/%+v, want %+v/%+v", r.Origin, r.Direction, wantOrigin, wantDir)
	}
}
