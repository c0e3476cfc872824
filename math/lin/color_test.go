// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

func TestColorArithmetic(t *testing.T) {
	a := Color{R: 0.9, G: 0.6, B: 0.75}
	b := Color{R: 0.7, G: 0.1, B: 0.25}

	var sum Color
	sum.Add(&a, &b)
	if want := (Color{R: 1.6, G: 0.7, B: 1.0}); !sum.Aeq(&want) {
		t.Errorf("Add: got %+v, want %+v", sum, want)
	}

	var diff Color
	diff.Sub(&a, &b)
	if want := (Color{R: 0.2, G: 0.5, B: 0.5}); !diff.Aeq(&want) {
		t.Errorf("Sub: got %+v, want %+v", diff, want)
	}

	c := Color{R: 0.2, G: 0.3, B: 0.4}
	var scaled Color
	scaled.Scale(&c, 2)
	if want := (Color{R: 0.4, G: 0.6, B: 0.8}); !scaled.Aeq(&want) {
		t.Errorf("Scale: got %+v, want %+v", scaled, want)
	}

	c1 := Color{R: 1, G: 0.2, B: 0.4}
	c2 := Color{R: 0.9, G: 1, B: 0.1}
	var prod Color
	prod.Mult(&c1, &c2)
	if want := (Color{R: 0.9, G: 0.2, B: 0.04}); !prod.Aeq(&want) {
		t.Errorf("Mult (Hadamard): got %+v, want %+v", prod, want)
	}
}

func TestColorQuantize(t *testing.T) {
	tests := []struct {
		c                Color
		r, g, b          int
	}{
		{Color{R: 0, G: 0, B: 0}, 0, 0, 0},
		{Color{R: 1, G: 1, B: 1}, 255, 255, 255},
		{Color{R: -1, G: 2, B: 0.5}, 0, 255, 128},
	}
	for _, tt := range tests {
		r, g, b := tt.c.Quantize()
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("Quantize(%+v): got (%d,%d,%d), want (%d,%d,%d)", tt.c, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}
