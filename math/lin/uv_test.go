// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

func TestUVFloor(t *testing.T) {
	uv := UV{U: 1.7, V: -2.3}
	u, v := uv.Floor()
	if u != 1 || v != -3 {
		t.Errorf("got (%d,%d), want (1,-3)", u, v)
	}
}

func TestUVFract(t *testing.T) {
	uv := UV{U: 2.75}
	if got := uv.Fract(); !Aeq(got, 0.75) {
		t.Errorf("got %v, want 0.75", got)
	}
}

func TestUVApplyTransform(t *testing.T) {
	uv := UV{U: 1, V: 2}
	m := Translation2D(3, 4)
	got := uv.Apply(m)
	if want := (UV{U: 4, V: 6}); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	scaled := UV{U: 2, V: 3}
	got = scaled.Apply(Scaling2D(2, 0.5))
	if want := (UV{U: 4, V: 1.5}); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
