// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package trace

import (
	"math"
	"testing"

	"github.com/galvanized-logic/raytrace/graphics"
	"github.com/galvanized-logic/raytrace/math/lin"
)

func TestRenderProducesColoredCanvas(t *testing.T) {
	light := graphics.NewPointLight(*lin.Point(-10, 10, -10), lin.Color{R: 1, G: 1, B: 1})
	world := graphics.NewWorld(light)
	sphere := graphics.NewSphere()
	sphere.Material.Texture = graphics.NewSolid(lin.Color{R: 0.8, G: 1.0, B: 0.6})
	world.Objects = []*graphics.Object{sphere}

	camera := graphics.NewCamera(11, 11, math.Pi/2)
	eye := lin.V3{X: 0, Y: 0, Z: -5}
	center := lin.V3{X: 0, Y: 0, Z: 0}
	up := lin.V3{X: 0, Y: 1, Z: 0}
	camera.SetTransform(lin.View(&eye, &center, &up))

	r := NewRenderer(world, camera)
	r.Workers = 2
	img := r.Render()

	if img.Width != 11 || img.Height != 11 {
		t.Fatalf("got canvas %dx%d, want 11x11", img.Width, img.Height)
	}
	center5 := img.At(5, 5)
	black := lin.Color{}
	if center5.Aeq(&black) {
		t.Error("expected the center pixel, which hits the sphere, to be non-black")
	}
	corner := img.At(0, 0)
	if !corner.Aeq(&black) {
		t.Errorf("got %+v at a corner pixel that misses the sphere, want black", corner)
	}
}

func TestRenderSingleWorker(t *testing.T) {
	light := graphics.NewPointLight(*lin.Point(-10, 10, -10), lin.Color{R: 1, G: 1, B: 1})
	world := graphics.NewWorld(light)
	world.Objects = []*graphics.Object{graphics.NewSphere()}
	camera := graphics.NewCamera(4, 4, math.Pi/3)

	r := NewRenderer(world, camera)
	r.Workers = 1
	r.Depth = 1
	img := r.Render()
	if img.Width != 4 || img.Height != 4 {
		t.Fatalf("got %dx%d, want 4x4", img.Width, img.Height)
	}
}
