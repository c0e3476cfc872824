// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package trace drives the ray tracer's embarrassingly-parallel
// per-pixel render loop: one goroutine per worker reads image rows off
// a channel, colors every pixel in that row, and writes the results
// into a Canvas. Grounded on the engine's own brute-force Whitted
// example (eg/rt.go), which farms rows out to runtime.NumCPU()
// goroutines over a channel rather than a sync.WaitGroup per pixel.
// Named apart from the engine's own render package, which is GPU draw
// call machinery this CPU renderer has no relation to.
package trace

import (
	"runtime"
	"sync"

	"github.com/galvanized-logic/raytrace/canvas"
	"github.com/galvanized-logic/raytrace/graphics"
)

// Renderer walks every pixel of a camera's viewport through a world,
// producing a Canvas. Workers defaults to runtime.NumCPU() when zero
// or negative.
type Renderer struct {
	World   *graphics.World
	Camera  *graphics.Camera
	Depth   int
	Workers int
}

// NewRenderer returns a Renderer for world seen through camera, using
// the spec's default recursion depth and one worker per CPU.
func NewRenderer(world *graphics.World, camera *graphics.Camera) *Renderer {
	return &Renderer{World: world, Camera: camera, Depth: graphics.MaxDepth, Workers: runtime.NumCPU()}
}

// Render traces every pixel of r.Camera's viewport through r.World and
// returns the completed Canvas. Rows are distributed to r.Workers
// goroutines over a channel; a row's pixels are colored independently
// so no synchronization is needed beyond writing into the row's own
// canvas slice.
func (r *Renderer) Render() *canvas.Canvas {
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	depth := r.Depth
	if depth <= 0 {
		depth = graphics.MaxDepth
	}

	width, height := r.Camera.ViewportWidth, r.Camera.ViewportHeight
	img := canvas.New(width, height)

	rows := make(chan int, height)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go r.worker(img, depth, rows, &wg)
	}
	for y := 0; y < height; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	return img
}

// worker reads rows off the channel until it's closed, coloring every
// pixel in each row it receives.
func (r *Renderer) worker(img *canvas.Canvas, depth int, rows <-chan int, wg *sync.WaitGroup) {
	defer wg.Done()
	for y := range rows {
		r.renderRow(img, depth, y)
	}
}

func (r *Renderer) renderRow(img *canvas.Canvas, depth, y int) {
	for x := 0; x < r.Camera.ViewportWidth; x++ {
		ray := r.Camera.CastRay(x, y)
		color := r.World.ColorAt(ray, depth)
		img.Set(x, y, color)
	}
}
