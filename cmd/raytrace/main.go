// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Command raytrace renders a JSON scene description to a PPM image.
//
//	raytrace <scene.json> <image.ppm> [-depth N] [-workers N]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/galvanized-logic/raytrace/graphics"
	"github.com/galvanized-logic/raytrace/scene"
	"github.com/galvanized-logic/raytrace/trace"
)

func main() {
	depth := flag.Int("depth", graphics.MaxDepth, "recursion depth for reflection/refraction")
	workers := flag.Int("workers", 0, "number of render workers (0 = one per CPU)")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		usage()
		os.Exit(1)
	}
	scenePath, imagePath := args[0], args[1]

	if err := run(scenePath, imagePath, *depth, *workers); err != nil {
		fmt.Fprintf(os.Stderr, "raytrace: %s\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: raytrace <scene.json> <image.ppm> [-depth N] [-workers N]\n")
	flag.PrintDefaults()
}

// run loads the scene, renders it, and writes the image. The output
// file is only created after a complete, successful render, so a
// scene-load failure never creates an image file; an error while
// writing can still leave a partially written file.
func run(scenePath, imagePath string, depth, workers int) error {
	in, err := os.Open(scenePath)
	if err != nil {
		return fmt.Errorf("open scene: %w", err)
	}
	defer in.Close()

	world, camera, err := scene.Load(in)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}

	renderer := trace.NewRenderer(world, camera)
	renderer.Depth = depth
	renderer.Workers = workers
	img := renderer.Render()

	out, err := os.Create(imagePath)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	defer out.Close()

	if err := img.WritePPM(out); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	return nil
}
