// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package canvas is the renderer's output image: a W×H grid of colors
// with per-pixel read/write, plus the ASCII PPM (P3) encoder that
// turns it into the bytes a viewer expects on disk.
package canvas

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/galvanized-logic/raytrace/math/lin"
)

// Canvas is a row-major grid of colors, one per pixel.
type Canvas struct {
	Width, Height int
	pixels        []lin.Color
}

// New returns a black canvas of the given dimensions.
func New(width, height int) *Canvas {
	return &Canvas{Width: width, Height: height, pixels: make([]lin.Color, width*height)}
}

// Set assigns the color at (x, y). Out-of-range coordinates are a
// programming error and panic, the same way an out-of-range slice
// index would.
func (c *Canvas) Set(x, y int, color lin.Color) {
	c.pixels[c.index(x, y)] = color
}

// At returns the color at (x, y).
func (c *Canvas) At(x, y int) lin.Color {
	return c.pixels[c.index(x, y)]
}

func (c *Canvas) index(x, y int) int {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		panic(fmt.Sprintf("canvas: (%d,%d) out of bounds for %dx%d", x, y, c.Width, c.Height))
	}
	return y*c.Width + x
}

// maxLineWidth is the PPM P3 format's conventional line length limit.
const maxLineWidth = 70

// WritePPM encodes c as ASCII PPM (P3) to w: a three-line header
// followed by every pixel's quantized R, G, B components, whitespace
// separated and wrapped so no line exceeds 70 characters — a new line
// is started before any token that would push the current line past
// the limit, never mid-token. The file ends with a trailing newline.
//
// WritePPM either writes the complete image or returns an error;
// callers should buffer to a temporary file and rename on success if
// they need the "never partially writes" guarantee to extend past a
// single io.Writer call.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.Width, c.Height); err != nil {
		return err
	}

	lineLen := 0
	writeToken := func(tok string) error {
		if lineLen == 0 {
			if _, err := bw.WriteString(tok); err != nil {
				return err
			}
			lineLen = len(tok)
			return nil
		}
		if lineLen+1+len(tok) > maxLineWidth {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
			if _, err := bw.WriteString(tok); err != nil {
				return err
			}
			lineLen = len(tok)
			return nil
		}
		if err := bw.WriteByte(' '); err != nil {
			return err
		}
		if _, err := bw.WriteString(tok); err != nil {
			return err
		}
		lineLen += 1 + len(tok)
		return nil
	}

	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			col := c.At(x, y)
			r, g, b := col.Quantize()
			for _, v := range [3]int{r, g, b} {
				if err := writeToken(strconv.Itoa(v)); err != nil {
					return err
				}
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
		lineLen = 0
	}

	return bw.Flush()
}
