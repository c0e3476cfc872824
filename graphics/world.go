// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package graphics

import (
	"math"

	"github.com/galvanized-logic/raytrace/math/lin"
)

// World is the scene the camera renders: a single point light and an
// ordered list of root Objects. Objects and materials are built once
// at scene-load time and never mutated while rendering.
type World struct {
	Light   PointLight
	Objects []*Object
}

// NewWorld returns an empty world lit by light.
func NewWorld(light PointLight) *World {
	return &World{Light: light}
}

// AllIntersections returns every intersection of r against every root
// object, concatenated and sorted ascending by t.
func (w *World) AllIntersections(r Ray) []Intersection {
	var xs []Intersection
	for _, o := range w.Objects {
		xs = append(xs, o.Intersect(r)...)
	}
	sortByT(xs)
	return xs
}

// IsShadowed reports whether point lies in shadow of the world's
// light: a ray is cast from point toward the light, and the point is
// shadowed if the nearest non-negative intersection lies strictly
// closer than the light itself.
func (w *World) IsShadowed(point lin.V4) bool {
	var toLight lin.V4
	toLight.Sub(&w.Light.Position, &point)
	distance := toLight.Len()
	direction := toLight
	direction.Unit()

	shadowRay := NewRay(point, direction)
	hit, ok := Hit(w.AllIntersections(shadowRay))
	return ok && hit.T < distance
}

// MaxDepth is the default recursion limit color_at applies to
// reflection and refraction when the caller doesn't specify one.
const MaxDepth = 5

// ColorAt traces r through the world, returning black past depth
// recursions, the direct-lit surface color plus reflected and
// refracted contributions otherwise, blended by the Schlick
// reflectance when a surface is both reflective and transparent.
func (w *World) ColorAt(r Ray, depth int) lin.Color {
	if depth <= 0 {
		return lin.Color{}
	}
	xs := w.AllIntersections(r)
	hit, ok := Hit(xs)
	if !ok {
		return lin.Color{}
	}

	d := PrepareComputations(hit, r, xs)
	surface := Phong(d.Object.MaterialEffective(), d.Object, w.Light, d.OverPoint, d.Normal, d.View, w.IsShadowed(d.OverPoint))
	reflected := w.reflectedColor(d, depth)
	refracted := w.refractedColor(d, depth)

	material := d.Object.MaterialEffective()
	var out lin.Color
	if material.Reflectivity > 0 && material.Transparency > 0 {
		reflectance := d.Schlick()
		var rc, fc lin.Color
		rc.Scale(&reflected, reflectance)
		fc.Scale(&refracted, 1-reflectance)
		out.Add(&surface, &rc)
		out.Add(&out, &fc)
		return out
	}
	out.Add(&surface, &reflected)
	out.Add(&out, &refracted)
	return out
}

// reflectedColor recursively traces the reflection ray, scaled by the
// surface's reflectivity, or black if the surface isn't reflective.
func (w *World) reflectedColor(d DetailedIntersection, depth int) lin.Color {
	material := d.Object.MaterialEffective()
	if lin.AeqZ(material.Reflectivity) {
		return lin.Color{}
	}
	reflected := w.ColorAt(NewRay(d.OverPoint, d.Reflect), depth-1)
	var out lin.Color
	out.Scale(&reflected, material.Reflectivity)
	return out
}

// refractedColor recursively traces the refraction ray, scaled by the
// surface's transparency, or black if the surface isn't transparent,
// depth is exhausted, or the ray undergoes total internal reflection.
func (w *World) refractedColor(d DetailedIntersection, depth int) lin.Color {
	material := d.Object.MaterialEffective()
	if depth <= 0 || lin.AeqZ(material.Transparency) {
		return lin.Color{}
	}

	nRatio := d.N1 / d.N2
	cosI := d.View.Dot(&d.Normal)
	sin2t := nRatio * nRatio * (1 - cosI*cosI)
	if sin2t > 1 {
		return lin.Color{}
	}
	cosT := math.Sqrt(1 - sin2t)

	var a, b, direction lin.V4
	a.Scale(&d.Normal, nRatio*cosI-cosT)
	b.Scale(&d.View, nRatio)
	direction.Sub(&a, &b)

	refracted := w.ColorAt(NewRay(d.UnderPoint, direction), depth-1)
	var out lin.Color
	out.Scale(&refracted, material.Transparency)
	return out
}
