// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package graphics

import (
	"math"
	"sort"

	"github.com/galvanized-logic/raytrace/math/lin"
)

// Intersection records where along a ray (T) a ray crossed which
// Object. A single ray can produce zero, one, or several Intersections
// against one primitive (a sphere has up to two, a capped cylinder up
// to four), and World.AllIntersections concatenates every object's
// list before sorting.
type Intersection struct {
	T      float64
	Object *Object
}

// Hit returns the visible intersection: the smallest non-negative T in
// xs. xs need not be sorted. The second return is false if every
// intersection has a negative T (the scene is entirely behind the ray).
func Hit(xs []Intersection) (Intersection, bool) {
	best := Intersection{T: math.Inf(1)}
	found := false
	for _, x := range xs {
		if x.T >= 0 && x.T < best.T {
			best = x
			found = true
		}
	}
	return best, found
}

// sortByT stably sorts xs in ascending T order, in place.
func sortByT(xs []Intersection) {
	sort.SliceStable(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
}

// DetailedIntersection bundles everything the shader needs to evaluate
// Phong lighting and recursive reflection/refraction at one hit: the
// world point, the vectors needed for the lighting equation, and the
// bias points used to defeat shadow/refraction self-acne.
type DetailedIntersection struct {
	T        float64
	Object   *Object
	Point    lin.V4
	View     lin.V4
	Normal   lin.V4
	Reflect  lin.V4
	Inside   bool
	OverPoint  lin.V4
	UnderPoint lin.V4
	N1, N2   float64
}

// acneBias nudges over/under points off the surface along the normal
// so shadow and refraction rays don't immediately re-intersect the
// surface they originated from due to floating point rounding.
const acneBias = 1e-5

// PrepareComputations derives a DetailedIntersection for hit, given
// the ray that produced it and the full, sorted intersection list used
// to resolve the entering/exiting refractive indices (§4.7's ordered
// "inside list" walk). xs need not already be sorted.
func PrepareComputations(hit Intersection, r Ray, xs []Intersection) DetailedIntersection {
	sorted := append([]Intersection(nil), xs...)
	sortByT(sorted)

	d := DetailedIntersection{T: hit.T, Object: hit.Object}
	d.Point = r.Position(hit.T)
	d.View.Neg(&r.Direction)
	normal := hit.Object.WorldNormalAt(d.Point)
	d.Inside = normal.Dot(&d.View) < 0
	if d.Inside {
		normal.Neg(&normal)
	}
	d.Normal = normal

	var reflect lin.V4
	reflect.Reflect(&r.Direction, &d.Normal)
	d.Reflect = reflect

	var bias lin.V4
	bias.Scale(&d.Normal, acneBias)
	d.OverPoint.Add(&d.Point, &bias)
	d.UnderPoint.Sub(&d.Point, &bias)

	d.N1, d.N2 = refractiveIndices(hit, sorted)
	return d
}

// refractiveIndices walks the ordered list of objects the ray is
// currently "inside of" up to and including hit, implementing the
// containers stack described for nested/overlapping transparent media:
// n1 is the refractive index of the medium the ray leaves, n2 the
// index of the medium it enters.
func refractiveIndices(hit Intersection, sorted []Intersection) (n1, n2 float64) {
	var containers []*Object

	contains := func(o *Object) int {
		for i, c := range containers {
			if c == o {
				return i
			}
		}
		return -1
	}

	for _, x := range sorted {
		isHit := x == hit
		if isHit {
			if len(containers) == 0 {
				n1 = 1
			} else {
				n1 = containers[len(containers)-1].MaterialEffective().RefractiveIndex
			}
		}

		if i := contains(x.Object); i >= 0 {
			containers = append(containers[:i], containers[i+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if isHit {
			if len(containers) == 0 {
				n2 = 1
			} else {
				n2 = containers[len(containers)-1].MaterialEffective().RefractiveIndex
			}
			break
		}
	}
	return n1, n2
}

// Schlick approximates the reflectance (the fraction of light
// reflected, versus refracted) at d's surface using Christophe
// Schlick's approximation to the Fresnel equations.
func (d DetailedIntersection) Schlick() float64 {
	cos := d.View.Dot(&d.Normal)
	if d.N1 > d.N2 {
		n := d.N1 / d.N2
		sin2t := n * n * (1 - cos*cos)
		if sin2t > 1 {
			return 1
		}
		cosT := math.Sqrt(1 - sin2t)
		cos = cosT
	}
	r0 := (d.N1 - d.N2) / (d.N1 + d.N2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
