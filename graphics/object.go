// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package graphics

import (
	"math"
	"sort"

	"github.com/galvanized-logic/raytrace/math/lin"
)

// Kind tags the variant of an Object node, per spec.md §9's design
// note: a tagged-variant Object replaces the engine's old virtual-base
// Pov/part dispatch (part.go, pov.go) — shape-specific behavior below
// is a switch on Kind rather than a method table.
type Kind int

// Every Object variant. KindComposite is the only interior node; the
// rest are Surface leaves.
const (
	KindSphere Kind = iota
	KindPlane
	KindCube
	KindCylinder
	KindCone
	KindTriangle
	KindComposite
)

// Object is the polymorphic scene tree node. Every node carries a
// transform and its cached inverse; leaves carry a Material and
// TextureMap, the composite carries children and an optional override
// material. Parent is a non-owning back-reference used to walk world
// points into ancestor object space (World-normal recursion, §4.5) and
// to resolve material overrides — set by Attach, never by a cycle.
type Object struct {
	Kind Kind

	transform *lin.M4
	inverse   *lin.M4
	Parent    *Object

	// Surface leaf fields.
	Material   *Material
	TextureMap TextureMap

	// Cylinder / Cone fields.
	YMin, YMax float64
	Closed     bool

	// Triangle fields.
	A, B, C    lin.V4
	edgeA      lin.V4
	edgeB      lin.V4
	faceNormal lin.V4

	// Composite fields.
	Children         []*Object
	OverrideMaterial *Material
	bounds           BoundingBox
}

// newLeaf builds a Surface leaf with the identity transform and the
// default material and texture map.
func newLeaf(kind Kind) *Object {
	o := &Object{Kind: kind, Material: NewMaterial(), TextureMap: PlanarMap}
	o.SetTransform(lin.M4I)
	return o
}

// NewSphere returns a unit sphere at the origin.
func NewSphere() *Object { return newLeaf(KindSphere) }

// NewPlane returns the infinite xz plane.
func NewPlane() *Object { return newLeaf(KindPlane) }

// NewCube returns the unit cube centered at the origin (half-extent 1).
func NewCube() *Object { return newLeaf(KindCube) }

// NewCylinder returns a radius-1 cylinder around the y axis bounded by
// yMin/yMax (use math.Inf(-1)/math.Inf(1) for unbounded) with optional
// end caps.
func NewCylinder(yMin, yMax float64, closed bool) *Object {
	o := newLeaf(KindCylinder)
	o.YMin, o.YMax, o.Closed = yMin, yMax, closed
	return o
}

// NewCone returns a double-napped cone around the y axis, otherwise
// identical in structure to NewCylinder.
func NewCone(yMin, yMax float64, closed bool) *Object {
	o := newLeaf(KindCone)
	o.YMin, o.YMax, o.Closed = yMin, yMax, closed
	return o
}

// NewTriangle returns a triangle with vertices a, b, c, precomputing
// its edges and surface normal.
func NewTriangle(a, b, c lin.V4) *Object {
	o := newLeaf(KindTriangle)
	o.A, o.B, o.C = a, b, c
	o.edgeA.Sub(&b, &a)
	o.edgeB.Sub(&c, &a)
	var n lin.V4
	n.Cross(&o.edgeA, &o.edgeB)
	n.Unit()
	o.faceNormal = n
	return o
}

// NewComposite returns an empty composite node grouping children under
// a shared transform and, optionally, a shared override material.
func NewComposite() *Object {
	o := &Object{Kind: KindComposite, bounds: EmptyBounds()}
	o.SetTransform(lin.M4I)
	return o
}

// Attach adds child to the composite's children, sets child's Parent
// back-reference, and grows the composite's cached bounds by the
// child's local-space bounds mapped through the child's own transform
// — the rule spec.md's invariants name explicitly.
func (o *Object) Attach(child *Object) {
	child.Parent = o
	o.Children = append(o.Children, child)
	o.bounds.Union(child.Bounds().Transform(child.Transform()))
}

// Transform returns the node's current local-to-parent transform.
func (o *Object) Transform() *lin.M4 { return o.transform }

// Inverse returns the cached inverse of Transform(), always kept in
// sync by SetTransform.
func (o *Object) Inverse() *lin.M4 { return o.inverse }

// SetTransform assigns m as the node's transform and recomputes the
// cached inverse, preserving the invariant that inverse always equals
// the mathematical inverse of transform. Panics (a scene authoring
// error, surfaced by the scene loader before this is ever called on a
// singular matrix) if m has no inverse.
func (o *Object) SetTransform(m *lin.M4) {
	cp := &lin.M4{}
	cp.Set(m)
	o.transform = cp
	inv, ok := (&lin.M4{}).Inverse(cp)
	if !ok {
		panic("graphics: singular transform has no inverse")
	}
	o.inverse = inv
}

// Bounds returns the node's variant-specific LOCAL (untransformed)
// bounds. A composite returns its cached union of children's bounds.
func (o *Object) Bounds() BoundingBox {
	switch o.Kind {
	case KindSphere:
		return BoundingBox{Min: lin.V4{X: -1, Y: -1, Z: -1, W: 1}, Max: lin.V4{X: 1, Y: 1, Z: 1, W: 1}}
	case KindPlane:
		inf := math.Inf(1)
		return BoundingBox{Min: lin.V4{X: -inf, Y: 0, Z: -inf, W: 1}, Max: lin.V4{X: inf, Y: 0, Z: inf, W: 1}}
	case KindCube:
		return BoundingBox{Min: lin.V4{X: -1, Y: -1, Z: -1, W: 1}, Max: lin.V4{X: 1, Y: 1, Z: 1, W: 1}}
	case KindCylinder, KindCone:
		radius := 1.0
		if o.Kind == KindCone {
			radius = math.Max(math.Abs(o.YMin), math.Abs(o.YMax))
			if math.IsInf(radius, 0) {
				radius = math.Inf(1)
			}
		}
		return BoundingBox{Min: lin.V4{X: -radius, Y: o.YMin, Z: -radius, W: 1}, Max: lin.V4{X: radius, Y: o.YMax, Z: radius, W: 1}}
	case KindTriangle:
		b := EmptyBounds()
		b.AddPoint(o.A)
		b.AddPoint(o.B)
		b.AddPoint(o.C)
		return b
	case KindComposite:
		return o.bounds
	}
	panic("graphics: unknown object kind in Bounds")
}

// MaterialEffective returns the material that actually shades this
// surface: the nearest ancestor composite's override material, if any,
// else the surface's own material.
func (o *Object) MaterialEffective() *Material {
	for ancestor := o.Parent; ancestor != nil; ancestor = ancestor.Parent {
		if ancestor.OverrideMaterial != nil {
			return ancestor.OverrideMaterial
		}
	}
	return o.Material
}

// ColorAt transforms world point p into this surface's object space and
// delegates to its effective material's texture.
func (o *Object) ColorAt(p lin.V4) lin.Color {
	op := o.worldToObject(p)
	return o.MaterialEffective().Texture.ColorAt(op, o.TextureMap)
}

// worldToObject walks p down through every ancestor's inverse and then
// this node's own inverse, outermost (the root) first.
func (o *Object) worldToObject(p lin.V4) lin.V4 {
	if o.Parent != nil {
		p = o.Parent.worldToObject(p)
	}
	var op lin.V4
	op.MultvM(&p, o.Inverse())
	return op
}

// Intersect returns every intersection of ray with this object (and
// its descendants if composite) in ascending t order: the ray is first
// transformed into this node's object space by its inverse, then
// dispatched to the variant's local intersection routine.
func (o *Object) Intersect(r Ray) []Intersection {
	local := r.Transform(o.Inverse())
	switch o.Kind {
	case KindSphere:
		return intersectSphere(o, local)
	case KindPlane:
		return intersectPlane(o, local)
	case KindCube:
		return intersectCube(o, local)
	case KindCylinder:
		return intersectCylinder(o, local)
	case KindCone:
		return intersectCone(o, local)
	case KindTriangle:
		return intersectTriangle(o, local)
	case KindComposite:
		return o.intersectComposite(local)
	}
	panic("graphics: unknown object kind in Intersect")
}

// intersectComposite skips the whole subtree if the ray misses the
// composite's own bounds, else recurses into every child, concatenates
// and stably sorts by t (ties preserve child insertion order, which
// Intersect's depth-first walk already produces left to right).
func (o *Object) intersectComposite(local Ray) []Intersection {
	if !o.bounds.IntersectedBy(local) {
		return nil
	}
	var hits []Intersection
	for _, child := range o.Children {
		hits = append(hits, child.Intersect(local)...)
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].T < hits[j].T })
	return hits
}

// WorldNormalAt computes the surface normal at world point p: the
// point is walked into object space through every ancestor's inverse
// and this node's inverse (outermost first), the variant's local
// normal is computed, then the normal is walked back out through
// (inverse)^T with W pinned to 0, normalized at every step.
func (o *Object) WorldNormalAt(p lin.V4) lin.V4 {
	op := o.worldToObject(p)
	local := o.localNormalAt(op)
	return o.normalToWorld(local)
}

// normalToWorld transforms a local-space normal back through this
// node's own (inverse)^T and then every ancestor's, outermost last.
func (o *Object) normalToWorld(local lin.V4) lin.V4 {
	n := o.objectNormalToWorld(local)
	if o.Parent != nil {
		return o.Parent.normalToWorld(n)
	}
	return n
}

func (o *Object) objectNormalToWorld(local lin.V4) lin.V4 {
	var t lin.M4
	t.Transpose(o.Inverse())
	var n lin.V4
	n.MultvM(&local, &t)
	n.W = 0
	n.Unit()
	return n
}

func (o *Object) localNormalAt(p lin.V4) lin.V4 {
	switch o.Kind {
	case KindSphere:
		return *lin.Vector(p.X, p.Y, p.Z)
	case KindPlane:
		return *lin.Vector(0, 1, 0)
	case KindCube:
		return cubeNormal(p)
	case KindCylinder:
		return cylinderNormal(o, p)
	case KindCone:
		return coneNormal(o, p)
	case KindTriangle:
		return o.faceNormal
	}
	panic("graphics: unknown object kind in localNormalAt")
}

// Equal reports whether o and other are the same variant with equal
// transforms, equal own material fields (a composite compares its
// override material and its children instead), and equal
// variant-specific parameters.
func (o *Object) Equal(other *Object) bool {
	if o.Kind != other.Kind {
		return false
	}
	if !o.transform.Aeq(other.transform) {
		return false
	}
	switch o.Kind {
	case KindCylinder, KindCone:
		if o.Closed != other.Closed || !lin.Aeq(o.YMin, other.YMin) || !lin.Aeq(o.YMax, other.YMax) {
			return false
		}
	case KindTriangle:
		if !o.A.Aeq(&other.A) || !o.B.Aeq(&other.B) || !o.C.Aeq(&other.C) {
			return false
		}
	case KindComposite:
		if (o.OverrideMaterial == nil) != (other.OverrideMaterial == nil) {
			return false
		}
		if o.OverrideMaterial != nil && !o.OverrideMaterial.Aeq(other.OverrideMaterial) {
			return false
		}
		if len(o.Children) != len(other.Children) {
			return false
		}
		for i, c := range o.Children {
			if !c.Equal(other.Children[i]) {
				return false
			}
		}
		return true
	}
	return o.Material.Aeq(other.Material)
}
