// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package graphics

import (
	"math"

	"github.com/galvanized-logic/raytrace/math/lin"
)

// TextureKind enumerates the pattern rules a Texture can evaluate.
type TextureKind int

// Pattern rules. The 2D variants sample u,v; the 3D variants sample
// an object-space point's x,y,z directly.
const (
	Solid TextureKind = iota
	Stripe
	Ring
	Checker
	Gradient
	Stripe3D
	Ring3D
	Checker3D
	Gradient3D
)

// TextureMap is a total function from an object-space point to a UV
// coordinate, letting the same 2D texture be reused with different
// parameterizations on different primitives.
type TextureMap func(p lin.V4) lin.UV

// PlanarMap is the default TextureMap: project onto the xz plane.
func PlanarMap(p lin.V4) lin.UV { return lin.UV{U: p.X, V: p.Z} }

// Texture is the polymorphic color-at-a-point function spec.md
// describes: Solid always returns Color; Pattern2D samples u,v (after
// applying its own inverse transform and, for a surface texture, the
// surface's TextureMap); Pattern3D samples the object-space point
// directly (after its own inverse transform).
type Texture struct {
	Kind      TextureKind
	Color     lin.Color // used when Kind == Solid
	A, B      *Texture  // sub-textures for every non-solid kind
	Transform *lin.M4   // 3D pattern transform (Pattern3D kinds)
	Transform2D *lin.M3 // 2D pattern transform (Pattern2D kinds)
}

// NewSolid returns a Texture that always evaluates to c.
func NewSolid(c lin.Color) *Texture { return &Texture{Kind: Solid, Color: c} }

// NewPattern2D returns a uv-sampled Texture of the given kind blending
// a and b, with transform2D applied (inverted) before sampling.
func NewPattern2D(kind TextureKind, a, b *Texture, transform2D *lin.M3) *Texture {
	return &Texture{Kind: kind, A: a, B: b, Transform2D: transform2D}
}

// NewPattern3D returns an object-point-sampled Texture of the given
// kind blending a and b, with transform applied (inverted) before
// sampling.
func NewPattern3D(kind TextureKind, a, b *Texture, transform *lin.M4) *Texture {
	return &Texture{Kind: kind, A: a, B: b, Transform: transform}
}

// ColorAt evaluates the texture at object-space point p, using texMap
// to derive UV coordinates for the 2D pattern kinds.
func (t *Texture) ColorAt(p lin.V4, texMap TextureMap) lin.Color {
	switch t.Kind {
	case Solid:
		return t.Color
	case Stripe, Ring, Checker, Gradient:
		uv := texMap(p)
		if t.Transform2D != nil {
			if inv, ok := (&lin.M3{}).Inverse(t.Transform2D); ok {
				uv = uv.Apply(inv)
			}
		}
		return t.sample2D(uv, texMap)
	default: // Stripe3D, Ring3D, Checker3D, Gradient3D
		op := p
		if t.Transform != nil {
			if inv, ok := (&lin.M4{}).Inverse(t.Transform); ok {
				op.MultvM(&p, inv)
			}
		}
		return t.sample3D(op, texMap)
	}
}

func (t *Texture) sample2D(uv lin.UV, texMap TextureMap) lin.Color {
	switch t.Kind {
	case Stripe:
		u, _ := uv.Floor()
		return t.pick(u%2 == 0, uv3(uv), texMap)
	case Ring:
		r := int(math.Floor(math.Sqrt(uv.U*uv.U + uv.V*uv.V)))
		return t.pick(r%2 == 0, uv3(uv), texMap)
	case Checker:
		u, v := uv.Floor()
		return t.pick((u+v)%2 == 0, uv3(uv), texMap)
	case Gradient:
		a := t.colorOf(t.A, uv3(uv), texMap)
		b := t.colorOf(t.B, uv3(uv), texMap)
		var out lin.Color
		out.Sub(&b, &a)
		out.Scale(&out, uv.Fract())
		out.Add(&out, &a)
		return out
	}
	return lin.Color{}
}

func (t *Texture) sample3D(p lin.V4, texMap TextureMap) lin.Color {
	switch t.Kind {
	case Stripe3D:
		return t.pick(int(math.Floor(p.X))%2 == 0, p, texMap)
	case Ring3D:
		r := int(math.Floor(math.Sqrt(p.X*p.X + p.Z*p.Z)))
		return t.pick(r%2 == 0, p, texMap)
	case Checker3D:
		sum := int(math.Floor(p.X)) + int(math.Floor(p.Y)) + int(math.Floor(p.Z))
		return t.pick(sum%2 == 0, p, texMap)
	case Gradient3D:
		a := t.colorOf(t.A, p, texMap)
		b := t.colorOf(t.B, p, texMap)
		fract := p.X - math.Floor(p.X)
		var out lin.Color
		out.Sub(&b, &a)
		out.Scale(&out, fract)
		out.Add(&out, &a)
		return out
	}
	return lin.Color{}
}

// pick returns A's color if even is true, else B's, sampled at p.
func (t *Texture) pick(even bool, p lin.V4, texMap TextureMap) lin.Color {
	if even {
		return t.colorOf(t.A, p, texMap)
	}
	return t.colorOf(t.B, p, texMap)
}

func (t *Texture) colorOf(sub *Texture, p lin.V4, texMap TextureMap) lin.Color {
	if sub == nil {
		return lin.Color{}
	}
	return sub.ColorAt(p, texMap)
}

// uv3 lifts a UV back into a V4 (z=0) so sub-texture sampling can
// share ColorAt's signature regardless of 2D/3D nesting.
func uv3(uv lin.UV) lin.V4 { return lin.V4{X: uv.U, Y: uv.V, Z: 0, W: 1} }

// Aeq (~=) reports whether t and o evaluate to the same texture: same
// kind, same solid color, recursively equal sub-textures, and equal
// transforms — structural equality rather than shared identity, so two
// independently-built textures with identical values compare equal.
func (t *Texture) Aeq(o *Texture) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.Kind != o.Kind {
		return false
	}
	if !t.Color.Aeq(&o.Color) {
		return false
	}
	if !t.A.Aeq(o.A) || !t.B.Aeq(o.B) {
		return false
	}
	if (t.Transform == nil) != (o.Transform == nil) {
		return false
	}
	if t.Transform != nil && !t.Transform.Aeq(o.Transform) {
		return false
	}
	if (t.Transform2D == nil) != (o.Transform2D == nil) {
		return false
	}
	if t.Transform2D != nil && !t.Transform2D.Aeq(o.Transform2D) {
		return false
	}
	return true
}
