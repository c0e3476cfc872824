// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package scene

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/galvanized-logic/raytrace/graphics"
	"github.com/galvanized-logic/raytrace/math/lin"
)

// Load reads and compiles a scene document from r in one step.
func Load(r io.Reader) (*graphics.World, *graphics.Camera, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, &Error{Context: "read", Err: err}
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, &Error{Context: "parse", Err: err}
	}
	return Compile(&doc)
}

// Compile builds a graphics.World and graphics.Camera from a decoded
// Document.
func Compile(doc *Document) (*graphics.World, *graphics.Camera, error) {
	light := graphics.NewPointLight(
		point3(doc.World.LightSource.Position),
		color3(doc.World.LightSource.Intensity),
	)
	world := graphics.NewWorld(light)

	for i, od := range doc.World.Objects {
		ctx := fmt.Sprintf("world.objects[%d]", i)
		obj, err := compileObject(od, ctx)
		if err != nil {
			return nil, nil, err
		}
		world.Objects = append(world.Objects, obj)
	}

	camera, err := compileCamera(&doc.Camera)
	if err != nil {
		return nil, nil, err
	}
	return world, camera, nil
}

func compileCamera(cd *CameraDoc) (*graphics.Camera, error) {
	camera := graphics.NewCamera(cd.ViewportWidth, cd.ViewportHeight, cd.FieldOfView)
	eye := v3(cd.Transform.InputBase)
	center := v3(cd.Transform.OutputBase)
	up := v3(cd.Transform.UpVector)
	view := lin.View(&eye, &center, &up)
	if err := checkInvertible(view, "camera.transform"); err != nil {
		return nil, err
	}
	camera.SetTransform(view)
	return camera, nil
}

// checkInvertible reports a scene error, rather than letting
// Object.SetTransform/Camera.SetTransform panic, when m has no inverse —
// a singular transform (determinant 0) is a scene authoring mistake, not
// a programming error, and must surface the same way any other bad
// document does.
func checkInvertible(m *lin.M4, ctx string) error {
	if _, ok := (&lin.M4{}).Inverse(m); !ok {
		return errf(ctx, "singular transform (determinant 0)")
	}
	return nil
}

func compileObject(od ObjectDoc, ctx string) (*graphics.Object, error) {
	var obj *graphics.Object
	var err error

	switch od.Shape {
	case "sphere":
		obj = graphics.NewSphere()
	case "plane":
		obj = graphics.NewPlane()
	case "cube":
		obj = graphics.NewCube()
	case "cylinder":
		yMin, yMax, closed := bounds(od.Bounds)
		obj = graphics.NewCylinder(yMin, yMax, closed)
	case "cone":
		yMin, yMax, closed := bounds(od.Bounds)
		obj = graphics.NewCone(yMin, yMax, closed)
	case "triangle":
		if len(od.Vertices) != 3 {
			return nil, errf(ctx, "triangle requires exactly 3 vertices, got %d", len(od.Vertices))
		}
		obj = graphics.NewTriangle(point3(od.Vertices[0]), point3(od.Vertices[1]), point3(od.Vertices[2]))
	case "group":
		obj = graphics.NewComposite()
		for i, cd := range od.Children {
			child, cerr := compileObject(cd, fmt.Sprintf("%s.children[%d]", ctx, i))
			if cerr != nil {
				return nil, cerr
			}
			obj.Attach(child)
		}
		if od.Material != nil {
			obj.OverrideMaterial, err = compileMaterial(od.Material, ctx+".material")
			if err != nil {
				return nil, err
			}
		}
	default:
		return nil, errf(ctx, "unknown shape %q", od.Shape)
	}

	transform, terr := compileTransformList(od.Transform, ctx+".transform")
	if terr != nil {
		return nil, terr
	}
	if err := checkInvertible(transform, ctx+".transform"); err != nil {
		return nil, err
	}
	obj.SetTransform(transform)

	if od.Shape != "group" && od.Material != nil {
		obj.Material, err = compileMaterial(od.Material, ctx+".material")
		if err != nil {
			return nil, err
		}
	}

	return obj, nil
}

func bounds(bd *BoundsDoc) (yMin, yMax float64, closed bool) {
	if bd == nil {
		return -1, 1, false
	}
	return float64(bd.YMin), float64(bd.YMax), bd.Closed
}

// compileTransformList composes a sequence of named transform records
// into a single matrix, applied in document order: combined = T0 * T1
// * T2 * ... so that, under row-vector convention, a point is
// transformed by T0 first, then T1, and so on.
func compileTransformList(docs []TransformDoc, ctx string) (*lin.M4, error) {
	combined := &lin.M4{}
	combined.Set(lin.M4I)
	for i, td := range docs {
		m, err := compileTransform(td, fmt.Sprintf("%s[%d]", ctx, i))
		if err != nil {
			return nil, err
		}
		combined = (&lin.M4{}).Mult(combined, m)
	}
	return combined, nil
}

func compileTransform(td TransformDoc, ctx string) (*lin.M4, error) {
	arity := func(n int) error {
		if len(td.Values) != n {
			return errf(ctx, "%s requires %d value(s), got %d", td.Type, n, len(td.Values))
		}
		return nil
	}

	switch td.Type {
	case "translate":
		if err := arity(3); err != nil {
			return nil, err
		}
		return lin.Translation(td.Values[0], td.Values[1], td.Values[2]), nil
	case "scale":
		switch len(td.Values) {
		case 1:
			s := td.Values[0]
			return lin.Scaling(s, s, s), nil
		case 3:
			return lin.Scaling(td.Values[0], td.Values[1], td.Values[2]), nil
		default:
			return nil, errf(ctx, "scale requires 1 or 3 value(s), got %d", len(td.Values))
		}
	case "rotate_x":
		if err := arity(1); err != nil {
			return nil, err
		}
		return lin.RotationX(td.Values[0]), nil
	case "rotate_y":
		if err := arity(1); err != nil {
			return nil, err
		}
		return lin.RotationY(td.Values[0]), nil
	case "rotate_z":
		if err := arity(1); err != nil {
			return nil, err
		}
		return lin.RotationZ(td.Values[0]), nil
	case "skew":
		if err := arity(6); err != nil {
			return nil, err
		}
		v := td.Values
		return lin.Shearing(v[0], v[1], v[2], v[3], v[4], v[5]), nil
	default:
		return nil, errf(ctx, "unknown transform type %q", td.Type)
	}
}

func compileMaterial(md *MaterialDoc, ctx string) (*graphics.Material, error) {
	m := graphics.NewMaterial()
	m.Ambient = md.Ambient
	m.Diffuse = md.Diffuse
	m.Specular = md.Specular
	m.Shininess = md.Shininess
	if md.Reflectivity != nil {
		m.Reflectivity = *md.Reflectivity
	}
	if md.Transparency != nil {
		m.Transparency = *md.Transparency
	}
	if md.RefractiveIndex != nil {
		m.RefractiveIndex = *md.RefractiveIndex
	}

	switch {
	case md.Pattern != nil:
		texture, err := compileTexture(md.Pattern, ctx+".pattern")
		if err != nil {
			return nil, err
		}
		m.Texture = texture
	case md.Color != nil:
		m.Texture = graphics.NewSolid(color3(*md.Color))
	}
	return m, nil
}

var texture2DKinds = map[string]graphics.TextureKind{
	"stripe":   graphics.Stripe,
	"ring":     graphics.Ring,
	"checker":  graphics.Checker,
	"gradient": graphics.Gradient,
}

var texture3DKinds = map[string]graphics.TextureKind{
	"stripe3d":   graphics.Stripe3D,
	"ring3d":     graphics.Ring3D,
	"checker3d":  graphics.Checker3D,
	"gradient3d": graphics.Gradient3D,
}

func compileTexture(pd *PatternDoc, ctx string) (*graphics.Texture, error) {
	a := graphics.NewSolid(color3(pd.ColorA))
	b := graphics.NewSolid(color3(pd.ColorB))

	if kind, ok := texture2DKinds[pd.Type]; ok {
		m3, err := compileTransformList2D(pd.Transform, ctx+".transform")
		if err != nil {
			return nil, err
		}
		return graphics.NewPattern2D(kind, a, b, m3), nil
	}
	if kind, ok := texture3DKinds[pd.Type]; ok {
		m4, err := compileTransformList(pd.Transform, ctx+".transform")
		if err != nil {
			return nil, err
		}
		return graphics.NewPattern3D(kind, a, b, m4), nil
	}
	return nil, errf(ctx, "unknown pattern type %q", pd.Type)
}

// compileTransformList2D projects the same named transform records
// used for 3D object transforms down to the 2D homogeneous matrix a
// uv-sampled pattern uses: translate/scale take their first two
// components, rotate_z is the only meaningful rotation in the plane.
func compileTransformList2D(docs []TransformDoc, ctx string) (*lin.M3, error) {
	combined := &lin.M3{}
	combined.Set(lin.M3I)
	for i, td := range docs {
		m, err := compileTransform2D(td, fmt.Sprintf("%s[%d]", ctx, i))
		if err != nil {
			return nil, err
		}
		combined = (&lin.M3{}).Mult(combined, m)
	}
	return combined, nil
}

func compileTransform2D(td TransformDoc, ctx string) (*lin.M3, error) {
	switch td.Type {
	case "translate":
		if len(td.Values) < 2 {
			return nil, errf(ctx, "translate requires at least 2 values for a 2D pattern, got %d", len(td.Values))
		}
		return lin.Translation2D(td.Values[0], td.Values[1]), nil
	case "scale":
		switch len(td.Values) {
		case 1:
			s := td.Values[0]
			return lin.Scaling2D(s, s), nil
		default:
			return lin.Scaling2D(td.Values[0], td.Values[1]), nil
		}
	case "rotate_z":
		if len(td.Values) != 1 {
			return nil, errf(ctx, "rotate_z requires 1 value, got %d", len(td.Values))
		}
		return lin.Rotation2D(td.Values[0]), nil
	default:
		return nil, errf(ctx, "transform type %q has no 2D pattern equivalent", td.Type)
	}
}

func point3(a [3]float64) lin.V4    { return *lin.Point(a[0], a[1], a[2]) }
func color3(a [3]float64) lin.Color { return lin.Color{R: a[0], G: a[1], B: a[2]} }
func v3(a [3]float64) lin.V3        { return lin.V3{X: a[0], Y: a[1], Z: a[2]} }
