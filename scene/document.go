// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package scene decodes a scene description into a compiled
// graphics.World and graphics.Camera. Scene files are JSON, but are
// decoded with gopkg.in/yaml.v3 — every JSON document is valid YAML,
// and reusing the engine's existing yaml dependency (see load/shd.go)
// means no second serialization library is needed for one input format.
package scene

// Document is the root of a scene file.
type Document struct {
	World  WorldDoc  `yaml:"world"`
	Camera CameraDoc `yaml:"camera"`
}

// WorldDoc describes the light and the object tree roots.
type WorldDoc struct {
	LightSource LightDoc    `yaml:"light_source"`
	Objects     []ObjectDoc `yaml:"objects"`
}

// LightDoc describes a single point light.
type LightDoc struct {
	Intensity [3]float64 `yaml:"intensity"`
	Position  [3]float64 `yaml:"position"`
}

// TransformDoc is one entry in an object's or pattern's transform
// list: a named operation plus its arity-checked value list.
type TransformDoc struct {
	Type   string    `yaml:"type"`
	Values []float64 `yaml:"values"`
}

// BoundsDoc describes a cylinder or cone's vertical extent. YMin/YMax
// accept the JSON tokens "-inf"/"inf" as well as ordinary numbers.
type BoundsDoc struct {
	YMin   Bound `yaml:"y_min"`
	YMax   Bound `yaml:"y_max"`
	Closed bool  `yaml:"closed"`
}

// PatternDoc describes a procedural texture.
type PatternDoc struct {
	Type      string         `yaml:"type"`
	Transform []TransformDoc `yaml:"transform"`
	ColorA    [3]float64     `yaml:"color_a"`
	ColorB    [3]float64     `yaml:"color_b"`
}

// MaterialDoc describes an object's optical properties. Reflectivity,
// Transparency, and RefractiveIndex are pointers so an absent field is
// distinguishable from an explicit zero and falls back to
// graphics.NewMaterial's defaults.
type MaterialDoc struct {
	Ambient         float64     `yaml:"ambient"`
	Diffuse         float64     `yaml:"diffuse"`
	Specular        float64     `yaml:"specular"`
	Shininess       float64     `yaml:"shininess"`
	Reflectivity    *float64    `yaml:"reflectivity"`
	Transparency    *float64    `yaml:"transparency"`
	RefractiveIndex *float64    `yaml:"refractive_index"`
	Color           *[3]float64 `yaml:"color"`
	Pattern         *PatternDoc `yaml:"pattern"`
}

// ObjectDoc describes one node of the scene tree: a shape leaf, or a
// "group" composite with nested Children.
type ObjectDoc struct {
	Shape     string         `yaml:"shape"`
	Transform []TransformDoc `yaml:"transform"`
	Material  *MaterialDoc   `yaml:"material"`
	Children  []ObjectDoc    `yaml:"children"`
	Vertices  [][3]float64   `yaml:"vertices"`
	Bounds    *BoundsDoc     `yaml:"bounds"`
}

// CameraTransformDoc describes the look-from/look-to/up view transform.
type CameraTransformDoc struct {
	InputBase  [3]float64 `yaml:"input_base"`
	OutputBase [3]float64 `yaml:"output_base"`
	UpVector   [3]float64 `yaml:"up_vector"`
}

// CameraDoc describes the camera's viewport and view transform.
type CameraDoc struct {
	ViewportWidth  int                `yaml:"viewport_width"`
	ViewportHeight int                `yaml:"viewport_height"`
	FieldOfView    float64            `yaml:"field_of_view"`
	Transform      CameraTransformDoc `yaml:"transform"`
}
