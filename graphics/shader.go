// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package graphics

import (
	"math"

	"github.com/galvanized-logic/raytrace/math/lin"
)

// Phong evaluates the direct lighting term at point on object, lit by
// light, given the surface normal, the view direction back toward the
// eye, and whether point is in shadow. It never recurses — reflection
// and refraction are layered on by World.ColorAt.
func Phong(material *Material, object *Object, light PointLight, point, normal, view lin.V4, inShadow bool) lin.Color {
	surfaceColor := object.ColorAt(point)
	var effective lin.Color
	effective.Mult(&surfaceColor, &light.Intensity)

	var ambient lin.Color
	ambient.Scale(&effective, material.Ambient)
	if inShadow {
		return ambient
	}

	var lightDir lin.V4
	lightDir.Sub(&light.Position, &point)
	lightDir.Unit()

	cosLi := lightDir.Dot(&normal)
	if cosLi < 0 {
		return ambient
	}

	var diffuse lin.Color
	diffuse.Scale(&effective, material.Diffuse*cosLi)

	var negLightDir, reflectDir lin.V4
	negLightDir.Neg(&lightDir)
	reflectDir.Reflect(&negLightDir, &normal)
	cosRv := reflectDir.Dot(&view)

	var specular lin.Color
	if cosRv > 0 {
		factor := material.Specular * math.Pow(cosRv, material.Shininess)
		specular.Scale(&light.Intensity, factor)
	}

	var out lin.Color
	out.Add(&ambient, &diffuse)
	out.Add(&out, &specular)
	return out
}
