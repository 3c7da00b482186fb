// Package material implements the Phong reflectance model and the
// procedural color patterns shapes are painted with.
package material

import (
	"math"

	"github.com/rayward/go-raytracer/pkg/core"
)

// Transformable is the part of a shape the material system needs: its
// object-to-parent transform, used to map world points into pattern space.
type Transformable interface {
	Transform() core.Transform
}

// Material holds the Phong coefficients plus the reflection/refraction
// parameters and the surface pattern.
type Material struct {
	Pattern         Pattern
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
}

// New returns the default material: solid white, Phong 0.1/0.9/0.9/200,
// fully opaque with no reflection.
func New() Material {
	return Material{
		Pattern:         NewSolid(core.White),
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200.0,
		Reflective:      0.0,
		Transparency:    0.0,
		RefractiveIndex: 1.0,
	}
}

// Glass returns a fully transparent material with the refractive index of
// glass.
func Glass() Material {
	m := New()
	m.Transparency = 1.0
	m.RefractiveIndex = 1.5
	return m
}

// WithColor returns a copy of the material painted a single solid color.
func (m Material) WithColor(c core.Color) Material {
	m.Pattern = NewSolid(c)
	return m
}

// Equals compares the scalar coefficients and the pattern. Two materials
// with different patterns are not equal.
func (m Material) Equals(other Material) bool {
	return core.FloatEqual(m.Ambient, other.Ambient) &&
		core.FloatEqual(m.Diffuse, other.Diffuse) &&
		core.FloatEqual(m.Specular, other.Specular) &&
		core.FloatEqual(m.Shininess, other.Shininess) &&
		core.FloatEqual(m.Reflective, other.Reflective) &&
		core.FloatEqual(m.Transparency, other.Transparency) &&
		core.FloatEqual(m.RefractiveIndex, other.RefractiveIndex) &&
		patternsEqual(m.Pattern, other.Pattern)
}

// Lighting combines the surface color with the light's intensity at a
// point. In shadow only the ambient term contributes; otherwise diffuse and
// specular terms are added when their dot products are positive.
func (m Material) Lighting(obj Transformable, light PointLight, point, eyeV, normalV core.Tuple, inShadow bool) (core.Color, error) {
	surface, err := ColorAtObject(m.Pattern, obj, point)
	if err != nil {
		return core.Black, err
	}
	effective := surface.Multiply(light.Intensity)

	ambient := effective.Scale(m.Ambient)
	if inShadow {
		return ambient, nil
	}

	lightV := light.Position.Subtract(point).Normalize()

	// Negative means the light is on the other side of the surface.
	lightDotNormal := lightV.Dot(normalV)
	if lightDotNormal < 0 {
		return ambient, nil
	}

	diffuse := effective.Scale(m.Diffuse * lightDotNormal)

	reflectV := lightV.Negate().Reflect(normalV)
	reflectDotEye := reflectV.Dot(eyeV)
	if reflectDotEye <= 0 {
		return ambient.Add(diffuse), nil
	}

	factor := math.Pow(reflectDotEye, m.Shininess)
	specular := light.Intensity.Scale(m.Specular * factor)

	return ambient.Add(diffuse).Add(specular), nil
}
