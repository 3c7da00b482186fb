package world

import (
	"math"

	"github.com/rayward/go-raytracer/pkg/core"
	"github.com/rayward/go-raytracer/pkg/geometry"
	"github.com/rayward/go-raytracer/pkg/material"
)

// MaxDepth bounds the recursion of reflected and refracted rays.
const MaxDepth = 5

// World holds the shapes and the light of a scene. A world without a light
// shades everything black.
type World struct {
	Shapes []geometry.Shape
	Light  *material.PointLight
}

// New builds an empty world.
func New() *World {
	return &World{}
}

// Default builds the two-sphere reference world used throughout the tests:
// an outer green-ish sphere, an inner half-size sphere and a single light
// up and to the left.
func Default() *World {
	s1 := geometry.NewSphere()
	m := material.New()
	m.Pattern = material.NewSolid(core.NewColor(0.8, 1.0, 0.6))
	m.Diffuse = 0.7
	m.Specular = 0.2
	s1.SetMaterial(m)

	s2 := geometry.NewSphere()
	s2.SetTransform(core.Identity().Scale(0.5, 0.5, 0.5))

	light := material.NewPointLight(core.NewPoint(-10, 10, -10), core.White)
	return &World{
		Shapes: []geometry.Shape{s1, s2},
		Light:  &light,
	}
}

// AddShape appends a root shape to the world.
func (w *World) AddShape(s geometry.Shape) {
	w.Shapes = append(w.Shapes, s)
}

// Intersect collects the intersections of the ray with every shape, sorted
// by t.
func (w *World) Intersect(r core.Ray) (geometry.Intersections, error) {
	var xs geometry.Intersections
	for _, s := range w.Shapes {
		sxs, err := geometry.Intersect(s, r)
		if err != nil {
			return nil, err
		}
		xs = append(xs, sxs...)
	}
	xs.Sort()
	return xs, nil
}

// ColorAt traces the ray into the world and returns the shaded color, black
// when the ray hits nothing.
func (w *World) ColorAt(r core.Ray) (core.Color, error) {
	return w.colorAt(r, MaxDepth)
}

func (w *World) colorAt(r core.Ray, remaining int) (core.Color, error) {
	xs, err := w.Intersect(r)
	if err != nil {
		return core.Color{}, err
	}

	hit, ok := xs.Hit()
	if !ok {
		return core.Black, nil
	}

	comps, err := PrepareComputations(hit, r, xs)
	if err != nil {
		return core.Color{}, err
	}
	return w.shadeHit(comps, remaining)
}

// ShadeHit computes the color at a prepared hit with a fresh recursion
// budget.
func (w *World) ShadeHit(comps Computations) (core.Color, error) {
	return w.shadeHit(comps, MaxDepth)
}

func (w *World) shadeHit(comps Computations, remaining int) (core.Color, error) {
	if w.Light == nil {
		return core.Black, nil
	}

	shadowed, err := w.IsShadowed(comps.OverPoint)
	if err != nil {
		return core.Color{}, err
	}

	m := comps.Object.Material()
	surface, err := m.Lighting(comps.Object, *w.Light, comps.OverPoint, comps.EyeV, comps.NormalV, shadowed)
	if err != nil {
		return core.Color{}, err
	}

	reflected, err := w.reflectedColor(comps, remaining)
	if err != nil {
		return core.Color{}, err
	}
	refracted, err := w.refractedColor(comps, remaining)
	if err != nil {
		return core.Color{}, err
	}

	// A surface that both reflects and transmits splits the secondary
	// light by the Fresnel reflectance.
	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := comps.Schlick()
		return surface.
			Add(reflected.Scale(reflectance)).
			Add(refracted.Scale(1 - reflectance)), nil
	}
	return surface.Add(reflected).Add(refracted), nil
}

// IsShadowed reports whether something blocks the segment from the point to
// the light.
func (w *World) IsShadowed(point core.Tuple) (bool, error) {
	if w.Light == nil {
		return false, nil
	}

	v := w.Light.Position.Subtract(point)
	distance := v.Magnitude()

	r, err := core.NewRay(point, v.Normalize())
	if err != nil {
		return false, err
	}
	xs, err := w.Intersect(r)
	if err != nil {
		return false, err
	}

	if hit, ok := xs.Hit(); ok && hit.T < distance {
		return true, nil
	}
	return false, nil
}

func (w *World) reflectedColor(comps Computations, remaining int) (core.Color, error) {
	reflective := comps.Object.Material().Reflective
	if remaining <= 0 || reflective == 0 {
		return core.Black, nil
	}

	reflectRay, err := core.NewRay(comps.OverPoint, comps.ReflectV)
	if err != nil {
		return core.Color{}, err
	}
	c, err := w.colorAt(reflectRay, remaining-1)
	if err != nil {
		return core.Color{}, err
	}
	return c.Scale(reflective), nil
}

func (w *World) refractedColor(comps Computations, remaining int) (core.Color, error) {
	transparency := comps.Object.Material().Transparency
	if remaining <= 0 || transparency == 0 {
		return core.Black, nil
	}

	// Snell's law. sin2T above one means total internal reflection, so
	// nothing passes through.
	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return core.Black, nil
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.NormalV.Multiply(nRatio*cosI - cosT).
		Subtract(comps.EyeV.Multiply(nRatio))

	refractRay, err := core.NewRay(comps.UnderPoint, direction)
	if err != nil {
		return core.Color{}, err
	}
	c, err := w.colorAt(refractRay, remaining-1)
	if err != nil {
		return core.Color{}, err
	}
	return c.Scale(transparency), nil
}
