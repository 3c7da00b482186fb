package geometry

import (
	"math"

	"github.com/rayward/go-raytracer/pkg/core"
	"github.com/rayward/go-raytracer/pkg/material"
)

// Sphere is a unit sphere centered on the local-space origin. Position and
// size come from the transform.
type Sphere struct {
	object
}

// NewSphere builds a unit sphere with default transform and material.
func NewSphere() *Sphere {
	return &Sphere{object: newObject()}
}

// NewGlassSphere builds a fully transparent sphere with the refractive
// index of glass, handy for refraction scenes and tests.
func NewGlassSphere() *Sphere {
	s := NewSphere()
	s.SetMaterial(material.Glass())
	return s
}

func (s *Sphere) Bounds() Bounds {
	return NewBounds(core.NewPoint(-1, -1, -1), core.NewPoint(1, 1, 1))
}

// LocalIntersect solves the quadratic for a ray against the unit sphere.
// Tangent rays report the root twice.
func (s *Sphere) LocalIntersect(r core.Ray) (Intersections, error) {
	sphereToRay := r.Origin.Subtract(core.Origin())

	a := r.Direction.Dot(r.Direction)
	b := 2 * r.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil, nil
	}

	root := math.Sqrt(discriminant)
	return Intersections{
		NewIntersection((-b-root)/(2*a), s),
		NewIntersection((-b+root)/(2*a), s),
	}, nil
}

func (s *Sphere) LocalNormalAt(point core.Tuple, _ Intersection) core.Tuple {
	return point.Subtract(core.Origin())
}
