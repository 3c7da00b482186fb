// Package world assembles shapes and a light into a renderable scene and
// implements the recursive shading that produces the final colors.
package world

import (
	"math"

	"github.com/rayward/go-raytracer/pkg/core"
	"github.com/rayward/go-raytracer/pkg/geometry"
)

// Computations bundles everything shading needs about a hit: the surface
// point with its shadow and refraction offsets, the viewing geometry, and
// the refractive indices on both sides of the surface.
type Computations struct {
	T          float64
	Object     geometry.Shape
	Point      core.Tuple
	OverPoint  core.Tuple
	UnderPoint core.Tuple
	EyeV       core.Tuple
	NormalV    core.Tuple
	ReflectV   core.Tuple
	N1, N2     float64
	Inside     bool
}

// PrepareComputations derives the shading state for one hit. xs is the full
// sorted intersection list of the same ray; it drives the refractive-index
// bookkeeping, which needs to know every surface the ray crossed before the
// hit.
func PrepareComputations(hit geometry.Intersection, r core.Ray, xs geometry.Intersections) (Computations, error) {
	point := r.Position(hit.T)
	normalV, err := geometry.NormalAt(hit.Object, point, hit)
	if err != nil {
		return Computations{}, err
	}
	eyeV := r.Direction.Negate()

	inside := false
	if normalV.Dot(eyeV) < 0 {
		inside = true
		normalV = normalV.Negate()
	}

	n1, n2 := refractiveIndices(hit, xs)

	offset := normalV.Multiply(core.Epsilon)
	return Computations{
		T:          hit.T,
		Object:     hit.Object,
		Point:      point,
		OverPoint:  point.Add(offset),
		UnderPoint: point.Subtract(offset),
		EyeV:       eyeV,
		NormalV:    normalV,
		ReflectV:   r.Direction.Reflect(normalV),
		N1:         n1,
		N2:         n2,
		Inside:     inside,
	}, nil
}

// refractiveIndices walks the sorted intersections up to the hit, keeping a
// stack of the shapes the ray is currently inside. n1 is the index of the
// material being exited at the hit, n2 of the one being entered; empty stack
// means vacuum on that side.
func refractiveIndices(hit geometry.Intersection, xs geometry.Intersections) (n1, n2 float64) {
	n1, n2 = 1.0, 1.0

	var containers []geometry.Shape
	for _, x := range xs {
		if x == hit {
			if len(containers) > 0 {
				n1 = containers[len(containers)-1].Material().RefractiveIndex
			}
		}

		found := -1
		for i, c := range containers {
			if c.ID() == x.Object.ID() {
				found = i
				break
			}
		}
		if found >= 0 {
			containers = append(containers[:found], containers[found+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if x == hit {
			if len(containers) > 0 {
				n2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			return n1, n2
		}
	}
	return n1, n2
}

// Schlick approximates the Fresnel reflectance at the hit, the fraction of
// light that reflects rather than refracts.
func (c Computations) Schlick() float64 {
	cos := c.EyeV.Dot(c.NormalV)

	if c.N1 > c.N2 {
		n := c.N1 / c.N2
		sin2T := n * n * (1 - cos*cos)
		if sin2T > 1 {
			// Total internal reflection.
			return 1
		}
		cos = math.Sqrt(1 - sin2T)
	}

	r0 := (c.N1 - c.N2) / (c.N1 + c.N2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
