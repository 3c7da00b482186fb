package geometry

import (
	"math"

	"github.com/rayward/go-raytracer/pkg/core"
)

// Plane is the infinite xz plane through the local-space origin.
type Plane struct {
	object
}

// NewPlane builds a plane with default transform and material.
func NewPlane() *Plane {
	return &Plane{object: newObject()}
}

func (p *Plane) Bounds() Bounds {
	inf := math.Inf(1)
	return NewBounds(core.NewPoint(-inf, 0, -inf), core.NewPoint(inf, 0, inf))
}

// LocalIntersect reports the single crossing, or nothing when the ray is
// parallel to or coplanar with the plane.
func (p *Plane) LocalIntersect(r core.Ray) (Intersections, error) {
	if math.Abs(r.Direction.Y) < core.Epsilon {
		return nil, nil
	}
	return Intersections{NewIntersection(-r.Origin.Y/r.Direction.Y, p)}, nil
}

func (p *Plane) LocalNormalAt(_ core.Tuple, _ Intersection) core.Tuple {
	return core.NewVector(0, 1, 0)
}
