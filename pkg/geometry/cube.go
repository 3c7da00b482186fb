package geometry

import (
	"math"

	"github.com/rayward/go-raytracer/pkg/core"
)

// Cube is the axis-aligned cube spanning -1..1 on each local axis.
type Cube struct {
	object
}

// NewCube builds a cube with default transform and material.
func NewCube() *Cube {
	return &Cube{object: newObject()}
}

func (c *Cube) Bounds() Bounds {
	return NewBounds(core.NewPoint(-1, -1, -1), core.NewPoint(1, 1, 1))
}

// LocalIntersect runs the slab test: the ray enters at the largest of the
// per-axis minimums and exits at the smallest of the maximums.
func (c *Cube) LocalIntersect(r core.Ray) (Intersections, error) {
	xtMin, xtMax := checkAxis(r.Origin.X, r.Direction.X, -1, 1)
	ytMin, ytMax := checkAxis(r.Origin.Y, r.Direction.Y, -1, 1)
	ztMin, ztMax := checkAxis(r.Origin.Z, r.Direction.Z, -1, 1)

	tMin := math.Max(xtMin, math.Max(ytMin, ztMin))
	tMax := math.Min(xtMax, math.Min(ytMax, ztMax))

	if tMin > tMax {
		return nil, nil
	}
	return Intersections{NewIntersection(tMin, c), NewIntersection(tMax, c)}, nil
}

// LocalNormalAt picks the face whose coordinate has the largest magnitude.
// Corners and edges resolve to the x face first, then y.
func (c *Cube) LocalNormalAt(point core.Tuple, _ Intersection) core.Tuple {
	maxC := math.Max(math.Abs(point.X), math.Max(math.Abs(point.Y), math.Abs(point.Z)))

	switch maxC {
	case math.Abs(point.X):
		return core.NewVector(point.X, 0, 0)
	case math.Abs(point.Y):
		return core.NewVector(0, point.Y, 0)
	default:
		return core.NewVector(0, 0, point.Z)
	}
}
