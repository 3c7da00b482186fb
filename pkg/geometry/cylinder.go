package geometry

import (
	"math"

	"github.com/rayward/go-raytracer/pkg/core"
)

// Cylinder is a radius-1 cylinder along the local y axis, infinite unless
// truncated. Truncation bounds are exclusive; Closed adds end caps.
type Cylinder struct {
	object
	Minimum, Maximum float64
	Closed           bool
}

// NewCylinder builds an infinite open cylinder.
func NewCylinder() *Cylinder {
	return &Cylinder{
		object:  newObject(),
		Minimum: math.Inf(-1),
		Maximum: math.Inf(1),
	}
}

func (c *Cylinder) Bounds() Bounds {
	return NewBounds(core.NewPoint(-1, c.Minimum, -1), core.NewPoint(1, c.Maximum, 1))
}

func (c *Cylinder) LocalIntersect(r core.Ray) (Intersections, error) {
	a := r.Direction.X*r.Direction.X + r.Direction.Z*r.Direction.Z

	// Parallel to the y axis: only the caps can be hit.
	if core.FloatEqual(a, 0) {
		return c.intersectCaps(r, nil), nil
	}

	b := 2*r.Origin.X*r.Direction.X + 2*r.Origin.Z*r.Direction.Z
	k := r.Origin.X*r.Origin.X + r.Origin.Z*r.Origin.Z - 1

	disc := b*b - 4*a*k
	if disc < 0 {
		return nil, nil
	}

	root := math.Sqrt(disc)
	t0 := (-b - root) / (2 * a)
	t1 := (-b + root) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	var xs Intersections

	y0 := r.Origin.Y + t0*r.Direction.Y
	if c.Minimum < y0 && y0 < c.Maximum {
		xs = append(xs, NewIntersection(t0, c))
	}
	y1 := r.Origin.Y + t1*r.Direction.Y
	if c.Minimum < y1 && y1 < c.Maximum {
		xs = append(xs, NewIntersection(t1, c))
	}

	return c.intersectCaps(r, xs), nil
}

func (c *Cylinder) intersectCaps(r core.Ray, xs Intersections) Intersections {
	if !c.Closed || core.FloatEqual(r.Direction.Y, 0) {
		return xs
	}

	t := (c.Minimum - r.Origin.Y) / r.Direction.Y
	if checkCap(r, t, 1) {
		xs = append(xs, NewIntersection(t, c))
	}
	t = (c.Maximum - r.Origin.Y) / r.Direction.Y
	if checkCap(r, t, 1) {
		xs = append(xs, NewIntersection(t, c))
	}
	return xs
}

// LocalNormalAt distinguishes the caps from the curved wall by the squared
// distance from the y axis.
func (c *Cylinder) LocalNormalAt(point core.Tuple, _ Intersection) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	switch {
	case dist < 1 && point.Y >= c.Maximum-core.Epsilon:
		return core.NewVector(0, 1, 0)
	case dist < 1 && point.Y <= c.Minimum+core.Epsilon:
		return core.NewVector(0, -1, 0)
	default:
		return core.NewVector(point.X, 0, point.Z)
	}
}

// checkCap reports whether the ray at parameter t lies within the cap of
// the given radius.
func checkCap(r core.Ray, t, radius float64) bool {
	x := r.Origin.X + t*r.Direction.X
	z := r.Origin.Z + t*r.Direction.Z
	return x*x+z*z <= radius*radius
}
