package geometry

import (
	"math"

	"github.com/rayward/go-raytracer/pkg/core"
)

// Cone is a double-napped cone along the local y axis with its apex at the
// origin, infinite unless truncated. The cap radius at height y is |y|.
type Cone struct {
	object
	Minimum, Maximum float64
	Closed           bool
}

// NewCone builds an infinite open double cone.
func NewCone() *Cone {
	return &Cone{
		object:  newObject(),
		Minimum: math.Inf(-1),
		Maximum: math.Inf(1),
	}
}

func (c *Cone) Bounds() Bounds {
	a := math.Abs(c.Minimum)
	b := math.Abs(c.Maximum)
	limit := math.Max(a, b)
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		limit = math.Inf(1)
	}
	return NewBounds(core.NewPoint(-limit, c.Minimum, -limit), core.NewPoint(limit, c.Maximum, limit))
}

func (c *Cone) LocalIntersect(r core.Ray) (Intersections, error) {
	a := r.Direction.X*r.Direction.X - r.Direction.Y*r.Direction.Y + r.Direction.Z*r.Direction.Z
	b := 2*r.Origin.X*r.Direction.X - 2*r.Origin.Y*r.Direction.Y + 2*r.Origin.Z*r.Direction.Z
	k := r.Origin.X*r.Origin.X - r.Origin.Y*r.Origin.Y + r.Origin.Z*r.Origin.Z

	var xs Intersections

	switch {
	case core.FloatEqual(a, 0) && core.FloatEqual(b, 0):
		// Parallel to one half of the cone and missing the other.
		return c.intersectCaps(r, nil), nil
	case core.FloatEqual(a, 0):
		// Parallel to one half: a single wall hit on the other.
		xs = append(xs, NewIntersection(-k/(2*b), c))
		return c.intersectCaps(r, xs), nil
	}

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

func (c *Cone) intersectCaps(r core.Ray, xs Intersections) Intersections {
	if !c.Closed || core.FloatEqual(r.Direction.Y, 0) {
		return xs
	}

	t := (c.Minimum - r.Origin.Y) / r.Direction.Y
	if checkCap(r, t, c.Minimum) {
		xs = append(xs, NewIntersection(t, c))
	}
	t = (c.Maximum - r.Origin.Y) / r.Direction.Y
	if checkCap(r, t, c.Maximum) {
		xs = append(xs, NewIntersection(t, c))
	}
	return xs
}

func (c *Cone) LocalNormalAt(point core.Tuple, _ Intersection) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	switch {
	case dist < 1 && point.Y >= c.Maximum-core.Epsilon:
		return core.NewVector(0, 1, 0)
	case dist < 1 && point.Y <= c.Minimum+core.Epsilon:
		return core.NewVector(0, -1, 0)
	default:
		y := math.Sqrt(dist)
		if point.Y > 0 {
			y = -y
		}
		return core.NewVector(point.X, y, point.Z)
	}
}
