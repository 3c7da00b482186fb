package geometry

import "sort"

// Intersection records one crossing of a ray and a shape. Object is always
// the concrete leaf primitive, never an enclosing group. U and V hold
// barycentric coordinates for triangle hits; HasUV reports whether they
// are meaningful.
type Intersection struct {
	T      float64
	Object Shape
	U, V   float64
	HasUV  bool
}

// NewIntersection builds an intersection at parameter t on shape s.
func NewIntersection(t float64, s Shape) Intersection {
	return Intersection{T: t, Object: s}
}

// NewIntersectionUV builds an intersection carrying barycentric coordinates.
func NewIntersectionUV(t float64, s Shape, u, v float64) Intersection {
	return Intersection{T: t, Object: s, U: u, V: v, HasUV: true}
}

// Intersections is a collection of intersections along a single ray.
type Intersections []Intersection

// Sort orders the intersections by ascending t.
func (xs Intersections) Sort() {
	sort.Slice(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
}

// Hit returns the visible intersection, the one with the smallest
// non-negative t. The second value is false when every intersection lies
// behind the ray origin.
func (xs Intersections) Hit() (Intersection, bool) {
	var best Intersection
	found := false
	for _, x := range xs {
		if x.T < 0 {
			continue
		}
		if !found || x.T < best.T {
			best = x
			found = true
		}
	}
	return best, found
}
