package geometry

import (
	"math"

	"github.com/rayward/go-raytracer/pkg/core"
)

// Triangle is a flat triangle with a single precomputed face normal. The
// edge vectors and normal are derived once from the corner points.
type Triangle struct {
	object
	P1, P2, P3 core.Tuple
	E1, E2     core.Tuple
	Normal     core.Tuple
}

// NewTriangle builds a triangle from three corner points.
func NewTriangle(p1, p2, p3 core.Tuple) *Triangle {
	e1 := p2.Subtract(p1)
	e2 := p3.Subtract(p1)
	return &Triangle{
		object: newObject(),
		P1:     p1, P2: p2, P3: p3,
		E1: e1, E2: e2,
		Normal: e2.Cross(e1).Normalize(),
	}
}

func (t *Triangle) Bounds() Bounds {
	return EmptyBounds().AddPoint(t.P1).AddPoint(t.P2).AddPoint(t.P3)
}

// LocalIntersect runs the Möller-Trumbore test, rejecting rays that are
// parallel to the triangle plane or whose barycentric coordinates fall
// outside the triangle.
func (t *Triangle) LocalIntersect(r core.Ray) (Intersections, error) {
	hit, _, _, ok := t.intersectUV(r)
	if !ok {
		return nil, nil
	}
	return Intersections{NewIntersection(hit, t)}, nil
}

// intersectUV is the shared Möller-Trumbore core, reporting the hit
// parameter and barycentric coordinates.
func (t *Triangle) intersectUV(r core.Ray) (float64, float64, float64, bool) {
	dirCrossE2 := r.Direction.Cross(t.E2)
	det := t.E1.Dot(dirCrossE2)
	if math.Abs(det) < core.Epsilon {
		return 0, 0, 0, false
	}

	f := 1 / det
	p1ToOrigin := r.Origin.Subtract(t.P1)
	u := f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	originCrossE1 := p1ToOrigin.Cross(t.E1)
	v := f * r.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	return f * t.E2.Dot(originCrossE1), u, v, true
}

func (t *Triangle) LocalNormalAt(_ core.Tuple, _ Intersection) core.Tuple {
	return t.Normal
}

// SmoothTriangle carries a normal per corner and interpolates between them
// with the barycentric coordinates of the hit.
type SmoothTriangle struct {
	Triangle
	N1, N2, N3 core.Tuple
}

// NewSmoothTriangle builds a triangle with per-corner normals.
func NewSmoothTriangle(p1, p2, p3, n1, n2, n3 core.Tuple) *SmoothTriangle {
	return &SmoothTriangle{
		Triangle: *NewTriangle(p1, p2, p3),
		N1:       n1, N2: n2, N3: n3,
	}
}

func (t *SmoothTriangle) LocalIntersect(r core.Ray) (Intersections, error) {
	hit, u, v, ok := t.intersectUV(r)
	if !ok {
		return nil, nil
	}
	return Intersections{NewIntersectionUV(hit, t, u, v)}, nil
}

func (t *SmoothTriangle) LocalNormalAt(_ core.Tuple, hit Intersection) core.Tuple {
	return t.N2.Multiply(hit.U).
		Add(t.N3.Multiply(hit.V)).
		Add(t.N1.Multiply(1 - hit.U - hit.V))
}
