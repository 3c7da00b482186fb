package geometry

import (
	"math"

	"github.com/rayward/go-raytracer/pkg/core"
)

// Bounds is an axis-aligned bounding box. Min and Max are points; an empty
// box has Min at +infinity and Max at -infinity so that merging works
// without special cases.
type Bounds struct {
	Min, Max core.Tuple
}

// NewBounds builds a box from explicit corner points.
func NewBounds(min, max core.Tuple) Bounds {
	return Bounds{Min: min, Max: max}
}

// EmptyBounds returns a box containing nothing.
func EmptyBounds() Bounds {
	inf := math.Inf(1)
	return Bounds{
		Min: core.NewPoint(inf, inf, inf),
		Max: core.NewPoint(-inf, -inf, -inf),
	}
}

// AddPoint grows the box to include p. NaN coordinates are ignored rather
// than propagated; rotating the infinite corners of an unbounded shape can
// add +Inf and -Inf, and a NaN would otherwise poison the box for good.
func (b Bounds) AddPoint(p core.Tuple) Bounds {
	return Bounds{
		Min: core.NewPoint(minSkipNaN(b.Min.X, p.X), minSkipNaN(b.Min.Y, p.Y), minSkipNaN(b.Min.Z, p.Z)),
		Max: core.NewPoint(maxSkipNaN(b.Max.X, p.X), maxSkipNaN(b.Max.Y, p.Y), maxSkipNaN(b.Max.Z, p.Z)),
	}
}

func minSkipNaN(a, b float64) float64 {
	if math.IsNaN(b) {
		return a
	}
	return math.Min(a, b)
}

func maxSkipNaN(a, b float64) float64 {
	if math.IsNaN(b) {
		return a
	}
	return math.Max(a, b)
}

// Merge grows the box to include other.
func (b Bounds) Merge(other Bounds) Bounds {
	return b.AddPoint(other.Min).AddPoint(other.Max)
}

// ContainsPoint reports whether p lies inside the box, boundary included.
func (b Bounds) ContainsPoint(p core.Tuple) bool {
	return b.Min.X <= p.X && p.X <= b.Max.X &&
		b.Min.Y <= p.Y && p.Y <= b.Max.Y &&
		b.Min.Z <= p.Z && p.Z <= b.Max.Z
}

// ContainsBounds reports whether other fits entirely inside the box.
func (b Bounds) ContainsBounds(other Bounds) bool {
	return b.ContainsPoint(other.Min) && b.ContainsPoint(other.Max)
}

// Transform applies t to all eight corners and returns the box bounding the
// results. The result is axis-aligned in the destination space, so it may be
// looser than the original.
func (b Bounds) Transform(t core.Transform) Bounds {
	corners := [8]core.Tuple{
		b.Min,
		core.NewPoint(b.Min.X, b.Min.Y, b.Max.Z),
		core.NewPoint(b.Min.X, b.Max.Y, b.Min.Z),
		core.NewPoint(b.Min.X, b.Max.Y, b.Max.Z),
		core.NewPoint(b.Max.X, b.Min.Y, b.Min.Z),
		core.NewPoint(b.Max.X, b.Min.Y, b.Max.Z),
		core.NewPoint(b.Max.X, b.Max.Y, b.Min.Z),
		b.Max,
	}
	out := EmptyBounds()
	for _, c := range corners {
		out = out.AddPoint(transformCorner(t, c))
	}
	return out
}

// transformCorner applies t to one box corner. Unbounded shapes have corners
// with infinite coordinates, where a plain matrix multiply turns 0 * Inf
// into NaN; zero matrix entries are skipped so an infinite coordinate only
// reaches the axes the transform actually couples it to.
func transformCorner(t core.Transform, p core.Tuple) core.Tuple {
	m := t.Matrix()
	in := [4]float64{p.X, p.Y, p.Z, p.W}
	var out [4]float64
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if e := m.At(row, col); e != 0 {
				out[row] += e * in[col]
			}
		}
	}
	return core.NewTuple(out[0], out[1], out[2], out[3])
}

// IntersectedBy reports whether the ray passes through the box. It runs the
// slab test on each axis and checks that the intervals overlap.
func (b Bounds) IntersectedBy(r core.Ray) bool {
	xtMin, xtMax := checkAxis(r.Origin.X, r.Direction.X, b.Min.X, b.Max.X)
	ytMin, ytMax := checkAxis(r.Origin.Y, r.Direction.Y, b.Min.Y, b.Max.Y)
	ztMin, ztMax := checkAxis(r.Origin.Z, r.Direction.Z, b.Min.Z, b.Max.Z)

	tMin := math.Max(xtMin, math.Max(ytMin, ztMin))
	tMax := math.Min(xtMax, math.Min(ytMax, ztMax))
	return tMin <= tMax
}

// checkAxis computes the entry and exit parameters of a ray against one pair
// of parallel planes. Division by a zero direction component yields the
// infinities the interval comparison expects.
func checkAxis(origin, direction, min, max float64) (float64, float64) {
	tMinNumerator := min - origin
	tMaxNumerator := max - origin

	var tMin, tMax float64
	if math.Abs(direction) >= core.Epsilon {
		tMin = tMinNumerator / direction
		tMax = tMaxNumerator / direction
	} else {
		tMin = tMinNumerator * math.Inf(1)
		tMax = tMaxNumerator * math.Inf(1)
		// An origin exactly on a slab plane zeroes a numerator and the
		// product above is NaN. The ray then runs along that plane, which
		// counts as inside the slab for every t.
		if math.IsNaN(tMin) {
			tMin = math.Inf(-1)
		}
		if math.IsNaN(tMax) {
			tMax = math.Inf(1)
		}
	}
	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}
	return tMin, tMax
}
