package core

import "math"

// Epsilon is the tolerance used for floating point comparison throughout the
// tracer. It also sizes the surface offsets that keep secondary rays from
// re-intersecting their origin surface.
const Epsilon = 1e-5

// FloatEqual reports whether two floats are equal within Epsilon. Infinities
// of the same sign compare equal; unbounded primitives rely on this when
// their bounding coordinates are compared.
func FloatEqual(a, b float64) bool {
	if math.IsInf(a, 1) && math.IsInf(b, 1) {
		return true
	}
	if math.IsInf(a, -1) && math.IsInf(b, -1) {
		return true
	}
	return math.Abs(a-b) < Epsilon
}
