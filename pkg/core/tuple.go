package core

import "math"

// Tuple is a homogeneous 4-component value. W distinguishes points (w=1)
// from vectors (w=0) so a single 4x4 matrix type transforms both.
type Tuple struct {
	X, Y, Z, W float64
}

// NewTuple creates a tuple with an explicit w component.
func NewTuple(x, y, z, w float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// NewPoint creates a point (w=1).
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// NewVector creates a vector (w=0).
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// Origin returns the point (0,0,0).
func Origin() Tuple {
	return NewPoint(0, 0, 0)
}

// IsPoint reports whether the tuple is a point.
func (t Tuple) IsPoint() bool {
	return t.W == 1
}

// IsVector reports whether the tuple is a vector.
func (t Tuple) IsVector() bool {
	return t.W == 0
}

// Add returns the component-wise sum of two tuples.
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the component-wise difference of two tuples.
// Subtracting two points yields a vector; point minus vector yields a point.
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the tuple with every component negated.
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply returns the tuple scaled by a scalar.
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple divided by a scalar.
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// Magnitude returns the length of the tuple.
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns a unit tuple in the same direction.
func (t Tuple) Normalize() Tuple {
	return t.Divide(t.Magnitude())
}

// Dot returns the dot product of two tuples.
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the cross product of two vectors. The result is always a
// vector (w=0) regardless of the operands' w components.
func (t Tuple) Cross(other Tuple) Tuple {
	return NewVector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Reflect returns the tuple reflected about the given normal.
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}

// AsVector returns the tuple with its w component forced to zero.
func (t Tuple) AsVector() Tuple {
	t.W = 0
	return t
}

// Equals reports component-wise equality within Epsilon.
func (t Tuple) Equals(other Tuple) bool {
	return FloatEqual(t.X, other.X) &&
		FloatEqual(t.Y, other.Y) &&
		FloatEqual(t.Z, other.Z) &&
		FloatEqual(t.W, other.W)
}
