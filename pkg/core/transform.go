package core

import "math"

// Transform is an affine transformation over homogeneous tuples. Builder
// methods pre-multiply the accumulated matrix, so chained calls read in
// application order: Identity().Scale(...).RotateX(...).Translate(...)
// scales first, then rotates, then translates.
type Transform struct {
	m Matrix
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{m: IdentityMatrix()}
}

// TransformFromMatrix wraps a 4x4 matrix as a Transform.
func TransformFromMatrix(m Matrix) Transform {
	return Transform{m: m}
}

// Matrix returns the accumulated 4x4 matrix.
func (t Transform) Matrix() Matrix {
	return t.m
}

func (t Transform) apply(op Matrix) Transform {
	return Transform{m: op.Multiply(t.m)}
}

// Translate appends a translation.
func (t Transform) Translate(x, y, z float64) Transform {
	op := IdentityMatrix().
		Set(0, 3, x).
		Set(1, 3, y).
		Set(2, 3, z)
	return t.apply(op)
}

// Scale appends a scaling.
func (t Transform) Scale(x, y, z float64) Transform {
	op := IdentityMatrix().
		Set(0, 0, x).
		Set(1, 1, y).
		Set(2, 2, z)
	return t.apply(op)
}

// RotateX appends a rotation about the x axis by r radians.
func (t Transform) RotateX(r float64) Transform {
	sin, cos := math.Sin(r), math.Cos(r)
	op := IdentityMatrix().
		Set(1, 1, cos).Set(1, 2, -sin).
		Set(2, 1, sin).Set(2, 2, cos)
	return t.apply(op)
}

// RotateY appends a rotation about the y axis by r radians.
func (t Transform) RotateY(r float64) Transform {
	sin, cos := math.Sin(r), math.Cos(r)
	op := IdentityMatrix().
		Set(0, 0, cos).Set(0, 2, sin).
		Set(2, 0, -sin).Set(2, 2, cos)
	return t.apply(op)
}

// RotateZ appends a rotation about the z axis by r radians.
func (t Transform) RotateZ(r float64) Transform {
	sin, cos := math.Sin(r), math.Cos(r)
	op := IdentityMatrix().
		Set(0, 0, cos).Set(0, 1, -sin).
		Set(1, 0, sin).Set(1, 1, cos)
	return t.apply(op)
}

// Shear appends a shearing where each component moves in proportion to the
// other two: xy is x moved in proportion to y, and so on.
func (t Transform) Shear(xy, xz, yx, yz, zx, zy float64) Transform {
	op := IdentityMatrix().
		Set(0, 1, xy).Set(0, 2, xz).
		Set(1, 0, yx).Set(1, 2, yz).
		Set(2, 0, zx).Set(2, 1, zy)
	return t.apply(op)
}

// Inverse returns the inverse transform, or ErrDegenerateTransform when the
// accumulated matrix cannot be inverted.
func (t Transform) Inverse() (Transform, error) {
	inv, err := t.m.Inverse()
	if err != nil {
		return Transform{}, err
	}
	return Transform{m: inv}, nil
}

// Transpose returns the transform with its matrix transposed.
func (t Transform) Transpose() Transform {
	return Transform{m: t.m.Transpose()}
}

// ApplyTo transforms a tuple.
func (t Transform) ApplyTo(p Tuple) Tuple {
	return t.m.MultiplyTuple(p)
}

// ApplyToRay transforms a ray's origin and direction. The direction is not
// renormalized; t values measured along the transformed ray stay comparable.
func (t Transform) ApplyToRay(r Ray) Ray {
	return Ray{
		Origin:    t.ApplyTo(r.Origin),
		Direction: t.ApplyTo(r.Direction),
	}
}

// Compose returns this transform followed by other (other * t).
func (t Transform) Compose(other Transform) Transform {
	return Transform{m: other.m.Multiply(t.m)}
}

// Equals reports matrix equality within Epsilon.
func (t Transform) Equals(other Transform) bool {
	return t.m.Equals(other.m)
}

// ViewTransform builds the camera orientation matrix looking from `from`
// toward `to`, with `up` indicating which way is up.
func ViewTransform(from, to, up Tuple) Transform {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := MatrixFromRows(
		[]float64{left.X, left.Y, left.Z, 0},
		[]float64{trueUp.X, trueUp.Y, trueUp.Z, 0},
		[]float64{-forward.X, -forward.Y, -forward.Z, 0},
		[]float64{0, 0, 0, 1},
	)

	return Identity().
		Translate(-from.X, -from.Y, -from.Z).
		Compose(TransformFromMatrix(orientation))
}
