package core

import "errors"

// ErrDegenerateTransform is returned when a matrix with a zero determinant is
// inverted. Geometry code treats it as a recoverable condition, never a panic.
var ErrDegenerateTransform = errors.New("matrix is not invertible")

// Matrix is a square matrix of size 2, 3 or 4, stored row-major. It is an
// immutable value; all operations return new matrices.
type Matrix struct {
	size int
	els  [16]float64
}

// NewMatrix creates a size x size zero matrix.
func NewMatrix(size int) Matrix {
	return Matrix{size: size}
}

// MatrixFromRows creates a matrix from row slices. All rows must have the
// same length as the number of rows.
func MatrixFromRows(rows ...[]float64) Matrix {
	m := Matrix{size: len(rows)}
	for r, row := range rows {
		for c, v := range row {
			m.els[r*m.size+c] = v
		}
	}
	return m
}

// IdentityMatrix returns the 4x4 identity matrix.
func IdentityMatrix() Matrix {
	m := NewMatrix(4)
	for i := 0; i < 4; i++ {
		m.els[i*4+i] = 1
	}
	return m
}

// Size returns the matrix dimension.
func (m Matrix) Size() int {
	return m.size
}

// At returns the element at the given row and column.
func (m Matrix) At(row, col int) float64 {
	return m.els[row*m.size+col]
}

// Set returns a copy of the matrix with one element replaced.
func (m Matrix) Set(row, col int, v float64) Matrix {
	m.els[row*m.size+col] = v
	return m
}

// Multiply returns the matrix product m * other.
func (m Matrix) Multiply(other Matrix) Matrix {
	out := NewMatrix(m.size)
	for row := 0; row < m.size; row++ {
		for col := 0; col < m.size; col++ {
			var sum float64
			for k := 0; k < m.size; k++ {
				sum += m.At(row, k) * other.At(k, col)
			}
			out.els[row*m.size+col] = sum
		}
	}
	return out
}

// MultiplyTuple returns the 4x4 matrix applied to a tuple.
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m.At(0, 0)*t.X + m.At(0, 1)*t.Y + m.At(0, 2)*t.Z + m.At(0, 3)*t.W,
		Y: m.At(1, 0)*t.X + m.At(1, 1)*t.Y + m.At(1, 2)*t.Z + m.At(1, 3)*t.W,
		Z: m.At(2, 0)*t.X + m.At(2, 1)*t.Y + m.At(2, 2)*t.Z + m.At(2, 3)*t.W,
		W: m.At(3, 0)*t.X + m.At(3, 1)*t.Y + m.At(3, 2)*t.Z + m.At(3, 3)*t.W,
	}
}

// Transpose returns the matrix with rows and columns swapped.
func (m Matrix) Transpose() Matrix {
	out := NewMatrix(m.size)
	for row := 0; row < m.size; row++ {
		for col := 0; col < m.size; col++ {
			out.els[col*m.size+row] = m.At(row, col)
		}
	}
	return out
}

// Submatrix returns the matrix with the given row and column removed.
func (m Matrix) Submatrix(row, col int) Matrix {
	out := NewMatrix(m.size - 1)
	for r := 0; r < m.size; r++ {
		if r == row {
			continue
		}
		for c := 0; c < m.size; c++ {
			if c == col {
				continue
			}
			dr, dc := r, c
			if dr > row {
				dr--
			}
			if dc > col {
				dc--
			}
			out.els[dr*out.size+dc] = m.At(r, c)
		}
	}
	return out
}

// Minor returns the determinant of the submatrix at (row, col).
func (m Matrix) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the minor at (row, col), negated when row+col is odd.
func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}

// Determinant computes the determinant by cofactor expansion along the
// first row.
func (m Matrix) Determinant() float64 {
	if m.size == 2 {
		return m.At(0, 0)*m.At(1, 1) - m.At(0, 1)*m.At(1, 0)
	}
	var det float64
	for col := 0; col < m.size; col++ {
		det += m.At(0, col) * m.Cofactor(0, col)
	}
	return det
}

// Invertible reports whether the determinant is non-zero within Epsilon.
func (m Matrix) Invertible() bool {
	return !FloatEqual(m.Determinant(), 0)
}

// Inverse returns the inverse matrix, or ErrDegenerateTransform when the
// determinant is zero.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if FloatEqual(det, 0) {
		return Matrix{}, ErrDegenerateTransform
	}
	out := NewMatrix(m.size)
	for row := 0; row < m.size; row++ {
		for col := 0; col < m.size; col++ {
			// Transposed assignment inverts in a single pass.
			out.els[col*m.size+row] = m.Cofactor(row, col) / det
		}
	}
	return out, nil
}

// Equals reports element-wise equality within Epsilon.
func (m Matrix) Equals(other Matrix) bool {
	if m.size != other.size {
		return false
	}
	for i := 0; i < m.size*m.size; i++ {
		if !FloatEqual(m.els[i], other.els[i]) {
			return false
		}
	}
	return true
}
