package core

import (
	"math"
	"testing"
)

func TestPointAndVectorConstructors(t *testing.T) {
	p := NewPoint(4.3, -4.2, 3.1)
	if !p.IsPoint() || p.IsVector() {
		t.Errorf("NewPoint should produce w=1, got %v", p)
	}
	v := NewVector(4.3, -4.2, 3.1)
	if !v.IsVector() || v.IsPoint() {
		t.Errorf("NewVector should produce w=0, got %v", v)
	}
}

func TestTupleArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		got      Tuple
		expected Tuple
	}{
		{
			name:     "adding point and vector yields a point",
			got:      NewTuple(3, -2, 5, 1).Add(NewTuple(-2, 3, 1, 0)),
			expected: NewTuple(1, 1, 6, 1),
		},
		{
			name:     "subtracting two points yields a vector",
			got:      NewPoint(3, 2, 1).Subtract(NewPoint(5, 6, 7)),
			expected: NewVector(-2, -4, -6),
		},
		{
			name:     "subtracting a vector from a point yields a point",
			got:      NewPoint(3, 2, 1).Subtract(NewVector(5, 6, 7)),
			expected: NewPoint(-2, -4, -6),
		},
		{
			name:     "subtracting two vectors yields a vector",
			got:      NewVector(3, 2, 1).Subtract(NewVector(5, 6, 7)),
			expected: NewVector(-2, -4, -6),
		},
		{
			name:     "negating a tuple",
			got:      NewTuple(1, -2, 3, -4).Negate(),
			expected: NewTuple(-1, 2, -3, 4),
		},
		{
			name:     "multiplying by a scalar",
			got:      NewTuple(1, -2, 3, -4).Multiply(3.5),
			expected: NewTuple(3.5, -7, 10.5, -14),
		},
		{
			name:     "dividing by a scalar",
			got:      NewTuple(1, -2, 3, -4).Divide(2),
			expected: NewTuple(0.5, -1, 1.5, -2),
		},
		{
			name:     "cross product yields a vector",
			got:      NewVector(1, 2, 3).Cross(NewVector(2, 3, 4)),
			expected: NewVector(-1, 2, -1),
		},
		{
			name:     "cross product is anticommutative",
			got:      NewVector(2, 3, 4).Cross(NewVector(1, 2, 3)),
			expected: NewVector(1, -2, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equals(tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestMagnitudeAndNormalize(t *testing.T) {
	for _, v := range []Tuple{NewVector(1, 0, 0), NewVector(0, 1, 0), NewVector(0, 0, 1)} {
		if !FloatEqual(v.Magnitude(), 1) {
			t.Errorf("unit vector %v should have magnitude 1", v)
		}
	}
	if !FloatEqual(NewVector(1, 2, 3).Magnitude(), math.Sqrt(14)) {
		t.Errorf("magnitude of (1,2,3) should be sqrt(14)")
	}

	n := NewVector(1, 2, 3).Normalize()
	s := math.Sqrt(14)
	if !n.Equals(NewVector(1/s, 2/s, 3/s)) {
		t.Errorf("normalize of (1,2,3) wrong: %v", n)
	}
	if !FloatEqual(n.Magnitude(), 1) {
		t.Errorf("normalized vector should have magnitude 1, got %v", n.Magnitude())
	}
}

func TestDotProduct(t *testing.T) {
	if d := NewVector(1, 2, 3).Dot(NewVector(2, 3, 4)); !FloatEqual(d, 20) {
		t.Errorf("expected dot product 20, got %v", d)
	}
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name     string
		v        Tuple
		n        Tuple
		expected Tuple
	}{
		{
			name:     "reflecting a vector approaching at 45 degrees",
			v:        NewVector(1, -1, 0),
			n:        NewVector(0, 1, 0),
			expected: NewVector(1, 1, 0),
		},
		{
			name:     "reflecting off a slanted surface",
			v:        NewVector(0, -1, 0),
			n:        NewVector(math.Sqrt2/2, math.Sqrt2/2, 0),
			expected: NewVector(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if r := tt.v.Reflect(tt.n); !r.Equals(tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, r)
			}
		})
	}
}

func TestFloatEqualInfinities(t *testing.T) {
	inf := math.Inf(1)
	if !FloatEqual(inf, inf) {
		t.Error("+inf should equal +inf")
	}
	if !FloatEqual(-inf, -inf) {
		t.Error("-inf should equal -inf")
	}
	if FloatEqual(inf, -inf) {
		t.Error("+inf should not equal -inf")
	}
	if FloatEqual(inf, 1e10) {
		t.Error("+inf should not equal a finite value")
	}
}
