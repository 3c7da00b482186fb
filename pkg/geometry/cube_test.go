package geometry

import (
	"testing"

	"github.com/rayward/go-raytracer/pkg/core"
)

func TestCubeLocalIntersect(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		wantTs    []float64
	}{
		{"+x face", core.NewPoint(5, 0.5, 0), core.NewVector(-1, 0, 0), []float64{4, 6}},
		{"-x face", core.NewPoint(-5, 0.5, 0), core.NewVector(1, 0, 0), []float64{4, 6}},
		{"+y face", core.NewPoint(0.5, 5, 0), core.NewVector(0, -1, 0), []float64{4, 6}},
		{"-y face", core.NewPoint(0.5, -5, 0), core.NewVector(0, 1, 0), []float64{4, 6}},
		{"+z face", core.NewPoint(0.5, 0, 5), core.NewVector(0, 0, -1), []float64{4, 6}},
		{"-z face", core.NewPoint(0.5, 0, -5), core.NewVector(0, 0, 1), []float64{4, 6}},
		{"from inside", core.NewPoint(0, 0.5, 0), core.NewVector(0, 0, 1), []float64{-1, 1}},
		{"miss diagonal 1", core.NewPoint(-2, 0, 0), core.NewVector(0.2673, 0.5345, 0.8018), nil},
		{"miss diagonal 2", core.NewPoint(0, -2, 0), core.NewVector(0.8018, 0.2673, 0.5345), nil},
		{"miss diagonal 3", core.NewPoint(2, 0, 2), core.NewVector(0, 0, -1), nil},
		{"miss parallel", core.NewPoint(2, 2, 0), core.NewVector(-1, 0, 0), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCube()
			r := mustRay(t, tt.origin, tt.direction)
			xs, err := c.LocalIntersect(r)
			if err != nil {
				t.Fatalf("LocalIntersect() error = %v", err)
			}
			assertTs(t, xs, tt.wantTs)
		})
	}
}

func TestCubeLocalNormalAt(t *testing.T) {
	tests := []struct {
		name  string
		point core.Tuple
		want  core.Tuple
	}{
		{"+x face", core.NewPoint(1, 0.5, -0.8), core.NewVector(1, 0, 0)},
		{"-x face", core.NewPoint(-1, -0.2, 0.9), core.NewVector(-1, 0, 0)},
		{"+y face", core.NewPoint(-0.4, 1, -0.1), core.NewVector(0, 1, 0)},
		{"-y face", core.NewPoint(0.3, -1, -0.7), core.NewVector(0, -1, 0)},
		{"+z face", core.NewPoint(-0.6, 0.3, 1), core.NewVector(0, 0, 1)},
		{"-z face", core.NewPoint(0.4, 0.4, -1), core.NewVector(0, 0, -1)},
		{"corner", core.NewPoint(1, 1, 1), core.NewVector(1, 0, 0)},
		{"opposite corner", core.NewPoint(-1, -1, -1), core.NewVector(-1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCube()
			if n := c.LocalNormalAt(tt.point, Intersection{}); !n.Equals(tt.want) {
				t.Errorf("LocalNormalAt(%v) = %v, want %v", tt.point, n, tt.want)
			}
		})
	}
}
