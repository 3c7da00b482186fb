package material

import (
	"testing"

	"github.com/rayward/go-raytracer/pkg/core"
)

// pointPattern echoes the pattern-space point back as a color, exposing the
// coordinate mapping performed by ColorAtObject.
type pointPattern struct {
	transform core.Transform
}

func newPointPattern() *pointPattern {
	return &pointPattern{transform: core.Identity()}
}

func (p *pointPattern) ColorAt(pt core.Tuple) core.Color {
	return core.NewColor(pt.X, pt.Y, pt.Z)
}

func (p *pointPattern) Transform() core.Transform     { return p.transform }
func (p *pointPattern) SetTransform(t core.Transform) { p.transform = t }

func TestColorAtObjectTransforms(t *testing.T) {
	tests := []struct {
		name             string
		objectTransform  core.Transform
		patternTransform core.Transform
		point            core.Tuple
		expected         core.Color
	}{
		{
			name:             "object transformation",
			objectTransform:  core.Identity().Scale(2, 2, 2),
			patternTransform: core.Identity(),
			point:            core.NewPoint(2, 3, 4),
			expected:         core.NewColor(1, 1.5, 2),
		},
		{
			name:             "pattern transformation",
			objectTransform:  core.Identity(),
			patternTransform: core.Identity().Scale(2, 2, 2),
			point:            core.NewPoint(2, 3, 4),
			expected:         core.NewColor(1, 1.5, 2),
		},
		{
			name:             "object and pattern transformation",
			objectTransform:  core.Identity().Scale(2, 2, 2),
			patternTransform: core.Identity().Translate(0.5, 1, 1.5),
			point:            core.NewPoint(2.5, 3, 3.5),
			expected:         core.NewColor(0.75, 0.5, 0.25),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pattern := newPointPattern()
			pattern.SetTransform(tt.patternTransform)
			obj := staticObject{transform: tt.objectTransform}

			got, err := ColorAtObject(pattern, obj, tt.point)
			if err != nil {
				t.Fatalf("ColorAtObject failed: %v", err)
			}
			if !got.Equals(tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestStripePattern(t *testing.T) {
	p := NewStripe(core.White, core.Black)

	// Constant in y and z.
	for _, pt := range []core.Tuple{
		core.NewPoint(0, 0, 0), core.NewPoint(0, 1, 0), core.NewPoint(0, 2, 0),
		core.NewPoint(0, 0, 1), core.NewPoint(0, 0, 2),
	} {
		if got := p.ColorAt(pt); !got.Equals(core.White) {
			t.Errorf("stripe at %v should be white, got %v", pt, got)
		}
	}

	// Alternates in x.
	cases := []struct {
		x        float64
		expected core.Color
	}{
		{0, core.White}, {0.9, core.White}, {1, core.Black},
		{-0.1, core.Black}, {-1, core.Black}, {-1.1, core.White},
	}
	for _, c := range cases {
		if got := p.ColorAt(core.NewPoint(c.x, 0, 0)); !got.Equals(c.expected) {
			t.Errorf("stripe at x=%v: expected %v, got %v", c.x, c.expected, got)
		}
	}
}

func TestGradientPattern(t *testing.T) {
	p := NewGradient(core.White, core.Black)
	cases := []struct {
		x        float64
		expected core.Color
	}{
		{0, core.White},
		{0.25, core.NewColor(0.75, 0.75, 0.75)},
		{0.5, core.NewColor(0.5, 0.5, 0.5)},
		{0.75, core.NewColor(0.25, 0.25, 0.25)},
	}
	for _, c := range cases {
		if got := p.ColorAt(core.NewPoint(c.x, 0, 0)); !got.Equals(c.expected) {
			t.Errorf("gradient at x=%v: expected %v, got %v", c.x, c.expected, got)
		}
	}
}

func TestRingPattern(t *testing.T) {
	p := NewRing(core.White, core.Black)
	cases := []struct {
		point    core.Tuple
		expected core.Color
	}{
		{core.NewPoint(0, 0, 0), core.White},
		{core.NewPoint(1, 0, 0), core.Black},
		{core.NewPoint(0, 0, 1), core.Black},
		// Just over sqrt(2)/2 from the origin.
		{core.NewPoint(0.708, 0, 0.708), core.Black},
	}
	for _, c := range cases {
		if got := p.ColorAt(c.point); !got.Equals(c.expected) {
			t.Errorf("ring at %v: expected %v, got %v", c.point, c.expected, got)
		}
	}
}

func TestCheckerPattern(t *testing.T) {
	p := NewChecker(core.White, core.Black)
	cases := []struct {
		point    core.Tuple
		expected core.Color
	}{
		{core.NewPoint(0, 0, 0), core.White},
		{core.NewPoint(0.99, 0, 0), core.White},
		{core.NewPoint(1.01, 0, 0), core.Black},
		{core.NewPoint(0, 0.99, 0), core.White},
		{core.NewPoint(0, 1.01, 0), core.Black},
		{core.NewPoint(0, 0, 0.99), core.White},
		{core.NewPoint(0, 0, 1.01), core.Black},
	}
	for _, c := range cases {
		if got := p.ColorAt(c.point); !got.Equals(c.expected) {
			t.Errorf("checker at %v: expected %v, got %v", c.point, c.expected, got)
		}
	}
}

func TestPatternDefaultTransform(t *testing.T) {
	p := NewStripe(core.White, core.Black)
	if !p.Transform().Equals(core.Identity()) {
		t.Error("patterns should default to the identity transform")
	}
	p.SetTransform(core.Identity().Translate(1, 2, 3))
	if !p.Transform().Equals(core.Identity().Translate(1, 2, 3)) {
		t.Error("pattern transform should be assignable")
	}
}
