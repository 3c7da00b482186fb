package material

import (
	"math"

	"github.com/rayward/go-raytracer/pkg/core"
)

// Pattern produces a color for a point in pattern space. Every pattern
// carries its own transform, independent of the shape it is applied to.
type Pattern interface {
	ColorAt(point core.Tuple) core.Color
	Transform() core.Transform
	SetTransform(t core.Transform)
}

// ColorAtObject evaluates a pattern at a world-space point on a shape: the
// point is mapped into object space through the shape's inverse transform,
// then into pattern space through the pattern's own inverse transform.
func ColorAtObject(p Pattern, obj Transformable, worldPoint core.Tuple) (core.Color, error) {
	objInv, err := obj.Transform().Inverse()
	if err != nil {
		return core.Black, err
	}
	patInv, err := p.Transform().Inverse()
	if err != nil {
		return core.Black, err
	}
	objectPoint := objInv.ApplyTo(worldPoint)
	patternPoint := patInv.ApplyTo(objectPoint)
	return p.ColorAt(patternPoint), nil
}

func patternsEqual(a, b Pattern) bool {
	if a == nil || b == nil {
		return a == b
	}
	sa, okA := a.(*Solid)
	sb, okB := b.(*Solid)
	if okA && okB {
		return sa.Color.Equals(sb.Color)
	}
	return a == b
}

// Solid paints everything one color.
type Solid struct {
	Color     core.Color
	transform core.Transform
}

// NewSolid creates a solid pattern.
func NewSolid(c core.Color) *Solid {
	return &Solid{Color: c, transform: core.Identity()}
}

func (s *Solid) ColorAt(core.Tuple) core.Color { return s.Color }
func (s *Solid) Transform() core.Transform     { return s.transform }
func (s *Solid) SetTransform(t core.Transform) { s.transform = t }

// Stripe alternates two colors with the parity of floor(x).
type Stripe struct {
	A, B      core.Color
	transform core.Transform
}

// NewStripe creates a stripe pattern.
func NewStripe(a, b core.Color) *Stripe {
	return &Stripe{A: a, B: b, transform: core.Identity()}
}

func (s *Stripe) ColorAt(p core.Tuple) core.Color {
	if math.Mod(math.Floor(p.X), 2) == 0 {
		return s.A
	}
	return s.B
}

func (s *Stripe) Transform() core.Transform     { return s.transform }
func (s *Stripe) SetTransform(t core.Transform) { s.transform = t }

// Gradient blends linearly from A to B over the fractional part of x.
type Gradient struct {
	A, B      core.Color
	transform core.Transform
}

// NewGradient creates a gradient pattern.
func NewGradient(a, b core.Color) *Gradient {
	return &Gradient{A: a, B: b, transform: core.Identity()}
}

func (g *Gradient) ColorAt(p core.Tuple) core.Color {
	distance := g.B.Subtract(g.A)
	fraction := p.X - math.Floor(p.X)
	return g.A.Add(distance.Scale(fraction))
}

func (g *Gradient) Transform() core.Transform     { return g.transform }
func (g *Gradient) SetTransform(t core.Transform) { g.transform = t }

// Ring alternates two colors in concentric rings around the y axis.
type Ring struct {
	A, B      core.Color
	transform core.Transform
}

// NewRing creates a ring pattern.
func NewRing(a, b core.Color) *Ring {
	return &Ring{A: a, B: b, transform: core.Identity()}
}

func (r *Ring) ColorAt(p core.Tuple) core.Color {
	if math.Mod(math.Floor(math.Sqrt(p.X*p.X+p.Z*p.Z)), 2) == 0 {
		return r.A
	}
	return r.B
}

func (r *Ring) Transform() core.Transform     { return r.transform }
func (r *Ring) SetTransform(t core.Transform) { r.transform = t }

// Checker alternates two colors in a 3-D checkerboard by the parity of
// floor(x)+floor(y)+floor(z).
type Checker struct {
	A, B      core.Color
	transform core.Transform
}

// NewChecker creates a checker pattern.
func NewChecker(a, b core.Color) *Checker {
	return &Checker{A: a, B: b, transform: core.Identity()}
}

func (c *Checker) ColorAt(p core.Tuple) core.Color {
	if math.Mod(math.Floor(p.X)+math.Floor(p.Y)+math.Floor(p.Z), 2) == 0 {
		return c.A
	}
	return c.B
}

func (c *Checker) Transform() core.Transform     { return c.transform }
func (c *Checker) SetTransform(t core.Transform) { c.transform = t }
