package core

// Color is an RGB triple. Components are unbounded floats; clamping to the
// displayable [0,1] range happens only at the image encoding boundary.
type Color struct {
	R, G, B float64
}

// Common colors.
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
	Red   = Color{1, 0, 0}
	Green = Color{0, 1, 0}
	Blue  = Color{0, 0, 1}
)

// NewColor creates a color from red, green and blue components.
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the component-wise sum of two colors.
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the component-wise difference of two colors.
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Scale returns the color multiplied by a scalar.
func (c Color) Scale(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Multiply returns the Hadamard product of two colors.
func (c Color) Multiply(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Equals reports component-wise equality within Epsilon.
func (c Color) Equals(other Color) bool {
	return FloatEqual(c.R, other.R) && FloatEqual(c.G, other.G) && FloatEqual(c.B, other.B)
}
