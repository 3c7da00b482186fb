// Package renderer turns a world and a camera into pixels: the camera maps
// pixels to rays, the canvas collects the resulting colors, and the render
// loop distributes rows across workers.
package renderer

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/rayward/go-raytracer/pkg/core"
)

// Canvas is a fixed-size grid of colors. Color components are unbounded
// floats until export, when they clamp to the displayable range.
type Canvas struct {
	Width, Height int
	pixels        []core.Color
}

// NewCanvas builds a black canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

// At returns the color at pixel (x, y).
func (c *Canvas) At(x, y int) core.Color {
	return c.pixels[y*c.Width+x]
}

// Set writes the color at pixel (x, y).
func (c *Canvas) Set(x, y int, col core.Color) {
	c.pixels[y*c.Width+x] = col
}

// ToImage converts the canvas to an 8-bit RGBA image. Components clamp to
// [0, 1] before scaling, so out-of-range light neither wraps nor darkens.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.At(x, y)
			img.Set(x, y, color.RGBA{
				R: clampComponent(p.R),
				G: clampComponent(p.G),
				B: clampComponent(p.B),
				A: 255,
			})
		}
	}
	return img
}

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.ToImage())
}

func clampComponent(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
