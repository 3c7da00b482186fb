package renderer

import (
	"bytes"
	"image/png"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/rayward/go-raytracer/pkg/core"
)

func TestCanvas(t *testing.T) {
	Convey("Given a new canvas", t, func() {
		c := NewCanvas(10, 20)

		Convey("every pixel starts black", func() {
			So(c.Width, ShouldEqual, 10)
			So(c.Height, ShouldEqual, 20)
			So(c.At(0, 0), ShouldResemble, core.Black)
			So(c.At(9, 19), ShouldResemble, core.Black)
		})

		Convey("writing a pixel stores the color", func() {
			red := core.NewColor(1, 0, 0)
			c.Set(2, 3, red)
			So(c.At(2, 3), ShouldResemble, red)
		})
	})

	Convey("Given a canvas with out-of-range colors", t, func() {
		c := NewCanvas(2, 1)
		c.Set(0, 0, core.NewColor(1.5, 0.5, -0.5))

		Convey("ToImage clamps components to the displayable range", func() {
			img := c.ToImage()
			r, g, b, a := img.At(0, 0).RGBA()
			So(r>>8, ShouldEqual, 255)
			So(g>>8, ShouldEqual, 128)
			So(b>>8, ShouldEqual, 0)
			So(a>>8, ShouldEqual, 255)
		})

		Convey("WritePNG produces a decodable image", func() {
			var buf bytes.Buffer
			So(c.WritePNG(&buf), ShouldBeNil)

			img, err := png.Decode(&buf)
			So(err, ShouldBeNil)
			So(img.Bounds().Dx(), ShouldEqual, 2)
			So(img.Bounds().Dy(), ShouldEqual, 1)
		})
	})
}
