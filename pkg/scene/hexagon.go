package scene

import (
	"math"

	"github.com/rayward/go-raytracer/pkg/core"
	"github.com/rayward/go-raytracer/pkg/geometry"
	"github.com/rayward/go-raytracer/pkg/material"
	"github.com/rayward/go-raytracer/pkg/world"
)

// newHexagonScene exercises nested groups: six corner-and-edge pairs rotated
// into a ring, all transformed as one shape.
func newHexagonScene(width, height int, fov float64) (*Scene, error) {
	w := world.New()
	light := material.NewPointLight(core.NewPoint(-5, 8, -6), core.White)
	w.Light = &light

	floor := geometry.NewPlane()
	fm := material.New()
	fm.Pattern = material.NewChecker(core.NewColor(0.8, 0.8, 0.8), core.NewColor(0.4, 0.4, 0.55))
	fm.Specular = 0.1
	fm.Reflective = 0.05
	floor.SetMaterial(fm)
	w.AddShape(floor)

	hex := hexagon()
	hex.SetTransform(core.Identity().RotateX(-math.Pi/6).Translate(0, 1, 0))
	w.AddShape(hex)

	cam := camera(width, height, fov,
		core.NewPoint(0, 3, -4),
		core.NewPoint(0, 1, 0),
	)
	return &Scene{World: w, Camera: cam}, nil
}

func hexagon() *geometry.Group {
	m := material.New()
	m.Pattern = material.NewSolid(core.NewColor(0.9, 0.55, 0.2))
	m.Diffuse = 0.8
	m.Specular = 0.4

	hex := geometry.NewGroup()
	for n := 0; n < 6; n++ {
		side := hexagonSide(m)
		side.SetTransform(core.Identity().RotateY(float64(n) * math.Pi / 3))
		hex.AddChild(side)
	}
	return hex
}

func hexagonSide(m material.Material) *geometry.Group {
	side := geometry.NewGroup()
	side.AddChild(hexagonCorner(m))
	side.AddChild(hexagonEdge(m))
	return side
}

func hexagonCorner(m material.Material) *geometry.Sphere {
	corner := geometry.NewSphere()
	corner.SetTransform(core.Identity().Scale(0.25, 0.25, 0.25).Translate(0, 0, -1))
	corner.SetMaterial(m)
	return corner
}

func hexagonEdge(m material.Material) *geometry.Cylinder {
	edge := geometry.NewCylinder()
	edge.Minimum = 0
	edge.Maximum = 1
	edge.SetTransform(core.Identity().
		Scale(0.25, 1, 0.25).
		RotateZ(-math.Pi/2).
		RotateY(-math.Pi/6).
		Translate(0, 0, -1))
	edge.SetMaterial(m)
	return edge
}
