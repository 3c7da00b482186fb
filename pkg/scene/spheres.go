package scene

import (
	"math"

	"github.com/rayward/go-raytracer/pkg/core"
	"github.com/rayward/go-raytracer/pkg/geometry"
	"github.com/rayward/go-raytracer/pkg/material"
	"github.com/rayward/go-raytracer/pkg/world"
)

// newSphereScene is the classic first render: a large patterned sphere
// flanked by two smaller ones, resting on a striped floor with a slightly
// reflective backdrop.
func newSphereScene(width, height int, fov float64) (*Scene, error) {
	w := world.New()
	light := material.NewPointLight(core.NewPoint(-10, 10, -10), core.White)
	w.Light = &light

	floor := geometry.NewPlane()
	fm := material.New()
	stripes := material.NewStripe(core.NewColor(0.9, 0.9, 0.9), core.NewColor(0.6, 0.6, 0.6))
	stripes.SetTransform(core.Identity().RotateY(math.Pi / 4))
	fm.Pattern = stripes
	fm.Specular = 0
	fm.Reflective = 0.1
	floor.SetMaterial(fm)
	w.AddShape(floor)

	middle := geometry.NewSphere()
	middle.SetTransform(core.Identity().Translate(-0.5, 1, 0.5))
	mm := material.New()
	ring := material.NewRing(core.NewColor(0.1, 1, 0.5), core.NewColor(0.2, 0.4, 0.3))
	ring.SetTransform(core.Identity().Scale(0.25, 0.25, 0.25).RotateX(math.Pi / 3))
	mm.Pattern = ring
	mm.Diffuse = 0.7
	mm.Specular = 0.3
	middle.SetMaterial(mm)
	w.AddShape(middle)

	right := geometry.NewSphere()
	right.SetTransform(core.Identity().Scale(0.5, 0.5, 0.5).Translate(1.5, 0.5, -0.5))
	rm := material.New()
	grad := material.NewGradient(core.NewColor(0.5, 1, 0.1), core.NewColor(1, 0.2, 0.1))
	grad.SetTransform(core.Identity().Scale(2, 2, 2).Translate(-1, 0, 0))
	rm.Pattern = grad
	rm.Diffuse = 0.7
	rm.Specular = 0.3
	right.SetMaterial(rm)
	w.AddShape(right)

	left := geometry.NewSphere()
	left.SetTransform(core.Identity().Scale(0.33, 0.33, 0.33).Translate(-1.5, 0.33, -0.75))
	lm := material.New()
	lm.Pattern = material.NewChecker(core.NewColor(1, 0.8, 0.1), core.NewColor(0.8, 0.5, 0.1))
	lm.Diffuse = 0.7
	lm.Specular = 0.3
	left.SetMaterial(lm)
	w.AddShape(left)

	cam := camera(width, height, fov,
		core.NewPoint(0, 1.5, -5),
		core.NewPoint(0, 1, 0),
	)
	return &Scene{World: w, Camera: cam}, nil
}
