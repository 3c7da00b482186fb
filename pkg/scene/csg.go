package scene

import (
	"math"

	"github.com/rayward/go-raytracer/pkg/core"
	"github.com/rayward/go-raytracer/pkg/geometry"
	"github.com/rayward/go-raytracer/pkg/material"
	"github.com/rayward/go-raytracer/pkg/world"
)

// newCSGScene carves a die-like solid: the intersection of a cube and a
// sphere, with a cylinder subtracted straight through.
func newCSGScene(width, height int, fov float64) (*Scene, error) {
	w := world.New()
	light := material.NewPointLight(core.NewPoint(-6, 10, -10), core.White)
	w.Light = &light

	floor := geometry.NewPlane()
	fm := material.New()
	fm.Pattern = material.NewChecker(core.NewColor(0.9, 0.9, 0.9), core.NewColor(0.55, 0.55, 0.55))
	fm.Specular = 0
	fm.Reflective = 0.08
	floor.SetMaterial(fm)
	w.AddShape(floor)

	cube := geometry.NewCube()
	cm := material.New()
	cm.Pattern = material.NewSolid(core.NewColor(0.8, 0.15, 0.15))
	cm.Diffuse = 0.8
	cm.Specular = 0.4
	cm.Reflective = 0.05
	cube.SetMaterial(cm)

	sphere := geometry.NewSphere()
	sphere.SetTransform(core.Identity().Scale(1.35, 1.35, 1.35))
	sm := material.New()
	sm.Pattern = material.NewSolid(core.NewColor(0.15, 0.3, 0.8))
	sm.Diffuse = 0.8
	sm.Specular = 0.4
	sphere.SetMaterial(sm)

	rounded := geometry.NewCSG(geometry.IntersectionOp, cube, sphere)

	bore := geometry.NewCylinder()
	bore.Minimum = -2
	bore.Maximum = 2
	bore.Closed = true
	bore.SetTransform(core.Identity().Scale(0.55, 1, 0.55))
	bm := material.New()
	bm.Pattern = material.NewSolid(core.NewColor(0.15, 0.7, 0.3))
	bm.Diffuse = 0.8
	bm.Specular = 0.4
	bore.SetMaterial(bm)

	die := geometry.NewCSG(geometry.DifferenceOp, rounded, bore)
	die.SetTransform(core.Identity().RotateY(math.Pi/5).Translate(0, 1, 0))
	w.AddShape(die)

	cam := camera(width, height, fov,
		core.NewPoint(0, 3.5, -5),
		core.NewPoint(0, 0.8, 0),
	)
	return &Scene{World: w, Camera: cam}, nil
}
