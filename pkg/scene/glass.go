package scene

import (
	"github.com/rayward/go-raytracer/pkg/core"
	"github.com/rayward/go-raytracer/pkg/geometry"
	"github.com/rayward/go-raytracer/pkg/material"
	"github.com/rayward/go-raytracer/pkg/renderer"
	"github.com/rayward/go-raytracer/pkg/world"
)

// newGlassScene shows off refraction and the Fresnel effect: a hollow glass
// sphere floating above a checkered floor, seen from almost straight above.
func newGlassScene(width, height int, fov float64) (*Scene, error) {
	w := world.New()
	light := material.NewPointLight(core.NewPoint(2, 10, -5), core.NewColor(0.9, 0.9, 0.9))
	w.Light = &light

	floor := geometry.NewPlane()
	floor.SetTransform(core.Identity().Translate(0, -10, 0))
	fm := material.New()
	fm.Pattern = material.NewChecker(core.NewColor(0.15, 0.15, 0.15), core.NewColor(0.85, 0.85, 0.85))
	fm.Ambient = 0.8
	fm.Diffuse = 0.2
	fm.Specular = 0
	floor.SetMaterial(fm)
	w.AddShape(floor)

	outer := geometry.NewGlassSphere()
	om := outer.Material()
	om.Pattern = material.NewSolid(core.NewColor(1, 1, 1))
	om.Ambient = 0
	om.Diffuse = 0
	om.Specular = 0.9
	om.Shininess = 300
	om.Reflective = 0.9
	outer.SetMaterial(om)
	w.AddShape(outer)

	// The inner sphere has the refractive index of air, turning the pair
	// into a thick glass shell.
	bubble := geometry.NewSphere()
	bubble.SetTransform(core.Identity().Scale(0.5, 0.5, 0.5))
	bm := outer.Material()
	bm.RefractiveIndex = 1.0000034
	bubble.SetMaterial(bm)
	w.AddShape(bubble)

	// Looking straight down, so up cannot be +y.
	cam := renderer.NewCamera(width, height, fov)
	cam.SetTransform(core.ViewTransform(
		core.NewPoint(0, 2.5, 0),
		core.Origin(),
		core.NewVector(1, 0, 0),
	))
	return &Scene{World: w, Camera: cam}, nil
}
