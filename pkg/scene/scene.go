// Package scene bundles the built-in demonstration scenes. Each scene pairs
// a populated world with a camera framed for it, keyed by a stable id so the
// CLI can render them by name.
package scene

import (
	"fmt"
	"math"
	"sort"

	"github.com/rayward/go-raytracer/pkg/core"
	"github.com/rayward/go-raytracer/pkg/renderer"
	"github.com/rayward/go-raytracer/pkg/world"
)

// Scene is a renderable world with a matching camera.
type Scene struct {
	World  *world.World
	Camera *renderer.Camera
}

// Info describes a registered scene.
type Info struct {
	ID          string
	Description string
}

type builder func(width, height int, fov float64) (*Scene, error)

var registry = map[string]struct {
	description string
	build       builder
}{
	"spheres": {
		description: "three patterned spheres on a striped floor",
		build:       newSphereScene,
	},
	"glass": {
		description: "a glass sphere with an air bubble over a checkered floor",
		build:       newGlassScene,
	},
	"hexagon": {
		description: "a hexagonal ring assembled from grouped spheres and cylinders",
		build:       newHexagonScene,
	},
	"csg": {
		description: "a cube with sphere-carved faces and a cylinder bored through",
		build:       newCSGScene,
	},
}

// List returns the registered scenes sorted by id.
func List() []Info {
	infos := make([]Info, 0, len(registry))
	for id, entry := range registry {
		infos = append(infos, Info{ID: id, Description: entry.description})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// Build constructs the named scene for the given canvas size and vertical
// field of view.
func Build(id string, width, height int, fov float64) (*Scene, error) {
	entry, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", id)
	}
	return entry.build(width, height, fov)
}

// camera builds a camera at from looking at to with +y up.
func camera(width, height int, fov float64, from, to core.Tuple) *renderer.Camera {
	c := renderer.NewCamera(width, height, fov)
	c.SetTransform(core.ViewTransform(from, to, core.NewVector(0, 1, 0)))
	return c
}

// DefaultFOV is the field of view scenes use unless overridden.
const DefaultFOV = math.Pi / 3
