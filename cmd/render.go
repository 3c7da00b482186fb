package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli"

	"github.com/rayward/go-raytracer/pkg/core"
	"github.com/rayward/go-raytracer/pkg/geometry"
	"github.com/rayward/go-raytracer/pkg/loaders"
	"github.com/rayward/go-raytracer/pkg/material"
	"github.com/rayward/go-raytracer/pkg/renderer"
	"github.com/rayward/go-raytracer/pkg/scene"
	"github.com/rayward/go-raytracer/pkg/world"
)

// RenderScene renders one of the built-in scenes to a PNG file.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	id := ctx.String("scene")
	width := ctx.Int("width")
	height := ctx.Int("height")
	fov := ctx.Float64("fov")

	s, err := scene.Build(id, width, height, fov)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	logger.Noticef("rendering scene %q at %dx%d", id, width, height)
	return renderToFile(ctx, s)
}

// RenderMesh loads a wavefront OBJ file and renders it in a plain studio
// setup: a checkered floor, a single light and the mesh at the origin.
func RenderMesh(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return cli.NewExitError("expected exactly one OBJ file argument", 1)
	}
	path := ctx.Args().First()

	logger.Noticef("importing %s", path)
	mesh, err := loaders.ParseOBJFile(path)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	if mesh.IgnoredLines > 0 {
		logger.Warningf("ignored %d unrecognized lines in %s", mesh.IgnoredLines, path)
	}

	w := world.New()
	light := material.NewPointLight(core.NewPoint(-8, 12, -10), core.White)
	w.Light = &light

	floor := geometry.NewPlane()
	fm := material.New()
	fm.Pattern = material.NewChecker(core.NewColor(0.85, 0.85, 0.85), core.NewColor(0.5, 0.5, 0.5))
	fm.Specular = 0
	floor.SetMaterial(fm)
	w.AddShape(floor)
	w.AddShape(mesh.AsGroup())

	cam := renderer.NewCamera(ctx.Int("width"), ctx.Int("height"), ctx.Float64("fov"))
	cam.SetTransform(core.ViewTransform(
		core.NewPoint(0, 2.5, -6),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	))

	return renderToFile(ctx, &scene.Scene{World: w, Camera: cam})
}

func renderToFile(ctx *cli.Context, s *scene.Scene) error {
	bar := progressbar.NewOptions(s.Camera.VSize,
		progressbar.OptionSetDescription("rendering"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	canvas, stats, err := s.Camera.Render(s.World, renderer.Options{
		Workers: ctx.Int("workers"),
		Progress: func(done, total int) {
			_ = bar.Set(done)
		},
	})
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	_ = bar.Finish()

	out := ctx.String("out")
	f, err := os.Create(out)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	defer f.Close()
	if err := canvas.WritePNG(f); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	logger.Noticef("wrote %s", out)
	printStats(stats)
	return nil
}

func printStats(stats renderer.RenderStats) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Resolution", "Workers", "Primary Rays", "Duration"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%d", stats.PrimaryRays),
		stats.Duration.Round(stats.Duration / 100).String(),
	})
	table.Render()
}
