package main

import (
	"math"
	"os"

	"github.com/urfave/cli"

	"github.com/rayward/go-raytracer/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	renderFlags := []cli.Flag{
		cli.IntFlag{
			Name:  "width",
			Value: 800,
			Usage: "canvas width in pixels",
		},
		cli.IntFlag{
			Name:  "height",
			Value: 600,
			Usage: "canvas height in pixels",
		},
		cli.Float64Flag{
			Name:  "fov",
			Value: math.Pi / 3,
			Usage: "vertical field of view in radians",
		},
		cli.IntFlag{
			Name:  "workers",
			Value: 0,
			Usage: "parallel render workers (0 = CPU count)",
		},
		cli.StringFlag{
			Name:  "out",
			Value: "render.png",
			Usage: "output PNG file",
		},
	}

	app := cli.NewApp()
	app.Name = "go-raytracer"
	app.Usage = "render scenes with recursive ray tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene",
			Description: `
Render one of the built-in scenes to a PNG file. Use the scenes command to
see what is available.`,
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "scene",
					Value: "spheres",
					Usage: "scene to render",
				},
			}, renderFlags...),
			Action: cmd.RenderScene,
		},
		{
			Name:      "mesh",
			Usage:     "render a wavefront OBJ file",
			ArgsUsage: "model.obj",
			Flags:     renderFlags,
			Action:    cmd.RenderMesh,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: cmd.ListScenes,
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
