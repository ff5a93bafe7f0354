package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-phong-raytracer/cmd"
	"github.com/df07/go-phong-raytracer/log"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
)

var logger = log.New("raytracer")

func sceneFlag() cli.StringFlag {
	return cli.StringFlag{
		Name:  "scene, s",
		Value: "default",
		Usage: "built-in scene name (see the scenes command)",
	}
}

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "phong-raytracer"
	app.Usage = "render scenes of planes, spheres and point lights with Phong shading"
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
			Usage: "render a single frame",
			Description: `
Render a built-in scene or a JSON scene file. Rows are split into one band
per worker and rendered in parallel.

The output format follows the file extension of --out: .ppm, .png, .bmp,
.tif or .tiff. Without --out the frame goes to
output/<scene>/render_<timestamp>.ppm.`,
			Flags: []cli.Flag{
				sceneFlag(),
				cli.StringFlag{
					Name:  "scene-file, f",
					Usage: "JSON scene file; overrides --scene",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 640,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 480,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "workers, w",
					Value: 0,
					Usage: "number of row bands rendered in parallel (0 uses every CPU)",
				},
				cli.IntFlag{
					Name:  "depth",
					Value: integrator.DefaultMaxDepth,
					Usage: "maximum reflection depth",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "image filename for the rendered frame",
				},
				cli.Float64Flag{
					Name:  "yaw",
					Usage: "orbit the camera around --target by this many degrees",
				},
				cli.Float64Flag{
					Name:  "pitch",
					Usage: "raise the camera around --target by this many degrees",
				},
				cli.StringFlag{
					Name:  "target",
					Value: "0,0,0",
					Usage: "orbit target as x,y,z",
				},
				cli.BoolFlag{
					Name:  "stats",
					Usage: "display per-band render statistics",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:  "serve",
			Usage: "serve renders over HTTP",
			Description: `
Start an HTTP server exposing the built-in scenes. /api/render streams a
render as server-sent events, one per finished band; /api/frame returns a
finished image and /api/inspect describes what a pixel sees.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "port, p",
					Value: 8080,
					Usage: "port to serve on",
				},
			},
			Action: cmd.Serve,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:  "scene",
			Usage: "scene file utilities",
			Subcommands: []cli.Command{
				{
					Name:      "export",
					Usage:     "write a built-in scene to a JSON scene file",
					ArgsUsage: "scene_file.json",
					Flags:     []cli.Flag{sceneFlag()},
					Action:    cmd.ExportScene,
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
