package main

import (
	"os"

	"github.com/urfave/cli"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "raytracer"
	app.Usage = "render scenes of spheres and planes using Monte Carlo ray tracing"
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
			Usage: "render a scene to an image file",
			Description: `
Render a built-in scene, a scene from the scenes directory ("file:<name>") or a
JSON scene file. Camera flags left at zero keep the scene's own settings.

Unless --out is given the image is written to output/<scene>/render_<timestamp>.<format>.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "scene id, file:<name> or path to a .json scene",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "image filename for the rendered frame",
				},
				cli.StringFlag{
					Name:  "format, f",
					Value: "png",
					Usage: "output format: ppm or png",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "image width (overrides the scene)",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel (overrides the scene)",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum ray bounce depth (overrides the scene)",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of render workers (0 = one per CPU)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "base random seed; equal seeds give identical images",
				},
				cli.BoolFlag{
					Name:  "no-progress",
					Usage: "disable the progress bar",
				},
			},
			Action: RenderScene,
		},
		{
			Name:  "scenes",
			Usage: "list built-in and file scenes",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "dir",
					Usage: "scenes directory (default: ./scenes or ../scenes)",
				},
			},
			Action: ListScenes,
		},
	}

	return app
}
