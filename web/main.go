package main

import (
	"os"

	"github.com/df07/go-monte-carlo-raytracer/pkg/log"
	"github.com/df07/go-monte-carlo-raytracer/web/server"
	"github.com/urfave/cli"
)

var logger = log.New("web")

func main() {
	app := cli.NewApp()
	app.Name = "raytracer-web"
	app.Usage = "serve rendered scenes over HTTP"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "port, p",
			Value: 8080,
			Usage: "port to serve on",
		},
		cli.StringFlag{
			Name:  "scenes-dir",
			Usage: "directory of JSON scene files (default: ./scenes or ../scenes)",
		},
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
	}
	app.Action = func(ctx *cli.Context) error {
		if ctx.Bool("v") {
			log.SetLevel(log.Info)
		}

		webServer := server.NewServer(ctx.Int("port"), ctx.String("scenes-dir"))
		logger.Noticef("visit http://localhost:%d/api/scenes to list scenes", ctx.Int("port"))
		return webServer.Start()
	}

	if err := app.Run(os.Args); err != nil {
		logger.Errorf("error starting server: %v", err)
		os.Exit(1)
	}
}
