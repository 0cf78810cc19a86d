package main

import (
	"os"

	"github.com/avh/go-whitted-raytracer/cmd"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "go-whitted-raytracer"
	app.Usage = "render small scenes with recursive ray tracing"
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
			Usage: "render a still frame of the built-in scene to a PNG file",
			Flags: []cli.Flag{
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
					Name:  "depth",
					Value: 5,
					Usage: "maximum reflection bounces per ray",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "render workers; 0 uses one per CPU",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 0,
					Usage: "base seed for the scatter sampler; 0 picks a time-based seed",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:  "view",
			Usage: "open an interactive view of the built-in scene",
			Description: `
Open a window showing the rendered scene. Arrow keys nudge the camera
left/right and up/down, W and S move it forward and backward; every move
triggers a full re-render.`,
			Flags: []cli.Flag{
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
					Name:  "depth",
					Value: 5,
					Usage: "maximum reflection bounces per ray",
				},
			},
			Action: cmd.RenderInteractive,
		},
	}

	app.Run(os.Args)
}
