package cmd

import (
	"github.com/avh/go-whitted-raytracer/pkg/renderer"
	"github.com/avh/go-whitted-raytracer/pkg/scene"
	"github.com/avh/go-whitted-raytracer/ui"
	"github.com/urfave/cli"
)

// RenderInteractive opens a window rendering the built-in scene with
// keyboard camera control.
func RenderInteractive(ctx *cli.Context) error {
	setupLogging(ctx)

	config := renderer.Config{
		Width:    ctx.Int("width"),
		Height:   ctx.Int("height"),
		MaxDepth: ctx.Int("depth"),
	}

	logger.Infof("starting interactive viewer at %dx%d", config.Width, config.Height)
	return ui.Run(scene.NewDefaultScene(), config)
}
