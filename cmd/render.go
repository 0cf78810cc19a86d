package cmd

import (
	"bytes"
	"fmt"

	"github.com/avh/go-whitted-raytracer/pkg/renderer"
	"github.com/avh/go-whitted-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// RenderFrame renders a still frame of the built-in scene to a PNG file.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	config := renderer.Config{
		Width:    ctx.Int("width"),
		Height:   ctx.Int("height"),
		MaxDepth: ctx.Int("depth"),
		Workers:  ctx.Int("workers"),
		Seed:     ctx.Int64("seed"),
	}

	sc := scene.NewDefaultScene()
	rt := renderer.NewRaytracer(sc, config)

	logger.Infof("rendering %dx%d frame, depth %d", config.Width, config.Height, config.MaxDepth)
	img, stats := rt.RenderPass()

	out := ctx.String("out")
	if err := renderer.SavePNG(out, img); err != nil {
		return err
	}

	displayRenderStats(stats)
	logger.Infof("wrote frame to %s in %s", out, stats.Duration)

	return nil
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Tiles", "% of frame", "Render time"})
	for _, ws := range stats.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", ws.ID),
			fmt.Sprintf("%d", ws.Tiles),
			fmt.Sprintf("%02.1f %%", ws.FramePercent(stats.Tiles)),
			ws.Duration.String(),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", stats.Duration.String()})
	table.Render()

	logger.Infof("frame statistics\n%s", buf.String())
}
