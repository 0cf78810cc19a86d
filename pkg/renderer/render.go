package renderer

import (
	"image"
	"math/rand"
	"runtime"
	"sync"
	"time"
)

// tileSize is the square tile edge used to split the frame across workers
const tileSize = 32

// tile is a half-open pixel rectangle rendered by a single worker
type tile struct {
	x0, y0, x1, y1 int
}

// RenderPass renders one full frame. Each pixel is a pure function of the
// fixed scene snapshot and its primary ray, so the frame is split into tiles
// and rendered by parallel workers with no synchronization beyond the final
// disjoint framebuffer writes. Every worker owns its own seeded random
// source for the diffuse scatter sampling.
func (rt *Raytracer) RenderPass() (*image.RGBA, RenderStats) {
	start := time.Now()

	width, height := rt.config.Width, rt.config.Height
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	numWorkers := rt.config.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	seed := rt.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	numTilesX := (width + tileSize - 1) / tileSize
	numTilesY := (height + tileSize - 1) / tileSize

	tiles := make(chan tile, numTilesX*numTilesY)
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			tiles <- tile{
				x0: x,
				y0: y,
				x1: minInt(x+tileSize, width),
				y1: minInt(y+tileSize, height),
			}
		}
	}
	close(tiles)

	workerStats := make([]WorkerStats, numWorkers)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			workerStart := time.Now()
			random := rand.New(rand.NewSource(seed + int64(workerID)))

			rendered := 0
			for t := range tiles {
				rt.renderTile(img, t, random)
				rendered++
			}

			workerStats[workerID] = WorkerStats{
				ID:       workerID,
				Tiles:    rendered,
				Duration: time.Since(workerStart),
			}
		}(i)
	}
	wg.Wait()

	stats := RenderStats{
		Width:       width,
		Height:      height,
		Tiles:       numTilesX * numTilesY,
		PrimaryRays: width * height,
		Workers:     workerStats,
		Duration:    time.Since(start),
	}

	return img, stats
}

// renderTile renders one tile into the shared image. Tiles never overlap,
// so each pixel is written by exactly one worker.
func (rt *Raytracer) renderTile(img *image.RGBA, t tile, random *rand.Rand) {
	for y := t.y0; y < t.y1; y++ {
		for x := t.x0; x < t.x1; x++ {
			img.SetRGBA(x, y, rt.PixelColor(x, y, random).ToRGBA())
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
