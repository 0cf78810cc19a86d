package renderer

import "time"

// RenderStats summarizes a completed render pass
type RenderStats struct {
	Width       int
	Height      int
	Tiles       int
	PrimaryRays int
	Workers     []WorkerStats
	Duration    time.Duration
}

// WorkerStats records the share of the frame a single worker rendered
type WorkerStats struct {
	ID       int
	Tiles    int
	Duration time.Duration
}

// FramePercent returns the percentage of the frame's tiles this worker
// rendered out of the given total
func (ws WorkerStats) FramePercent(totalTiles int) float64 {
	if totalTiles == 0 {
		return 0
	}
	return 100 * float64(ws.Tiles) / float64(totalTiles)
}
