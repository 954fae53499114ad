package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int           // Image width in pixels
	Height          int           // Image height in pixels
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of camera samples taken
	SamplesPerPixel int           // Samples taken for every pixel
	MaxDepth        int           // Maximum ray bounce depth
	NumWorkers      int           // Number of parallel workers used
	Seed            int64         // Base seed of the per-row samplers
	Duration        time.Duration // Wall clock render time
}

// SamplesPerSecond returns camera samples traced per second of wall clock time
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}
