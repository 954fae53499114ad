package renderer

import (
	"testing"
	"time"
)

func TestRenderStats_SamplesPerSecond(t *testing.T) {
	stats := RenderStats{TotalSamples: 1000, Duration: 2 * time.Second}
	if got := stats.SamplesPerSecond(); got != 500 {
		t.Errorf("Expected 500 samples/s, got %f", got)
	}

	if got := (RenderStats{TotalSamples: 10}).SamplesPerSecond(); got != 0 {
		t.Errorf("Expected 0 for zero duration, got %f", got)
	}
}
