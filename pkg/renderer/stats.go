package renderer

import (
	"fmt"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Threads         int           // Number of worker goroutines
	Width           int           // Image width in pixels
	Height          int           // Image height in pixels
	SamplesPerPixel int           // Effective samples per pixel (a perfect square)
	TotalSamples    int           // Total number of camera samples taken
	Duration        time.Duration // Wall time from first spawn to last join
}

// SamplesPerSecond returns the camera-sample throughput of the render
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}

func (s RenderStats) String() string {
	return fmt.Sprintf("%dx%d, %d spp, %d threads, %d samples in %v (%.0f samples/s)",
		s.Width, s.Height, s.SamplesPerPixel, s.Threads, s.TotalSamples,
		s.Duration.Round(time.Millisecond), s.SamplesPerSecond())
}
