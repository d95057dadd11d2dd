package renderer

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/lights"
)

// DefaultProgressInterval is how often the reporter prints the completed percentage
const DefaultProgressInterval = time.Second

// RenderOptions controls scheduling of a render
type RenderOptions struct {
	MaxThreads       int           // Upper bound on worker goroutines (<= 0: one per CPU)
	Seed             int64         // Worker i samples from rand.NewSource(Seed + i)
	ProgressInterval time.Duration // Reporter tick (<= 0: DefaultProgressInterval)
}

// Renderer splits the image into bands of scan lines and renders them in parallel
type Renderer struct {
	camera     *Camera
	integrator integrator.Integrator
	options    RenderOptions
	logger     core.Logger
}

// NewRenderer creates a renderer. A nil logger discards all output.
func NewRenderer(cameraConfig CameraConfig, tracer integrator.Integrator, options RenderOptions, logger core.Logger) *Renderer {
	if options.ProgressInterval <= 0 {
		options.ProgressInterval = DefaultProgressInterval
	}
	if logger == nil {
		logger = discardLogger{}
	}
	return &Renderer{
		camera:     NewCamera(cameraConfig),
		integrator: tracer,
		options:    options,
		logger:     logger,
	}
}

// Camera returns the initialized camera
func (r *Renderer) Camera() *Camera {
	return r.camera
}

// Render traces every pixel of the image. world and lightSet are shared
// read-only by all workers.
func (r *Renderer) Render(world geometry.Hittable, lightSet lights.Target) (*Framebuffer, RenderStats) {
	width, height := r.camera.ImageWidth(), r.camera.ImageHeight()
	fb := NewFramebuffer(width, height)

	threads := ThreadCount(r.options.MaxThreads)
	r.logger.Printf("Processing image with %d threads\n", threads)

	start := time.Now()
	var progress atomic.Int64

	var wg sync.WaitGroup
	for i, rows := range PartitionRows(height, threads) {
		w := newRowWorker(i, rows, fb, r.options.Seed, r, world, lightSet, &progress)
		wg.Add(1)
		go w.run(&wg)
	}

	reporterDone := make(chan struct{})
	go func() {
		defer close(reporterDone)
		r.reportProgress(&progress, int64(height))
	}()

	wg.Wait()
	<-reporterDone

	samples := r.camera.SqrtSpp() * r.camera.SqrtSpp()
	stats := RenderStats{
		Threads:         threads,
		Width:           width,
		Height:          height,
		SamplesPerPixel: samples,
		TotalSamples:    width * height * samples,
		Duration:        time.Since(start),
	}
	return fb, stats
}

// reportProgress prints the completed percentage every tick until all rows are done
func (r *Renderer) reportProgress(progress *atomic.Int64, total int64) {
	ticker := time.NewTicker(r.options.ProgressInterval)
	defer ticker.Stop()

	for {
		done := progress.Load()
		r.logger.Printf("\r%d%%", done*100/total)
		if done >= total {
			r.logger.Printf("\n")
			return
		}
		<-ticker.C
	}
}
