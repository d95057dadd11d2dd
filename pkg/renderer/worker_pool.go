package renderer

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/lights"
)

// RowRange is a half-open band of scan lines [Start, End)
type RowRange struct {
	Start int
	End   int
}

// Len returns the number of rows in the range
func (r RowRange) Len() int {
	return r.End - r.Start
}

// ThreadCount returns runtime.NumCPU() clamped to [1, maxThreads]. A
// non-positive maxThreads means no upper bound.
func ThreadCount(maxThreads int) int {
	return clampThreads(runtime.NumCPU(), maxThreads)
}

func clampThreads(n, maxThreads int) int {
	if maxThreads > 0 && n > maxThreads {
		n = maxThreads
	}
	if n < 1 {
		n = 1
	}
	return n
}

// PartitionRows splits height rows into threads contiguous ranges. The first
// threads-1 ranges get height/threads rows each and the last also takes the
// remainder. When threads exceeds height the leading ranges are empty.
func PartitionRows(height, threads int) []RowRange {
	if threads < 1 {
		threads = 1
	}
	if height < 0 {
		height = 0
	}

	perThread := height / threads
	ranges := make([]RowRange, threads)
	for i := 0; i < threads-1; i++ {
		ranges[i] = RowRange{Start: i * perThread, End: (i + 1) * perThread}
	}
	ranges[threads-1] = RowRange{Start: (threads - 1) * perThread, End: height}
	return ranges
}

// rowWorker renders one band of scan lines into its own slice of the framebuffer
type rowWorker struct {
	id       int
	rows     RowRange
	pix      []uint32 // Framebuffer rows owned by this worker only
	sampler  core.Sampler
	camera   *Camera
	tracer   integrator.Integrator
	world    geometry.Hittable
	lightSet lights.Target
	progress *atomic.Int64
}

// newRowWorker creates a worker with its own deterministic random source
func newRowWorker(id int, rows RowRange, fb *Framebuffer, seed int64, r *Renderer, world geometry.Hittable, lightSet lights.Target, progress *atomic.Int64) *rowWorker {
	return &rowWorker{
		id:       id,
		rows:     rows,
		pix:      fb.Rows(rows),
		sampler:  core.NewRandomSampler(rand.New(rand.NewSource(seed + int64(id)))),
		camera:   r.camera,
		tracer:   r.integrator,
		world:    world,
		lightSet: lightSet,
		progress: progress,
	}
}

// run renders every pixel of the band, bumping progress after each row
func (w *rowWorker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	width := w.camera.ImageWidth()
	n := w.camera.SqrtSpp()
	scale := w.camera.PixelSamplesScale()
	maxDepth := w.tracer.MaxDepth()

	for j := w.rows.Start; j < w.rows.End; j++ {
		row := w.pix[(j-w.rows.Start)*width : (j-w.rows.Start+1)*width]
		for i := 0; i < width; i++ {
			pixelColor := core.Vec3{}
			for sj := 0; sj < n; sj++ {
				for si := 0; si < n; si++ {
					ray := w.camera.GetRay(i, j, si, sj, w.sampler)
					pixelColor = pixelColor.Add(w.tracer.RayColor(ray, maxDepth, w.world, w.lightSet, w.sampler))
				}
			}
			row[i] = PackColor(pixelColor.Multiply(scale))
		}
		w.progress.Add(1)
	}
}
