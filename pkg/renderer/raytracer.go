package renderer

import (
	"time"

	"github.com/df07/go-monte-carlo-raytracer/pkg/core"
	"github.com/df07/go-monte-carlo-raytracer/pkg/geometry"
	"github.com/df07/go-monte-carlo-raytracer/pkg/integrator"
)

// RenderConfig contains configuration for the parallel render
type RenderConfig struct {
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Seed       int64 // Base seed; equal seeds give byte-identical images
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		NumWorkers: 0,
		Seed:       42,
	}
}

// ProgressFunc is called after each finished row with the number of rows done so far.
// Calls come from a single goroutine.
type ProgressFunc func(done, total int)

// Raytracer renders a world through a camera
type Raytracer struct {
	world      geometry.Shape
	camera     *Camera
	integrator integrator.Integrator
	config     RenderConfig
	logger     core.Logger
	progress   ProgressFunc
}

// NewRaytracer creates a new raytracer. A nil logger disables logging.
func NewRaytracer(world geometry.Shape, camera *Camera, config RenderConfig, logger core.Logger) (*Raytracer, error) {
	if world == nil {
		return nil, ErrNilWorld
	}
	if camera == nil {
		return nil, ErrNilCamera
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	return &Raytracer{
		world:      world,
		camera:     camera,
		integrator: integrator.NewPathTracingIntegrator(),
		config:     config,
		logger:     logger,
	}, nil
}

// SetProgressCallback registers fn to be notified as rows complete
func (rt *Raytracer) SetProgressCallback(fn ProgressFunc) {
	rt.progress = fn
}

// Camera returns the camera the raytracer renders through
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// SamplePixel averages SamplesPerPixel radiance estimates for pixel (row, col)
func (rt *Raytracer) SamplePixel(row, col int, sampler core.Sampler) core.Color {
	colorAccum := core.Color{}
	for sample := 0; sample < rt.camera.SamplesPerPixel; sample++ {
		ray := rt.camera.GetRay(row, col, sampler)
		colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, rt.camera.MaxDepth, rt.world, sampler))
	}
	return colorAccum.Divide(float64(rt.camera.SamplesPerPixel))
}

// RenderRow fills out with the averaged colors of one row and returns the number of samples taken
func (rt *Raytracer) RenderRow(row int, sampler core.Sampler, out []core.Color) int {
	for col := range out {
		out[col] = rt.SamplePixel(row, col, sampler)
	}
	return len(out) * rt.camera.SamplesPerPixel
}

// Render renders the whole image with a pool of workers, one row per task
func (rt *Raytracer) Render() (*Frame, RenderStats, error) {
	width, height := rt.camera.ImageWidth, rt.camera.ImageHeight
	frame := NewFrame(width, height)

	pool := NewWorkerPool(rt, frame, rt.config.NumWorkers)
	rt.logger.Infof("rendering %dx%d, %d samples per pixel, depth %d, %d workers",
		width, height, rt.camera.SamplesPerPixel, rt.camera.MaxDepth, pool.GetNumWorkers())

	startTime := time.Now()
	pool.Start()
	for row := 0; row < height; row++ {
		pool.SubmitTask(RowTask{Row: row})
	}

	stats := RenderStats{
		Width:           width,
		Height:          height,
		TotalPixels:     width * height,
		SamplesPerPixel: rt.camera.SamplesPerPixel,
		MaxDepth:        rt.camera.MaxDepth,
		NumWorkers:      pool.GetNumWorkers(),
		Seed:            rt.config.Seed,
	}

	for done := 1; done <= height; done++ {
		result, _ := pool.GetResult()
		stats.TotalSamples += result.Samples
		if rt.progress != nil {
			rt.progress(done, height)
		}
	}
	pool.Stop()

	stats.Duration = time.Since(startTime)
	rt.logger.Debugf("render finished in %s (%.0f samples/s)", stats.Duration, stats.SamplesPerSecond())

	return frame, stats, nil
}
