package renderer

import (
	"runtime"
	"sync"

	"github.com/df07/go-monte-carlo-raytracer/pkg/core"
)

// RowTask represents one image row to render
type RowTask struct {
	Row int
}

// RowResult contains the result from rendering a row
type RowResult struct {
	Row     int
	Samples int
}

// WorkerPool manages parallel row rendering
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual row rendering tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	frame       *Frame
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool that renders rows of frame with the given raytracer
func NewWorkerPool(raytracer *Raytracer, frame *Frame, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, frame.Height),   // Buffer for every row
		resultQueue: make(chan RowResult, frame.Height), // Buffer for every result
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			raytracer:   raytracer,
			frame:       frame,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// Each row owns its sampler so the result does not depend on which worker takes it
		sampler := core.NewSeededSampler(RowSeed(w.raytracer.config.Seed, task.Row))

		// Rows have non-overlapping pixel ranges, so writing straight into the frame is safe
		samples := w.raytracer.RenderRow(task.Row, sampler, w.frame.Row(task.Row))

		w.resultQueue <- RowResult{Row: task.Row, Samples: samples}
	}
}

// RowSeed derives the sampler seed for a row from the base seed
func RowSeed(seed int64, row int) int64 {
	// splitmix64 step spreads neighbouring rows across the seed space
	z := uint64(seed) + uint64(row+1)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return int64(z ^ (z >> 31))
}
