package render

import (
	"image"
	"time"
)

// FrameSnapshot carries the latest published frame and metadata.
type FrameSnapshot struct {
	Image *image.RGBA
	// Elapsed is the loop time in seconds the frame was generated for.
	Elapsed float64
	// PublishedAt is wall-clock publish time (staleness checks).
	PublishedAt time.Time
	// Seq increases by one per publish. Consumers use it to detect that the
	// buffer content has not changed since their last read.
	Seq uint64
}

// Generator produces the stimulus frame for a given elapsed time.
//
// Generate must be deterministic in t and must not mutate shared state; the
// loop never calls it with decreasing t, and a returned error terminates the
// loop.
type Generator interface {
	Generate(t float64) (*image.RGBA, error)
}

// The GeneratorFunc type adapts a plain function to the Generator interface.
type GeneratorFunc func(t float64) (*image.RGBA, error)

func (f GeneratorFunc) Generate(t float64) (*image.RGBA, error) { return f(t) }

// FrameSource provides read-only access to published frames.
type FrameSource interface {
	Read() (FrameSnapshot, bool)
}

// ServiceContract exposes lifecycle control for the render loop.
type ServiceContract interface {
	Start() error
	Stop()
	Running() bool
	// Join waits until the worker has exited, up to timeout. It reports
	// whether the worker is gone.
	Join(timeout time.Duration) bool
	Stats() LoopStats
}
