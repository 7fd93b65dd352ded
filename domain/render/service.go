package render

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// ErrAlreadyRunning is returned by Start when a worker is already active.
var ErrAlreadyRunning = errors.New("render loop already running")

// Option configures a Service at construction.
type Option func(*service)

// WithMinFrameInterval caps the loop rate: at least d between the start of
// successive generate calls. Zero (the default) leaves the loop uncapped;
// backpressure then comes only from how expensive Generate is.
func WithMinFrameInterval(d time.Duration) Option {
	return func(s *service) { s.minInterval = d }
}

// WithReportInterval sets the first frame-rate report deadline in seconds.
func WithReportInterval(seconds float64) Option {
	return func(s *service) { s.reportInitial = seconds }
}

// WithErrorListener registers a callback invoked (from the worker goroutine)
// when Generate fails and the loop stops.
func WithErrorListener(fn func(err error)) Option {
	return func(s *service) { s.onError = fn }
}

// Service drives frame production: it repeatedly evaluates the generator at
// the current elapsed time and publishes results into the frame buffer. Use
// NewService to construct an instance.
type Service interface {
	ServiceContract
}

type service struct {
	gen    Generator
	buf    *FrameBuffer
	logger *slog.Logger

	minInterval   time.Duration
	reportInitial float64
	onError       func(err error)

	running  atomic.Bool
	mu       sync.Mutex // guards done across start/join
	done     chan struct{}
	frames   atomic.Uint64
	genNanos atomic.Uint64
}

// NewService constructs a render loop over the given generator and buffer.
func NewService(gen Generator, buf *FrameBuffer, logger *slog.Logger, opts ...Option) Service {
	s := &service{gen: gen, buf: buf, logger: logger, reportInitial: 2}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *service) Running() bool { return s.running.Load() }

// Start captures a fresh clock origin and spawns exactly one worker. A second
// Start while running returns ErrAlreadyRunning; Start after Stop begins a new
// run with elapsed time back at zero.
func (s *service) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running.Load() {
		return ErrAlreadyRunning
	}
	// A previous worker may still be inside an in-flight Generate after Stop.
	// Wait for it to exit before re-raising the running flag, otherwise it
	// would observe the new flag and keep publishing frames from the old
	// origin into this run. Bounded by one generate cycle.
	if s.done != nil {
		<-s.done
		s.done = nil
	}
	s.running.Store(true)
	s.frames.Store(0)
	s.genNanos.Store(0)
	done := make(chan struct{})
	s.done = done
	origin := time.Now()
	runID := uuid.NewString()
	go s.loop(origin, runID, done)
	return nil
}

// Stop requests a cooperative shutdown. The worker observes the flag at the
// top of its next cycle; an in-flight Generate call is not interrupted. Pair
// with Join for synchronous shutdown.
func (s *service) Stop() {
	s.running.Store(false)
}

// Join blocks until the worker goroutine has exited, or timeout elapses.
func (s *service) Join(timeout time.Duration) bool {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done == nil {
		return true
	}
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (s *service) Stats() LoopStats {
	frames := s.frames.Load()
	total := s.genNanos.Load()
	var avg time.Duration
	avgMicro := 0.0
	if frames > 0 && total > 0 {
		avg = time.Duration(total / frames)
		avgMicro = float64(avg) / float64(time.Microsecond)
	}
	st := LoopStats{Frames: frames, AvgGenerate: avg, AvgGenerateMicro: avgMicro}
	if snap, ok := s.buf.Read(); ok {
		st.LastPublish = snap.PublishedAt
		st.LatestFrameAge = time.Since(snap.PublishedAt)
		st.Seq = snap.Seq
	}
	return st
}

func (s *service) loop(origin time.Time, runID string, done chan struct{}) {
	defer close(done)
	defer s.running.Store(false)

	if s.logger != nil {
		s.logger.Debug("render loop started", "run_id", runID)
	}
	reporter := newRateReporter(s.reportInitial)
	for s.running.Load() {
		cycleStart := time.Now()
		t := cycleStart.Sub(origin).Seconds()

		frame, err := s.gen.Generate(t)
		if err != nil {
			// The last published frame stays in the buffer so the
			// window freezes on a valid image instead of blanking.
			if s.logger != nil {
				s.logger.Error("frame generation failed", "run_id", runID, "t", t, "error", err)
			}
			if s.onError != nil {
				s.onError(err)
			}
			return
		}
		s.genNanos.Add(uint64(time.Since(cycleStart).Nanoseconds()))
		frames := s.frames.Add(1)

		// Re-check so a concurrent Stop cannot be overwritten by a stale
		// frame published after shutdown.
		if s.running.Load() {
			s.buf.Publish(frame, t)
		}

		if rate, ok := reporter.sample(t, frames); ok && s.logger != nil {
			s.logger.Info("frame rate", "run_id", runID, "fps", rate, "frames", frames)
		}

		if s.minInterval > 0 {
			if rem := s.minInterval - time.Since(cycleStart); rem > 0 {
				time.Sleep(rem)
			}
		}
	}
	if s.logger != nil {
		s.logger.Debug("render loop stopped", "run_id", runID, "frames", s.frames.Load())
	}
}
