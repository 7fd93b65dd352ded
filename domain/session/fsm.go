package session

import (
	"errors"
	"log/slog"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/visionlab/stimscreen/domain/render"
)

// State enumerates the run lifecycle of a stimulus session.
type State int

const (
	// StateWaiting: window is up showing the prompt, render loop not started.
	StateWaiting State = iota
	// StateRunning: render loop active.
	StateRunning
	// StateStopped: render loop ended, by request or by a generation error.
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Listener is called on each successful state transition.
type Listener func(prev, next State)

// RenderControl narrows the render service surface the FSM drives.
type RenderControl interface {
	Start() error
	Stop()
	Join(timeout time.Duration) bool
}

// FSM serializes session lifecycle decisions on a single event goroutine:
// key presses arrive from the UI thread, generation errors from the render
// worker, and both funnel through the same channel.
type FSM struct {
	// state is written on the event goroutine and read from the UI tick, so
	// it lives in an atomic like the failed flag.
	state     atomic.Int32
	loop      RenderControl
	logger    *slog.Logger
	events    chan interface{}
	listeners []Listener
	failed    atomic.Bool
	closed    atomic.Bool
}

type (
	evtStart       struct{}
	evtFailed      struct{ err error }
	evtShutdown    struct{ ack chan bool }
	evtAddListener struct{ l Listener }
)

// shutdownJoin bounds the worker join during shutdown.
const shutdownJoin = 2 * time.Second

// NewFSM constructs the FSM in StateWaiting and starts its event loop.
func NewFSM(logger *slog.Logger, loop RenderControl) *FSM {
	f := &FSM{loop: loop, logger: logger, events: make(chan interface{}, 16)}
	f.state.Store(int32(StateWaiting))
	go func() {
		defer func() {
			if r := recover(); r != nil && logger != nil {
				logger.Error("session fsm panic", "error", r, "stack", string(debug.Stack()))
			}
		}()
		f.run()
	}()
	return f
}

func (f *FSM) run() {
	for ev := range f.events {
		switch e := ev.(type) {
		case evtAddListener:
			f.listeners = append(f.listeners, e.l)
		case evtStart:
			f.handleStart()
		case evtFailed:
			if f.Current() == StateRunning {
				if f.logger != nil {
					f.logger.Error("stimulus run failed", "error", e.err)
				}
				f.failed.Store(true)
				f.transition(StateStopped)
			}
		case evtShutdown:
			f.loop.Stop()
			joined := f.loop.Join(shutdownJoin)
			if !joined && f.logger != nil {
				f.logger.Warn("render worker did not exit before shutdown deadline")
			}
			if f.Current() != StateStopped {
				f.transition(StateStopped)
			}
			e.ack <- joined
		}
	}
	f.closed.Store(true)
}

// Start is valid from Waiting (wait-for-start mode) and from Stopped
// (restart); the render loop resets its clock origin on each Start.
func (f *FSM) handleStart() {
	if f.Current() == StateRunning {
		return
	}
	f.failed.Store(false)
	if err := f.loop.Start(); err != nil {
		if errors.Is(err, render.ErrAlreadyRunning) {
			return
		}
		if f.logger != nil {
			f.logger.Error("render loop start failed", "error", err)
		}
		return
	}
	f.transition(StateRunning)
}

func (f *FSM) transition(next State) {
	prev := f.Current()
	if prev == next {
		return
	}
	f.state.Store(int32(next))
	if f.logger != nil {
		f.logger.Debug("session state transition", "from", prev.String(), "to", next.String())
	}
	for _, l := range f.listeners {
		l(prev, next)
	}
}

// AddListener registers a transition listener.
func (f *FSM) AddListener(l Listener) { f.events <- evtAddListener{l: l} }

// Current returns the state as last set by the event loop. Read-mostly; used
// by presenters on the UI tick.
func (f *FSM) Current() State { return State(f.state.Load()) }

// Failed reports whether the most recent stop was caused by a generation
// error rather than a requested shutdown. Cleared on the next start.
func (f *FSM) Failed() bool { return f.failed.Load() }

// EventStart requests the render loop to begin (start key, or immediately at
// boot when not in wait mode).
func (f *FSM) EventStart() { f.events <- evtStart{} }

// EventGenerationFailed records that the render worker died; the loop has
// already stopped itself, this only moves the session state.
func (f *FSM) EventGenerationFailed(err error) { f.events <- evtFailed{err: err} }

// Shutdown stops the loop, joins the worker (bounded) and reports whether it
// exited. Safe to call once at quit.
func (f *FSM) Shutdown() bool {
	ack := make(chan bool, 1)
	f.events <- evtShutdown{ack: ack}
	select {
	case ok := <-ack:
		return ok
	case <-time.After(shutdownJoin + time.Second):
		return false
	}
}

// Close terminates the event loop goroutine.
func (f *FSM) Close() {
	if f.closed.Load() {
		return
	}
	close(f.events)
}
