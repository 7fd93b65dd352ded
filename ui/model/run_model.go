package model

import (
	"sync/atomic"
)

// RunModel tracks whether the stimulus run is active. The zero value is idle
// and usable. Concurrency-safe via atomic Bool because session listeners fire
// on the FSM goroutine while presenter ticks read on the UI thread.
type RunModel struct{ active atomic.Bool }

// Active reports whether a stimulus run is in progress.
func (m *RunModel) Active() bool {
	if m == nil {
		return false
	}
	return m.active.Load()
}

// SetActive stores the run flag.
func (m *RunModel) SetActive(b bool) {
	if m == nil {
		return
	}
	prev := m.active.Load()
	if prev == b { // no change
		return
	}
	m.active.Store(b)
}
