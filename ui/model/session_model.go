package model

import (
	"time"
)

// SessionModel tracks the current run duration and the accumulated presented
// time across runs. It is decoupled from the UI; presenters should poll
// Values() and update views. The zero value is ready to use.
type SessionModel struct {
	active          bool
	runStart        time.Time
	lastRunDuration time.Duration
	accumulated     time.Duration
}

// NewSessionModel returns a pointer to a ready-to-use SessionModel.
func NewSessionModel() *SessionModel { return &SessionModel{} }

// OnTick updates the model using the current run state and timestamp.
// Call periodically (for example, from a presenter tick).
func (m *SessionModel) OnTick(running bool, now time.Time) {
	if m == nil {
		return
	}
	if running {
		if !m.active { // transition off -> on
			m.active = true
			m.runStart = now
			m.lastRunDuration = 0
		}
		m.lastRunDuration = now.Sub(m.runStart)
	} else if m.active { // transition on -> off
		m.lastRunDuration = now.Sub(m.runStart)
		m.accumulated += m.lastRunDuration
		m.active = false
	}
}

// Values returns the current run duration and the total accumulated duration.
// The total includes the ongoing run when active.
func (m *SessionModel) Values() (run, total time.Duration) {
	if m == nil {
		return 0, 0
	}
	run = m.lastRunDuration
	total = m.accumulated
	if m.active {
		total += run
	}
	return
}
