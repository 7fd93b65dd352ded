package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It calls Tick on the sub-presenters and invokes a scheduler callback that
// re-arms the next Tk timer. The zero value is usable (methods are nil-safe).
type Loop struct {
	Stimulus *StimulusPresenter
	State    *StatePresenter
	Rate     *RatePresenter
	Session  *SessionPresenter
	Schedule func()
}

func NewLoop(stim *StimulusPresenter, state *StatePresenter, rate *RatePresenter, sess *SessionPresenter, schedule func()) *Loop {
	return &Loop{Stimulus: stim, State: state, Rate: rate, Session: sess, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	// State first so label changes land in the same tick as the frames that
	// caused them.
	if l.State != nil {
		l.State.Tick(now)
	}
	if l.Stimulus != nil {
		l.Stimulus.Tick(now)
	}
	if l.Rate != nil {
		l.Rate.Tick(now)
	}
	if l.Session != nil {
		l.Session.Tick(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
