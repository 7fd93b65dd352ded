package presenter

import (
	"time"

	"github.com/visionlab/stimscreen/ui/model"
)

// RunActiveModel reports whether a stimulus run is active.
type RunActiveModel interface{ Active() bool }

// SessionView displays formatted run and total durations.
type SessionView interface {
	SetSession(run, total time.Duration)
}

// SessionPresenter feeds run and total durations from the model to the view.
type SessionPresenter struct {
	sess *model.SessionModel
	run  RunActiveModel
	view SessionView
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(sess *model.SessionModel, run RunActiveModel, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, run: run, view: view}
}

// Tick advances the session model and pushes values to the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.run == nil || p.view == nil {
		return
	}
	p.sess.OnTick(p.run.Active(), now)
	s, t := p.sess.Values()
	p.view.SetSession(s, t)
}
