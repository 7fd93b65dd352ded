package presenter

import (
	"sync"
	"time"

	"github.com/visionlab/stimscreen/domain/session"
)

// StateSource provides the session FSM methods the presenter requires.
type StateSource interface {
	Current() session.State
	Failed() bool
}

// StateView sets the state label in the view.
type StateView interface{ SetStateLabel(string) }

// StatePresenter receives queued state changes from the session FSM listener
// and reflects the most recent one on the next UI tick.
type StatePresenter struct {
	fsm    StateSource
	view   StateView
	latest session.State
	shown  bool

	mu      sync.Mutex // guards pending; OnState arrives off the UI thread
	pending []session.State
}

func NewStatePresenter(fsm StateSource, view StateView) *StatePresenter {
	return &StatePresenter{fsm: fsm, view: view}
}

// OnState queues a transitioned state from the FSM listener. The FSM invokes
// listeners on its own goroutine; the latest queued state is reflected on the
// next Tick.
func (p *StatePresenter) OnState(s session.State) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.pending = append(p.pending, s)
	p.mu.Unlock()
}

// Tick processes queued states and updates the view with the most recent one.
func (p *StatePresenter) Tick(now time.Time) {
	if p == nil || p.fsm == nil || p.view == nil {
		return
	}
	if !p.shown {
		p.shown = true
		p.latest = p.fsm.Current()
		p.view.SetStateLabel(p.label(p.latest))
	}
	p.mu.Lock()
	var last session.State
	flush := len(p.pending) > 0
	if flush {
		last = p.pending[len(p.pending)-1]
		p.pending = p.pending[:0]
	}
	p.mu.Unlock()
	if flush && last != p.latest {
		p.latest = last
		p.view.SetStateLabel(p.label(last))
	}
}

func (p *StatePresenter) label(s session.State) string {
	if s == session.StateStopped && p.fsm.Failed() {
		return "State: stopped (error)"
	}
	return "State: " + s.String()
}
