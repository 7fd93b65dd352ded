package presenter

import (
	"testing"
	"time"

	"github.com/visionlab/stimscreen/domain/session"
)

type stubStateSource struct {
	state  session.State
	failed bool
}

func (s *stubStateSource) Current() session.State { return s.state }
func (s *stubStateSource) Failed() bool           { return s.failed }

type stateRecorder struct{ labels []string }

func (r *stateRecorder) SetStateLabel(s string) { r.labels = append(r.labels, s) }

func TestStatePresenter_InitialLabelFromFSM(t *testing.T) {
	src := &stubStateSource{state: session.StateWaiting}
	view := &stateRecorder{}
	p := NewStatePresenter(src, view)
	p.Tick(time.Now())
	if len(view.labels) != 1 || view.labels[0] != "State: waiting" {
		t.Fatalf("expected initial waiting label, got %v", view.labels)
	}
}

func TestStatePresenter_FlushesLatestPending(t *testing.T) {
	src := &stubStateSource{state: session.StateWaiting}
	view := &stateRecorder{}
	p := NewStatePresenter(src, view)
	p.Tick(time.Now())

	p.OnState(session.StateRunning)
	p.OnState(session.StateStopped)
	p.Tick(time.Now())
	if got := view.labels[len(view.labels)-1]; got != "State: stopped" {
		t.Fatalf("expected only the latest pending state to show, got %q", got)
	}
	if len(view.labels) != 2 {
		t.Fatalf("intermediate states must be coalesced, got %v", view.labels)
	}
}

func TestStatePresenter_ErrorStopsShowDistinctLabel(t *testing.T) {
	src := &stubStateSource{state: session.StateRunning}
	view := &stateRecorder{}
	p := NewStatePresenter(src, view)
	p.Tick(time.Now())

	src.failed = true
	p.OnState(session.StateStopped)
	p.Tick(time.Now())
	if got := view.labels[len(view.labels)-1]; got != "State: stopped (error)" {
		t.Fatalf("expected error-stop label, got %q", got)
	}
}

func TestStatePresenter_UnchangedStateNotRelabelled(t *testing.T) {
	src := &stubStateSource{state: session.StateRunning}
	view := &stateRecorder{}
	p := NewStatePresenter(src, view)
	p.Tick(time.Now())
	p.OnState(session.StateRunning)
	p.Tick(time.Now())
	if len(view.labels) != 1 {
		t.Fatalf("same state must not re-set the label, got %v", view.labels)
	}
}
