package presenter

import "testing"

type mockRunModel struct{ active bool }

func (m *mockRunModel) Active() bool     { return m.active }
func (m *mockRunModel) SetActive(b bool) { m.active = b }

type mockRunFSM struct{ starts int }

func (f *mockRunFSM) EventStart() { f.starts++ }

func TestRunPresenter_StartRaisesEventOnce(t *testing.T) {
	m := &mockRunModel{}
	fsm := &mockRunFSM{}
	p := NewRunPresenter(m, fsm)

	p.Start()
	if fsm.starts != 1 {
		t.Fatalf("start failed: starts=%d", fsm.starts)
	}

	// Once the FSM listener marks the run active, Start is a no-op.
	m.SetActive(true)
	p.Start()
	if fsm.starts != 1 {
		t.Fatalf("start while active must be a no-op, starts=%d", fsm.starts)
	}
}

func TestRunPresenter_RetryAfterFailedStart(t *testing.T) {
	m := &mockRunModel{}
	fsm := &mockRunFSM{}
	p := NewRunPresenter(m, fsm)

	p.Start()
	// Model never flipped (the FSM rejected the start), so a second press
	// raises the event again.
	p.Start()
	if fsm.starts != 2 {
		t.Fatalf("failed start should remain retryable, starts=%d", fsm.starts)
	}
}

func TestRunPresenter_NilSafe(t *testing.T) {
	var p *RunPresenter
	p.Start() // must not panic
	NewRunPresenter(nil, nil).Start()
}
