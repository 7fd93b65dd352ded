package presenter

// RunModel provides active-state access.
type RunModel interface {
	Active() bool
	SetActive(bool)
}

// RunFSM exposes the session events the presenter raises.
type RunFSM interface {
	EventStart()
}

// RunPresenter owns presentation logic for beginning a stimulus run: the start
// key and the autostart path both land here.
type RunPresenter struct {
	model RunModel
	fsm   RunFSM
}

func NewRunPresenter(model RunModel, fsm RunFSM) *RunPresenter {
	return &RunPresenter{model: model, fsm: fsm}
}

// Start requests the run. Idempotent; the model flag is flipped by the FSM
// listener once the transition actually happens, so a failed start leaves the
// presenter ready to try again.
func (p *RunPresenter) Start() {
	if p == nil || p.model == nil || p.fsm == nil {
		return
	}
	if p.model.Active() { // already running
		return
	}
	p.fsm.EventStart()
}
