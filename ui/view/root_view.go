package view

import (
	"image"
	"log/slog"
	"time"

	"github.com/visionlab/stimscreen/config"
	"github.com/visionlab/stimscreen/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the presentation window: the stimulus surface on top and
// a thin status bar under it. It owns the subviews but exposes only the
// proxy methods presenters need.
type RootView struct {
	cfg    *config.Config
	logger *slog.Logger

	Surface StimulusSurface
	Status  StatusBar
}

// UI abstracts the view operations needed by presenters, decoupling them from
// the concrete RootView implementation.
type UI interface {
	SetStateLabel(text string)
	SetRateLabel(text string)
	SetSession(run, total time.Duration)
	PaintFrame(img image.Image)
}

func NewRootView(cfg *config.Config, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, logger: logger}
}

// Build constructs the layout and binds the control keys. Handlers are
// invoked on Tk's event loop thread.
func (rv *RootView) Build(onStart, onExit func()) {
	if rv == nil {
		return
	}
	theme.InitStyles()
	rv.Surface = NewStimulusSurface(rv.cfg.Display.Width, rv.cfg.Display.Height)
	rv.Status = NewStatusBar(1)

	if ev := keyEvent(rv.cfg.Control.QuitKey); ev != "" {
		Bind(App, ev, Command(onExit))
	}
	if ev := keyEvent(rv.cfg.Control.StartKey); ev != "" {
		Bind(App, ev, Command(onStart))
	}
}

// keyEvent turns a configured key name ("Escape", "s") into a Tk event
// pattern. Empty names disable the binding.
func keyEvent(key string) string {
	if key == "" {
		return ""
	}
	return "<KeyPress-" + key + ">"
}

// SetStateLabel updates the state label text.
func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetStateLabel(text)
	}
}

// SetRateLabel updates the frame-rate label text.
func (rv *RootView) SetRateLabel(text string) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetRateLabel(text)
	}
}

// SetSession updates the run and total duration labels.
func (rv *RootView) SetSession(run, total time.Duration) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetSession(run, total)
	}
}

// PaintFrame proxies to the stimulus surface.
func (rv *RootView) PaintFrame(img image.Image) {
	if rv != nil && rv.Surface != nil {
		rv.Surface.PaintFrame(img)
	}
}
