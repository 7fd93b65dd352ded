package app

import (
	"fmt"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/visionlab/stimscreen/debug"
	"github.com/visionlab/stimscreen/ui/images"
)

const (
	// tick paces the UI update chain; roughly 60 Hz. The render loop runs
	// faster, the presenter just picks up whatever is newest.
	tick = 16 * time.Millisecond
	// statusBarHeight is extra window height below the stimulus surface.
	statusBarHeight = 28
)

type application struct {
	c            *AppContainer
	afterID      string
	waitForStart bool
}

// NewApp prepares the presentation window for the given container. The window
// is kept topmost so the stimulus is never occluded during a run.
func NewApp(title string, c *AppContainer, waitForStart bool) *application {
	a := &application{c: c, waitForStart: waitForStart}

	cfg := c.Config
	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	// ScreenID places the window assuming monitors tile left to right.
	x := cfg.Display.ScreenID * cfg.Display.Width
	WmGeometry(App, fmt.Sprintf("%dx%d+%d+0", cfg.Display.Width, cfg.Display.Height+statusBarHeight, x))
	WmAttributes(App, "-topmost", 1)
	return a
}

// Start builds the UI, arms the update chain and blocks in Tk's event loop
// until the window is destroyed.
func (a *application) Start() {
	c := a.c
	c.RootView.Build(a.startHandler, a.exitHandler)
	c.WirePresenters(a.scheduleUpdate)

	// The prompt travels the same path as stimulus frames: published into the
	// buffer, picked up by the presenter on the first tick. The run's first
	// real frame then simply replaces it.
	if a.waitForStart && c.PromptImg != nil {
		cfg := c.Config
		prompt := images.Letterbox(c.PromptImg, cfg.Display.Width, cfg.Display.Height)
		c.Buffer.Publish(prompt, 0)
	}
	if c.Config.Debug {
		debug.StartGoroutineLogger(5*time.Second, c.Logger)
		if c.Checker != nil {
			c.Checker.Start()
		}
	}
	if !a.waitForStart {
		c.RunPresenter.Start()
	}

	a.scheduleUpdate()
	App.Wait()
}

func (a *application) startHandler() { a.c.RunPresenter.Start() }

func (a *application) exitHandler() {
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
		a.afterID = ""
	}
	if a.c.Checker != nil {
		a.c.Checker.Stop()
	}
	if !a.c.FSM.Shutdown() && a.c.Logger != nil {
		a.c.Logger.Warn("render worker still running at exit")
	}
	a.c.FSM.Close()
	Destroy(App)
}

// scheduleUpdate arms the next presenter tick using TclAfter so all view
// mutation stays on Tk's event loop thread.
func (a *application) scheduleUpdate() {
	a.afterID = TclAfter(tick, func() { a.update() })
}

func (a *application) update() {
	a.c.Loop.Tick()
}
