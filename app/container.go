package app

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/visionlab/stimscreen/assets"
	"github.com/visionlab/stimscreen/config"
	"github.com/visionlab/stimscreen/domain/render"
	"github.com/visionlab/stimscreen/domain/session"
	"github.com/visionlab/stimscreen/domain/stimulus"
	"github.com/visionlab/stimscreen/domain/verify"
	"github.com/visionlab/stimscreen/ui/model"
	"github.com/visionlab/stimscreen/ui/presenter"
	"github.com/visionlab/stimscreen/ui/view"
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config *config.Config
	Logger *slog.Logger
	Kind   stimulus.Kind

	Buffer  *render.FrameBuffer
	Service render.Service
	FSM     *session.FSM
	Checker *verify.Checker

	Run      *model.RunModel
	Session  *model.SessionModel
	RootView *view.RootView
	UI       view.UI

	// Presenters
	StimulusPresenter *presenter.StimulusPresenter
	StatePresenter    *presenter.StatePresenter
	RatePresenter     *presenter.RatePresenter
	SessionPresenter  *presenter.SessionPresenter
	RunPresenter      *presenter.RunPresenter
	Loop              *presenter.Loop

	PromptImg image.Image
}

// BuildContainer constructs all components for the chosen stimulus kind.
// Side-effects are limited to asset and image-set loading; nothing touches Tk
// here, so the container is fully testable.
func BuildContainer(cfg *config.Config, logger *slog.Logger, kind stimulus.Kind) (*AppContainer, error) {
	c := &AppContainer{Config: cfg, Logger: logger, Kind: kind}
	c.Run = &model.RunModel{}
	c.Session = model.NewSessionModel()
	c.Buffer = render.NewFrameBuffer()

	gen, err := buildGenerator(cfg, kind)
	if err != nil {
		return nil, err
	}
	if cfg.FocusPoint.Toggled && logger != nil {
		// The fixation color schedule is derived from this seed; with it in the
		// log the dot timeline of a run can be reconstructed afterwards.
		logger.Info("fixation schedule seeded", "seed", cfg.FocusPoint.Seed)
	}

	opts := []render.Option{
		render.WithReportInterval(cfg.Render.ReportInterval),
	}
	if cfg.Render.MinFrameInterval > 0 {
		opts = append(opts, render.WithMinFrameInterval(
			time.Duration(cfg.Render.MinFrameInterval*float64(time.Second))))
	}
	// The error listener fires on the render worker; the FSM event channel is
	// the thread-safe hand-off. The FSM is assigned before any run can start,
	// so the nil check only covers construction time.
	c.Service = render.NewService(gen, c.Buffer, logger,
		append(opts, render.WithErrorListener(func(err error) {
			if c.FSM != nil {
				c.FSM.EventGenerationFailed(err)
			}
		}))...)
	c.FSM = session.NewFSM(logger, c.Service)

	// Session listener keeps the run model in step with the FSM.
	c.FSM.AddListener(func(prev, next session.State) {
		c.Run.SetActive(next == session.StateRunning)
	})

	if img, err := assets.PromptImage(); err == nil {
		c.PromptImg = img
	} else if logger != nil {
		logger.Warn("prompt image unavailable", "error", err)
	}

	if cfg.Debug {
		// Matches the window placement in app.NewApp.
		x0 := cfg.Display.ScreenID * cfg.Display.Width
		region := image.Rect(x0, 0, x0+cfg.Display.Width, cfg.Display.Height)
		c.Checker = verify.NewChecker(logger, region, 500*time.Millisecond)
	}

	c.RootView = view.NewRootView(cfg, logger)
	c.UI = c.RootView
	return c, nil
}

// WirePresenters connects presenters to the built UI. Call after the root
// view layout exists, on the Tk thread.
func (c *AppContainer) WirePresenters(schedule func()) {
	c.StimulusPresenter = presenter.NewStimulusPresenter(c.Buffer, c.UI)
	c.StatePresenter = presenter.NewStatePresenter(c.FSM, c.UI)
	c.RatePresenter = presenter.NewRatePresenter(c.Service, c.UI)
	c.SessionPresenter = presenter.NewSessionPresenter(c.Session, c.Run, c.UI)
	c.RunPresenter = presenter.NewRunPresenter(c.Run, c.FSM)
	c.FSM.AddListener(func(prev, next session.State) {
		c.StatePresenter.OnState(next)
	})
	c.Loop = presenter.NewLoop(c.StimulusPresenter, c.StatePresenter, c.RatePresenter, c.SessionPresenter, schedule)
}

func buildGenerator(cfg *config.Config, kind stimulus.Kind) (render.Generator, error) {
	switch kind {
	case stimulus.KindRing:
		return stimulus.NewRing(cfg, cfg.Debug)
	case stimulus.KindWedge:
		return stimulus.NewWedge(cfg, cfg.Debug)
	case stimulus.KindSequence:
		set, err := stimulus.LoadImageSet(cfg.Sequence.Directory, cfg.Display.Width, cfg.Display.Height)
		if err != nil {
			return nil, fmt.Errorf("load image sequence: %w", err)
		}
		return stimulus.NewSequence(cfg, set, cfg.Debug)
	default:
		return nil, fmt.Errorf("unknown stimulus kind %q", kind)
	}
}
