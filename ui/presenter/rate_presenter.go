package presenter

import (
	"fmt"
	"time"

	"github.com/visionlab/stimscreen/domain/render"
)

// StatsSource exposes the render loop counters the presenter displays.
type StatsSource interface {
	Running() bool
	Stats() render.LoopStats
}

// RateView sets the frame-rate label in the view.
type RateView interface{ SetRateLabel(string) }

// RatePresenter formats the loop's frame counters into the status bar.
type RatePresenter struct {
	src      StatsSource
	view     RateView
	started  time.Time
	lastText string
}

func NewRatePresenter(src StatsSource, view RateView) *RatePresenter {
	return &RatePresenter{src: src, view: view}
}

// Tick updates the rate label. The label changes only when the formatted text
// changes, so idle ticks do not touch the widget.
func (p *RatePresenter) Tick(now time.Time) {
	if p == nil || p.src == nil || p.view == nil {
		return
	}
	var text string
	if !p.src.Running() {
		p.started = time.Time{}
		text = "Rate: idle"
	} else {
		if p.started.IsZero() {
			p.started = now
		}
		stats := p.src.Stats()
		elapsed := now.Sub(p.started).Seconds()
		if elapsed <= 0 || stats.Frames == 0 {
			text = "Rate: measuring"
		} else {
			fps := float64(stats.Frames) / elapsed
			text = fmt.Sprintf("Rate: %.1f fps (gen %.0f us)", fps, stats.AvgGenerateMicro)
		}
	}
	if text != p.lastText {
		p.lastText = text
		p.view.SetRateLabel(text)
	}
}
