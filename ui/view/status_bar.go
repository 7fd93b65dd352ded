package view

import (
	"fmt"
	"time"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// StatusBar updates the state, rate and session duration labels.
type StatusBar interface {
	SetStateLabel(text string)
	SetRateLabel(text string)
	SetSession(run, total time.Duration)
}

type statusBar struct {
	stateLbl   *LabelWidget
	rateLbl    *LabelWidget
	sessionLbl *LabelWidget
}

// NewStatusBar creates the labels on the given grid row, below the surface.
func NewStatusBar(row int) StatusBar {
	s := &statusBar{
		stateLbl:   Label(Txt("State: waiting"), Borderwidth(1), Relief("ridge")),
		rateLbl:    Label(Txt("Rate: idle")),
		sessionLbl: Label(Txt("Run: 00:00  Total: 00:00")),
	}
	Grid(s.stateLbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.3m"))
	Grid(s.rateLbl, Row(row), Column(1), Sticky("w"), Padx("0.4m"), Pady("0.3m"))
	Grid(s.sessionLbl, Row(row), Column(2), Sticky("e"), Padx("0.4m"), Pady("0.3m"))
	return s
}

func (s *statusBar) SetStateLabel(text string) {
	if s == nil || s.stateLbl == nil {
		return
	}
	s.stateLbl.Configure(Txt(text))
}

func (s *statusBar) SetRateLabel(text string) {
	if s == nil || s.rateLbl == nil {
		return
	}
	s.rateLbl.Configure(Txt(text))
}

func (s *statusBar) SetSession(run, total time.Duration) {
	if s == nil || s.sessionLbl == nil {
		return
	}
	rs := int(run.Seconds())
	ts := int(total.Seconds())
	s.sessionLbl.Configure(Txt(fmt.Sprintf("Run: %02d:%02d  Total: %02d:%02d",
		rs/60, rs%60, ts/60, ts%60)))
}
