package presenter

import (
	"image"
	"time"

	"github.com/visionlab/stimscreen/domain/render"
)

// FrameSource supplies the most recent published stimulus frame.
type FrameSource interface {
	Read() (render.FrameSnapshot, bool)
}

// SurfaceView is the paintable stimulus surface.
type SurfaceView interface {
	PaintFrame(img image.Image)
}

// StimulusPresenter copies newly published frames to the surface on each UI
// tick. A tick with no published frame, or with an unchanged sequence number,
// leaves the surface alone so Tk is not asked to re-encode identical pixels.
type StimulusPresenter struct {
	source  FrameSource
	view    SurfaceView
	lastSeq uint64
}

func NewStimulusPresenter(source FrameSource, view SurfaceView) *StimulusPresenter {
	return &StimulusPresenter{source: source, view: view}
}

// Tick reads the buffer and repaints when the frame changed.
func (p *StimulusPresenter) Tick(now time.Time) {
	if p == nil || p.source == nil || p.view == nil {
		return
	}
	snap, ok := p.source.Read()
	if !ok || snap.Image == nil {
		return
	}
	if snap.Seq == p.lastSeq {
		return
	}
	p.lastSeq = snap.Seq
	p.view.PaintFrame(snap.Image)
}
