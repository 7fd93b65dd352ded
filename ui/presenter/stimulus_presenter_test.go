package presenter

import (
	"image"
	"testing"
	"time"

	"github.com/visionlab/stimscreen/domain/render"
)

type stubSource struct {
	snap render.FrameSnapshot
	ok   bool
}

func (s *stubSource) Read() (render.FrameSnapshot, bool) { return s.snap, s.ok }

type paintRecorder struct {
	paints int
	last   image.Image
}

func (r *paintRecorder) PaintFrame(img image.Image) { r.paints++; r.last = img }

func frame(w, h int) *image.RGBA { return image.NewRGBA(image.Rect(0, 0, w, h)) }

func TestStimulusPresenter_EmptyBufferDoesNothing(t *testing.T) {
	src := &stubSource{ok: false}
	view := &paintRecorder{}
	p := NewStimulusPresenter(src, view)
	p.Tick(time.Now())
	if view.paints != 0 {
		t.Fatalf("tick on empty buffer must not paint, got %d paints", view.paints)
	}
}

func TestStimulusPresenter_PaintsNewFrameOnce(t *testing.T) {
	img := frame(4, 4)
	src := &stubSource{snap: render.FrameSnapshot{Image: img, Seq: 1}, ok: true}
	view := &paintRecorder{}
	p := NewStimulusPresenter(src, view)

	p.Tick(time.Now())
	if view.paints != 1 || view.last != image.Image(img) {
		t.Fatalf("expected one paint of the published frame, got %d", view.paints)
	}

	// Same sequence again: no repaint.
	p.Tick(time.Now())
	if view.paints != 1 {
		t.Fatalf("unchanged sequence must not repaint, got %d paints", view.paints)
	}

	// New sequence: repaint.
	src.snap = render.FrameSnapshot{Image: frame(4, 4), Seq: 2}
	p.Tick(time.Now())
	if view.paints != 2 {
		t.Fatalf("new sequence should repaint, got %d paints", view.paints)
	}
}

func TestStimulusPresenter_NilImageIgnored(t *testing.T) {
	src := &stubSource{snap: render.FrameSnapshot{Image: nil, Seq: 3}, ok: true}
	view := &paintRecorder{}
	p := NewStimulusPresenter(src, view)
	p.Tick(time.Now())
	if view.paints != 0 {
		t.Fatalf("nil frame must not paint")
	}
}

func TestStimulusPresenter_NilReceiverSafe(t *testing.T) {
	var p *StimulusPresenter
	p.Tick(time.Now()) // must not panic
}
