package stimulus

import (
	"image"
	"testing"

	"github.com/visionlab/stimscreen/config"
)

func sequenceConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Display.Width = 64
	cfg.Display.Height = 64
	cfg.Sequence = config.ImgSequence{PaddingBefore: 0.5, Duration: 1.0, PaddingAfter: 0.5}
	cfg.FocusPoint.Toggled = false
	return cfg
}

func solidSet(n, w, h int) *ImageSet {
	set := &ImageSet{}
	for i := 0; i < n; i++ {
		img := image.NewRGBA(image.Rect(0, 0, w, h))
		for p := 0; p < len(img.Pix); p += 4 {
			img.Pix[p+0] = uint8(50 * (i + 1))
			img.Pix[p+3] = 255
		}
		set.Images = append(set.Images, img)
		set.Names = append(set.Names, "solid")
	}
	return set
}

func newTestSequence(t *testing.T, n int) *Sequence {
	t.Helper()
	cfg := sequenceConfig()
	g, err := NewSequence(cfg, solidSet(n, 64, 64), false)
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}
	return g
}

func TestSequence_TrialLength(t *testing.T) {
	g := newTestSequence(t, 3)
	if g.TrialLength() != 2.0 {
		t.Fatalf("trial length = %v, want 2.0", g.TrialLength())
	}
}

func TestSequence_IndexSelection(t *testing.T) {
	g := newTestSequence(t, 3)
	cases := []struct {
		t    float64
		want int
	}{
		{0.6, 0},
		{2.6, 1},
		{4.6, 2},
		{6.6, 0}, // wraps after N trials
	}
	for _, c := range cases {
		if got := g.index(c.t); got != c.want {
			t.Errorf("index(%v) = %d, want %d", c.t, got, c.want)
		}
	}
}

func TestSequence_AlphaLogisticMidpoints(t *testing.T) {
	g := newTestSequence(t, 3)
	// The rise edge floors and the fall edge ceils the logistic midpoint.
	if a := g.alphaAt(0.5); a != 127 {
		t.Errorf("alpha at t1 = %d, want 127", a)
	}
	if a := g.alphaAt(1.5); a != 128 {
		t.Errorf("alpha at t2 = %d, want 128", a)
	}
}

func TestSequence_AlphaEnvelope(t *testing.T) {
	g := newTestSequence(t, 3)
	if a := g.alphaAt(1.0); a < 254 {
		t.Errorf("mid-trial alpha = %d, want saturated", a)
	}
	if a := g.alphaAt(0.6); a < 250 {
		t.Errorf("alpha shortly after onset = %d, want near full", a)
	}
	if a := g.alphaAt(0.1); a > 1 {
		t.Errorf("alpha in leading padding = %d, want ~0", a)
	}
	if a := g.alphaAt(1.9); a > 1 {
		t.Errorf("alpha in trailing padding = %d, want ~0", a)
	}
}

func TestSequence_GenerateComposesImage(t *testing.T) {
	g := newTestSequence(t, 3)
	// Mid-trial: first image (R=50) at ~full opacity over gray background.
	frame, err := g.Generate(1.0)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	px := frame.RGBAAt(32, 32)
	if px.R > 55 || px.R < 45 {
		t.Fatalf("expected image red channel ~50 mid-trial, got %+v", px)
	}

	// In padding the background dominates.
	frame, err = g.Generate(0.05)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	px = frame.RGBAAt(32, 32)
	if px.R != backgroundLevel {
		t.Fatalf("expected background in padding, got %+v", px)
	}
}

func TestSequence_NegativeTimeRejected(t *testing.T) {
	g := newTestSequence(t, 1)
	if _, err := g.Generate(-0.1); err == nil {
		t.Fatalf("expected error for negative elapsed time")
	}
}

func TestSequence_EmptySetRejected(t *testing.T) {
	if _, err := NewSequence(sequenceConfig(), &ImageSet{}, false); err == nil {
		t.Fatalf("expected error for empty image set")
	}
}
