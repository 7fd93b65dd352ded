package verify

import (
	"errors"
	"image"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func solidRGBA(w, h int, v uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = v
		img.Pix[i+1] = v
		img.Pix[i+2] = v
		img.Pix[i+3] = 255
	}
	return img
}

func TestMeanLuminance_SolidGray(t *testing.T) {
	got := MeanLuminance(solidRGBA(8, 8, 128))
	if got < 127.9 || got > 128.1 {
		t.Fatalf("mean luminance of solid 128 gray = %v, want ~128", got)
	}
}

func TestMeanLuminance_BlackAndNil(t *testing.T) {
	if got := MeanLuminance(solidRGBA(4, 4, 0)); got != 0 {
		t.Fatalf("black image luminance = %v, want 0", got)
	}
	if got := MeanLuminance(nil); got != 0 {
		t.Fatalf("nil image luminance = %v, want 0", got)
	}
}

func TestChecker_SamplesViaGrab(t *testing.T) {
	c := NewChecker(discardLogger, image.Rect(0, 0, 8, 8), 5*time.Millisecond)
	var calls atomic.Int32
	c.grab = func(r image.Rectangle) (*image.RGBA, error) {
		calls.Add(1)
		return solidRGBA(r.Dx(), r.Dy(), 100), nil
	}
	c.Start()
	defer c.Stop()

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if calls.Load() >= 2 {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("checker never sampled the grab function")
}

func TestChecker_GrabErrorsDoNotStopSampling(t *testing.T) {
	c := NewChecker(discardLogger, image.Rect(0, 0, 8, 8), 5*time.Millisecond)
	var calls atomic.Int32
	c.grab = func(image.Rectangle) (*image.RGBA, error) {
		calls.Add(1)
		return nil, errors.New("no display")
	}
	c.Start()
	defer c.Stop()

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if calls.Load() >= 3 {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("checker stopped sampling after grab errors")
}

func TestChecker_StartStopIdempotent(t *testing.T) {
	c := NewChecker(discardLogger, image.Rect(0, 0, 4, 4), time.Millisecond)
	c.grab = func(r image.Rectangle) (*image.RGBA, error) {
		return solidRGBA(r.Dx(), r.Dy(), 1), nil
	}
	c.Start()
	c.Start() // second start is a no-op
	c.Stop()
	c.Stop() // second stop must not panic on a closed channel
}
