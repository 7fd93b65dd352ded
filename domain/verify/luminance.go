package verify

import (
	"image"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/vova616/screenshot"
)

// Checker samples the on-screen stimulus region at a fixed interval and logs
// its mean luminance. With the checkerboard flickering, the logged series
// should oscillate; a flat line means the window is not presenting. Debug
// runs only.
type Checker struct {
	logger   *slog.Logger
	region   image.Rectangle
	interval time.Duration
	grab     func(image.Rectangle) (*image.RGBA, error)

	running atomic.Bool
	done    chan struct{}
}

// NewChecker builds a checker over the given screen region.
func NewChecker(logger *slog.Logger, region image.Rectangle, interval time.Duration) *Checker {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	return &Checker{
		logger:   logger,
		region:   region,
		interval: interval,
		grab:     screenshot.CaptureRect,
	}
}

// Start launches the sampling goroutine. Idempotent.
func (c *Checker) Start() {
	if c.running.Load() {
		return
	}
	c.done = make(chan struct{})
	c.running.Store(true)
	go c.loop()
}

// Stop ends sampling. Idempotent.
func (c *Checker) Stop() {
	if !c.running.Load() {
		return
	}
	close(c.done)
	c.running.Store(false)
}

func (c *Checker) loop() {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	var grabErrLogged bool
	for {
		select {
		case <-ticker.C:
			img, err := c.grab(c.region)
			if err != nil {
				if !grabErrLogged && c.logger != nil {
					c.logger.Warn("photometric capture failed", "error", err)
					grabErrLogged = true
				}
				continue
			}
			if c.logger != nil {
				c.logger.Debug("photometric sample",
					"mean_luminance", MeanLuminance(img),
					"region", c.region.String(),
				)
			}
		case <-c.done:
			return
		}
	}
}

// MeanLuminance returns the average Rec.601 luma over the image, 0..255.
func MeanLuminance(img *image.RGBA) float64 {
	if img == nil {
		return 0
	}
	b := img.Bounds()
	n := b.Dx() * b.Dy()
	if n == 0 {
		return 0
	}
	var sum float64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		row := img.Pix[off : off+b.Dx()*4]
		for x := 0; x < len(row); x += 4 {
			sum += 0.299*float64(row[x]) + 0.587*float64(row[x+1]) + 0.114*float64(row[x+2])
		}
	}
	return sum / float64(n)
}
