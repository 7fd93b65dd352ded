package stimulus

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/visionlab/stimscreen/config"
)

// alphaBeta is the steepness of the logistic fade at trial edges.
const alphaBeta = 50.0

// Sequence renders the image-sequence stimulus. Each trial lasts
// paddingBefore + duration + paddingAfter seconds:
//
//	0 -> t1 --------> t2 -> trialLength
//	____/++++++++++++\____
//
// The image for trial k is Images[k mod N]; alpha follows a logistic rise at
// t1 and fall at t2.
type Sequence struct {
	w, h  int
	imgs  []*image.RGBA
	trial float64
	t1    float64
	t2    float64

	fix   *fixationSchedule
	debug bool
}

// NewSequence builds the generator over an already-loaded image set.
func NewSequence(cfg *config.Config, set *ImageSet, debug bool) (*Sequence, error) {
	if set == nil || len(set.Images) == 0 {
		return nil, fmt.Errorf("img_sequence: empty image set")
	}
	fix, err := newFixationSchedule(cfg.FocusPoint)
	if err != nil {
		return nil, err
	}
	cis := cfg.Sequence
	return &Sequence{
		w:     cfg.Display.Width,
		h:     cfg.Display.Height,
		imgs:  set.Images,
		trial: cis.PaddingBefore + cis.Duration + cis.PaddingAfter,
		t1:    cis.PaddingBefore,
		t2:    cis.PaddingBefore + cis.Duration,
		fix:   fix,
		debug: debug,
	}, nil
}

// TrialLength returns the duration of one repeating trial in seconds.
func (g *Sequence) TrialLength() float64 { return g.trial }

// index returns which image is active at elapsed time t.
func (g *Sequence) index(t float64) int {
	return int(t/g.trial) % len(g.imgs)
}

func logistic(x float64) float64 {
	// Clamp to keep exp finite; the curve saturates well before this.
	if x > 40 {
		return 1
	}
	if x < -40 {
		return 0
	}
	e := math.Exp(x)
	return e / (1 + e)
}

// alphaAt returns the image opacity at elapsed time t. The rise edge floors
// and the fall edge ceils, so the two midpoints land on 127 and 128.
func (g *Sequence) alphaAt(t float64) uint8 {
	t = math.Mod(t, g.trial)
	if math.Abs(t-g.t1) < math.Abs(t-g.t2) {
		a := logistic((t - g.t1) * alphaBeta)
		return uint8(math.Floor(a * 255))
	}
	a := 1 - logistic((t-g.t2)*alphaBeta)
	return uint8(math.Ceil(a * 255))
}

// Generate renders the frame for elapsed time t.
func (g *Sequence) Generate(t float64) (*image.RGBA, error) {
	if t < 0 {
		return nil, fmt.Errorf("img_sequence: negative elapsed time %v", t)
	}
	out := newBackground(g.w, g.h)
	img := g.imgs[g.index(t)]
	alpha := g.alphaAt(t)
	if alpha > 0 {
		mask := image.NewUniform(color.Alpha{A: alpha})
		draw.DrawMask(out, out.Rect, img, image.Point{}, mask, image.Point{}, draw.Over)
	}

	if g.debug {
		g.drawProgress(out, t)
	}
	if g.fix != nil {
		g.fix.draw(out, t)
	}
	return out, nil
}

// drawProgress paints the trial progress bar along the top edge: an outline
// for elapsed trial time, filled while the image is on.
func (g *Sequence) drawProgress(img *image.RGBA, t float64) {
	tt := math.Mod(t, g.trial)
	limit := int(float64(g.w) * tt / g.trial)
	for x := 0; x < limit; x++ {
		img.SetRGBA(x, 0, debugColor)
		img.SetRGBA(x, 10, debugColor)
	}
	if tt > g.t1 {
		x0 := int(float64(g.w) * g.t1 / g.trial)
		x1 := int(float64(g.w) * math.Min(tt, g.t2) / g.trial)
		for x := x0; x < x1; x++ {
			for y := 0; y <= 10; y++ {
				img.SetRGBA(x, y, debugColor)
			}
		}
	}
}
