package stimulus

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"sort"

	"github.com/visionlab/stimscreen/config"
)

// fixationHorizon is how far ahead the color schedule is precomputed. Runs
// longer than this wrap around, which keeps Generate deterministic forever.
const fixationHorizon = 2 * 60 * 60.0 // seconds

// fixationSchedule draws the central fixation dot. The color changes at
// random intervals in [tMin, tMax], but the whole schedule is derived from the
// config seed at construction so that the frame for a given t never depends on
// call order. The seed is what makes a run reproducible from its log.
type fixationSchedule struct {
	radius  int
	colors  []color.RGBA
	changes []float64 // ascending change times
	picks   []int     // color index active from changes[i] on
}

func newFixationSchedule(cfg config.FocusPoint) (*fixationSchedule, error) {
	if !cfg.Toggled {
		return nil, nil
	}
	colors := make([]color.RGBA, 0, len(cfg.Colors))
	for _, s := range cfg.Colors {
		c, err := parseHexColor(s)
		if err != nil {
			return nil, fmt.Errorf("focus_point: %w", err)
		}
		colors = append(colors, c)
	}
	if len(colors) < 2 {
		return nil, fmt.Errorf("focus_point: need at least two colors")
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	f := &fixationSchedule{radius: cfg.Radius, colors: colors}
	cur := 0
	for t := 0.0; t < fixationHorizon; {
		f.changes = append(f.changes, t)
		f.picks = append(f.picks, cur)
		t += cfg.TMin + rng.Float64()*(cfg.TMax-cfg.TMin)
		// Pick any other color so consecutive dots always differ.
		next := rng.Intn(len(colors) - 1)
		if next >= cur {
			next++
		}
		cur = next
	}
	return f, nil
}

// colorAt returns the dot color for elapsed time t.
func (f *fixationSchedule) colorAt(t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	for t >= fixationHorizon {
		t -= fixationHorizon
	}
	i := sort.SearchFloat64s(f.changes, t)
	// SearchFloat64s returns the first index with changes[i] >= t; the active
	// segment is the one before it unless t is exactly a change point.
	if i == len(f.changes) || f.changes[i] > t {
		i--
	}
	if i < 0 {
		i = 0
	}
	return f.colors[f.picks[i]]
}

// draw paints the dot at the display center.
func (f *fixationSchedule) draw(img *image.RGBA, t float64) {
	b := img.Rect
	cx := float64(b.Dx()) / 2
	cy := float64(b.Dy()) / 2
	fillCircle(img, cx, cy, f.radius, f.colorAt(t))
}
