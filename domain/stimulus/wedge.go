package stimulus

import (
	"image"
	"math"

	"github.com/visionlab/stimscreen/config"
)

// Wedge renders the polar-angle-mapping stimulus: a flickering checkerboard
// wedge whose center angle rotates through 360 degrees once per Duration
// seconds.
type Wedge struct {
	w, h     int
	minR     float64
	maxR     float64
	width    float64 // angular width, degrees
	duration float64

	sectors   int
	bands     int
	flickRate float64

	table *polarTable
	fix   *fixationSchedule
	cache *frameCache
	debug bool
}

// NewWedge builds the generator. The config must already be validated.
func NewWedge(cfg *config.Config, debug bool) (*Wedge, error) {
	fix, err := newFixationSchedule(cfg.FocusPoint)
	if err != nil {
		return nil, err
	}
	g := &Wedge{
		w:         cfg.Display.Width,
		h:         cfg.Display.Height,
		minR:      cfg.PolarAngle.MinRadius,
		maxR:      cfg.PolarAngle.MaxRadius,
		width:     cfg.PolarAngle.Width,
		duration:  cfg.PolarAngle.Duration,
		sectors:   cfg.Checkerboard.NumInLongitude,
		bands:     cfg.Checkerboard.NumInLatitude,
		flickRate: cfg.Checkerboard.FlickingRate,
		table:     newPolarTable(cfg.Display.Width, cfg.Display.Height),
		fix:       fix,
		debug:     debug,
	}
	if cfg.Render.CacheFrames {
		g.cache = newFrameCache(g.duration, g.flickRate)
	}
	return g, nil
}

// centerAngle returns the wedge center angle in degrees at elapsed time t.
func (g *Wedge) centerAngle(t float64) float64 {
	return math.Mod(t, g.duration) / g.duration * 360
}

// inWedge reports whether angle deg lies within the wedge around center,
// handling the wrap at 0/360.
func inWedge(deg, center, width float64) bool {
	d := math.Mod(deg-center+540, 360) - 180
	return math.Abs(d) <= width/2
}

// Generate renders the frame for elapsed time t.
func (g *Wedge) Generate(t float64) (*image.RGBA, error) {
	base, cached := g.cache.lookup(t)
	if !cached {
		base = g.renderBase(t)
		g.cache.store(t, base)
	}
	out := base
	if g.fix != nil {
		if cached || g.cache != nil {
			out = cloneFrame(base)
		}
		g.fix.draw(out, t)
	}
	return out, nil
}

func (g *Wedge) renderBase(t float64) *image.RGBA {
	img := newBackground(g.w, g.h)
	v := flickerValue(g.flickRate, t)
	u := 255 - v

	ac := g.centerAngle(t)
	arcLen := 360 / float64(g.sectors)
	bandW := (g.maxR - g.minR) / float64(g.bands)

	for i, r64 := range g.table.radius {
		r := float64(r64)
		if r < g.minR || r > g.maxR {
			continue
		}
		deg := float64(g.table.angle[i])
		if !inWedge(deg, ac, g.width) {
			continue
		}
		band := int(math.Floor((r - g.minR) / bandW))
		sector := int(math.Floor(deg / arcLen))
		c := u
		if ((sector%2)+2)%2 == ((band%2)+2)%2 {
			c = v
		}
		p := i * 4
		img.Pix[p+0] = c
		img.Pix[p+1] = c
		img.Pix[p+2] = c
		img.Pix[p+3] = 255
	}

	if g.debug {
		// Outline the wedge itself so the overlay tracks the rotation: the two
		// angular edges plus the inner and outer arcs.
		cx, cy := float64(g.w)/2, float64(g.h)/2
		strokeRay(img, cx, cy, ac-g.width/2, g.minR, g.maxR, debugColor)
		strokeRay(img, cx, cy, ac+g.width/2, g.minR, g.maxR, debugColor)
		strokeCircle(img, cx, cy, g.minR, debugColor)
		strokeCircle(img, cx, cy, g.maxR, debugColor)
	}
	return img
}
