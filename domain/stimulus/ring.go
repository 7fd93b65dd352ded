package stimulus

import (
	"image"
	"math"

	"github.com/visionlab/stimscreen/config"
)

// Ring renders the eccentricity-mapping stimulus: a flickering checkerboard
// annulus whose center radius sweeps MinRadius..MaxRadius once per Duration
// seconds, then wraps.
type Ring struct {
	w, h     int
	minR     float64
	maxR     float64
	width    float64
	duration float64

	sectors   int
	bands     int
	flickRate float64

	table *polarTable
	fix   *fixationSchedule
	cache *frameCache
	debug bool
}

// NewRing builds the generator, precomputing the polar lookup table and the
// fixation schedule. The config must already be validated.
func NewRing(cfg *config.Config, debug bool) (*Ring, error) {
	fix, err := newFixationSchedule(cfg.FocusPoint)
	if err != nil {
		return nil, err
	}
	g := &Ring{
		w:         cfg.Display.Width,
		h:         cfg.Display.Height,
		minR:      cfg.Eccentricity.MinRadius,
		maxR:      cfg.Eccentricity.MaxRadius,
		width:     cfg.Eccentricity.Width,
		duration:  cfg.Eccentricity.Duration,
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

// centerRadius returns the sweeping ring center radius at elapsed time t.
func (g *Ring) centerRadius(t float64) float64 {
	return g.minR + (math.Mod(t, g.duration)/g.duration)*(g.maxR-g.minR)
}

// Generate renders the frame for elapsed time t.
func (g *Ring) Generate(t float64) (*image.RGBA, error) {
	base, cached := g.cache.lookup(t)
	if !cached {
		base = g.renderBase(t)
		g.cache.store(t, base)
	}
	return g.finish(base, cached, t), nil
}

func (g *Ring) renderBase(t float64) *image.RGBA {
	img := newBackground(g.w, g.h)
	v := flickerValue(g.flickRate, t)
	u := 255 - v

	rc := g.centerRadius(t)
	rMin := rc - g.width/2
	rMax := rc + g.width/2
	arcLen := 360 / float64(g.sectors)
	bandW := (g.maxR - g.minR) / float64(g.bands)

	for i, r64 := range g.table.radius {
		r := float64(r64)
		// The band is clipped to the texture annulus: at the sweep ends the
		// ring's inner half dips below MinRadius and must not paint there.
		if r < rMin || r > rMax || r < g.minR {
			continue
		}
		band := int(math.Floor((r - g.minR) / bandW))
		sector := int(math.Floor(float64(g.table.angle[i]) / arcLen))
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
		cx, cy := float64(g.w)/2, float64(g.h)/2
		strokeCircle(img, cx, cy, rc, debugColor)
		if rMin > 0 {
			strokeCircle(img, cx, cy, rMin, debugColor)
		}
		strokeCircle(img, cx, cy, rMax, debugColor)
	}
	return img
}

// finish overlays the fixation dot. Cached base frames are cloned first so
// the cache never holds a frame with a stale dot color painted in.
func (g *Ring) finish(base *image.RGBA, shared bool, t float64) *image.RGBA {
	if g.fix == nil {
		return base
	}
	out := base
	if shared || g.cache != nil {
		out = cloneFrame(base)
	}
	g.fix.draw(out, t)
	return out
}
