package stimulus

import (
	"image"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheBucketsPerSecond is the phase quantization of the frame cache. Within
// one bucket (~8ms, around a 120Hz display interval) all times serve the same
// cached frame, trading exact flicker phase for not re-rendering identical
// cycles.
const cacheBucketsPerSecond = 120

// frameCache memoizes base checkerboard frames for stimuli that are periodic
// in t. It only exists when the flicker completes a whole number of cycles
// per sweep, otherwise consecutive sweeps differ and caching would replay the
// wrong phase.
type frameCache struct {
	period  float64
	quantum float64
	frames  *lru.Cache[int64, *image.RGBA]
}

// newFrameCache returns nil when the stimulus is not cacheable: the sweep
// duration and flicker rate must line up (duration * rate integral).
func newFrameCache(duration, flickRate float64) *frameCache {
	if duration <= 0 {
		return nil
	}
	cycles := duration * flickRate
	if math.Abs(cycles-math.Round(cycles)) > 1e-9 {
		return nil
	}
	size := int(duration*cacheBucketsPerSecond) + 1
	cache, err := lru.New[int64, *image.RGBA](size)
	if err != nil {
		return nil
	}
	return &frameCache{
		period:  duration,
		quantum: 1.0 / cacheBucketsPerSecond,
		frames:  cache,
	}
}

func (c *frameCache) key(t float64) int64 {
	phase := math.Mod(t, c.period)
	if phase < 0 {
		phase += c.period
	}
	return int64(phase / c.quantum)
}

func (c *frameCache) lookup(t float64) (*image.RGBA, bool) {
	if c == nil {
		return nil, false
	}
	return c.frames.Get(c.key(t))
}

func (c *frameCache) store(t float64, frame *image.RGBA) {
	if c == nil {
		return
	}
	c.frames.Add(c.key(t), frame)
}
