package stimulus

import "math"

// polarTable caches per-pixel radius and angle relative to the display
// center. Built once at generator construction; read-only afterwards, so the
// ring and wedge generators can share one instance across goroutines.
type polarTable struct {
	w, h   int
	radius []float32
	angle  []float32 // degrees in [0, 360)
}

func newPolarTable(w, h int) *polarTable {
	t := &polarTable{
		w:      w,
		h:      h,
		radius: make([]float32, w*h),
		angle:  make([]float32, w*h),
	}
	cx := float64(w) / 2
	cy := float64(h) / 2
	for y := 0; y < h; y++ {
		dy := float64(y) - cy
		for x := 0; x < w; x++ {
			dx := float64(x) - cx
			i := y*w + x
			t.radius[i] = float32(math.Hypot(dx, dy))
			deg := math.Atan2(dy, dx) * 180 / math.Pi
			if deg < 0 {
				deg += 360
			}
			t.angle[i] = float32(deg)
		}
	}
	return t
}
