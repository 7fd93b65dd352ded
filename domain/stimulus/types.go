package stimulus

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// backgroundLevel is the flat gray the stimuli are drawn over; RGBA all 100,
// so a translucent window shows the scene behind at ~60% opacity.
const backgroundLevel = 100

// Kind selects which generator variant a session runs.
type Kind string

const (
	KindRing     Kind = "ring"
	KindWedge    Kind = "wedge"
	KindSequence Kind = "sequence"
)

// ParseKind maps the -stim flag value to a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindRing, KindWedge, KindSequence:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown stimulus kind %q", s)
	}
}

func newBackground(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = backgroundLevel
	}
	return img
}

func cloneFrame(src *image.RGBA) *image.RGBA {
	dst := &image.RGBA{
		Pix:    make([]uint8, len(src.Pix)),
		Stride: src.Stride,
		Rect:   src.Rect,
	}
	copy(dst.Pix, src.Pix)
	return dst
}

// flickerValue returns the checkerboard luminance for elapsed time t: a sine
// at rate Hz mapped onto 0..255. The counter-color is 255-v.
func flickerValue(rate, t float64) uint8 {
	return uint8((math.Sin(rate*t*2*math.Pi) + 1) * 0.5 * 255)
}

// parseHexColor parses "#rrggbb" into an opaque RGBA.
func parseHexColor(s string) (color.RGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// fillCircle draws a filled disc; used for the fixation dot.
func fillCircle(img *image.RGBA, cx, cy float64, radius int, c color.RGBA) {
	r2 := float64(radius) * float64(radius)
	b := img.Rect
	x0, x1 := int(cx)-radius-1, int(cx)+radius+1
	y0, y1 := int(cy)-radius-1, int(cy)+radius+1
	for y := max(y0, b.Min.Y); y <= min(y1, b.Max.Y-1); y++ {
		for x := max(x0, b.Min.X); x <= min(x1, b.Max.X-1); x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			if dx*dx+dy*dy <= r2 {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

// strokeCircle draws a 2px circle outline; debug overlays only.
func strokeCircle(img *image.RGBA, cx, cy, radius float64, c color.RGBA) {
	if radius <= 0 {
		return
	}
	steps := int(2 * math.Pi * radius)
	if steps < 16 {
		steps = 16
	}
	b := img.Rect
	for i := 0; i < steps; i++ {
		a := float64(i) / float64(steps) * 2 * math.Pi
		x := int(cx + radius*math.Cos(a))
		y := int(cy + radius*math.Sin(a))
		for dy := 0; dy < 2; dy++ {
			for dx := 0; dx < 2; dx++ {
				if image.Pt(x+dx, y+dy).In(b) {
					img.SetRGBA(x+dx, y+dy, c)
				}
			}
		}
	}
}

// strokeRay draws a 2px radial line from r0 to r1 at angle deg, using the
// same screen convention as the polar table (y grows downward, so positive
// angles run clockwise on screen). Debug overlays only.
func strokeRay(img *image.RGBA, cx, cy, deg, r0, r1 float64, c color.RGBA) {
	if r1 <= r0 {
		return
	}
	rad := deg * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	b := img.Rect
	steps := int(r1 - r0)
	if steps < 16 {
		steps = 16
	}
	for i := 0; i <= steps; i++ {
		r := r0 + (r1-r0)*float64(i)/float64(steps)
		x := int(cx + r*cos)
		y := int(cy + r*sin)
		for dy := 0; dy < 2; dy++ {
			for dx := 0; dx < 2; dx++ {
				if image.Pt(x+dx, y+dy).In(b) {
					img.SetRGBA(x+dx, y+dy, c)
				}
			}
		}
	}
}

var debugColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
