package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	xdraw "golang.org/x/image/draw"
)

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return
// an empty slice; Tk treats empty photo data as a blank image.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// Letterbox scales src to fit within w x h preserving aspect ratio and
// centers it over an opaque black background of exactly w x h.
func Letterbox(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 255
	}
	if src == nil || w <= 0 || h <= 0 {
		return dst
	}

	sb := src.Bounds()
	sw, sh := sb.Dx(), sb.Dy()
	if sw == 0 || sh == 0 {
		return dst
	}

	// Fit on height when the target is wider than the source, else on width.
	var tw, th int
	if float64(w)/float64(h) > float64(sw)/float64(sh) {
		th = h
		tw = sw * h / sh
	} else {
		tw = w
		th = sh * w / sw
	}
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}
	x0 := (w - tw) / 2
	y0 := (h - th) / 2
	xdraw.BiLinear.Scale(dst, image.Rect(x0, y0, x0+tw, y0+th), src, sb, xdraw.Src, nil)
	return dst
}

// Solid returns a w x h frame filled with the given color; used as the
// surface placeholder before anything is published.
func Solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}
