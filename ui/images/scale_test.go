package images

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"
)

func TestEncodePNG_RoundTrips(t *testing.T) {
	src := Solid(10, 6, color.RGBA{R: 20, G: 40, B: 60, A: 255})
	data := EncodePNG(src)
	if len(data) == 0 {
		t.Fatalf("expected PNG bytes")
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds().Dx() != 10 || decoded.Bounds().Dy() != 6 {
		t.Fatalf("unexpected decoded size %v", decoded.Bounds())
	}
}

func TestEncodePNG_NilYieldsEmpty(t *testing.T) {
	if data := EncodePNG(nil); data != nil {
		t.Fatalf("nil image should yield no bytes")
	}
}

func TestLetterbox_FitsOnHeight(t *testing.T) {
	// Wide 4:1 target, square source: source fits on height, centered in x.
	src := Solid(10, 10, color.RGBA{R: 255, A: 255})
	out := Letterbox(src, 40, 10)
	if out.Bounds().Dx() != 40 || out.Bounds().Dy() != 10 {
		t.Fatalf("output must match target size, got %v", out.Bounds())
	}
	// Center column holds the source, edges stay black.
	if px := out.RGBAAt(20, 5); px.R < 200 {
		t.Fatalf("expected source pixel at center, got %+v", px)
	}
	if px := out.RGBAAt(2, 5); px.R != 0 || px.A != 255 {
		t.Fatalf("expected opaque black bar on the left, got %+v", px)
	}
}

func TestLetterbox_FitsOnWidth(t *testing.T) {
	// Tall target, square source: fits on width, centered in y.
	src := Solid(10, 10, color.RGBA{G: 255, A: 255})
	out := Letterbox(src, 10, 40)
	if px := out.RGBAAt(5, 20); px.G < 200 {
		t.Fatalf("expected source pixel at center, got %+v", px)
	}
	if px := out.RGBAAt(5, 2); px.G != 0 || px.A != 255 {
		t.Fatalf("expected opaque black bar on top, got %+v", px)
	}
}

func TestLetterbox_NilSource(t *testing.T) {
	out := Letterbox(nil, 8, 8)
	if px := out.RGBAAt(4, 4); px.A != 255 || px.R != 0 {
		t.Fatalf("nil source should produce opaque black, got %+v", px)
	}
}
