package view

import (
	"image"
	"image/color"

	"github.com/visionlab/stimscreen/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// StimulusSurface is the full-size label the generated frames are painted on.
type StimulusSurface interface {
	PaintFrame(img image.Image)
}

type stimulusSurface struct {
	label     *LabelWidget
	prevPhoto *Img // last Tk photo instance, disposed before replacement
}

// NewStimulusSurface creates the surface at the configured display size and
// grids it as the dominant cell of the window.
func NewStimulusSurface(w, h int) StimulusSurface {
	placeholder := images.Solid(w, h, backgroundFill())
	photo := NewPhoto(Data(images.EncodePNG(placeholder)))
	label := Label(Image(photo), Borderwidth(0))
	Grid(label, Row(0), Column(0), Columnspan(3), Sticky("nwes"))
	return &stimulusSurface{label: label, prevPhoto: photo}
}

// PaintFrame replaces the surface content with the given frame. The previous
// Tk photo is deleted first so obsolete pixel buffers do not accumulate.
func (v *stimulusSurface) PaintFrame(img image.Image) {
	if v == nil || v.label == nil || img == nil {
		return
	}
	pngBytes := images.EncodePNG(img)
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(pngBytes))
	v.label.Configure(Image(v.prevPhoto))
}

// backgroundFill matches the generator background so the surface shows no
// seam before the first frame arrives.
func backgroundFill() color.RGBA { return color.RGBA{R: 100, G: 100, B: 100, A: 255} }
