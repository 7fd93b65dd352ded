package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"
)

// PromptPNG contains the raw PNG bytes of the start prompt shown on the
// stimulus surface while waiting for the start key.
//
//go:embed prompt.png
var PromptPNG []byte

// PromptImage decodes the embedded PNG into an image.Image.
func PromptImage() (image.Image, error) {
	if len(PromptPNG) == 0 {
		return nil, fmt.Errorf("embedded prompt.png is empty")
	}
	img, err := png.Decode(bytes.NewReader(PromptPNG))
	if err != nil {
		return nil, err
	}
	return img, nil
}
