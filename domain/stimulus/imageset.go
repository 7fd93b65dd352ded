package stimulus

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".gif":  true,
}

// ImageSet holds the trial images for a sequence run, decoded and resized to
// the display size once at setup. Frames reference these read-only.
type ImageSet struct {
	Images []*image.RGBA
	Names  []string
}

// LoadImageSet reads every supported image under dir (sorted by filename) and
// resizes each to w x h. An empty directory is a configuration error; the
// sequence stimulus has nothing to show.
func LoadImageSet(dir string, w, h int) (*ImageSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("img_sequence: read directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	if len(names) == 0 {
		return nil, fmt.Errorf("img_sequence: no images in %s", dir)
	}

	set := &ImageSet{Names: names}
	for _, name := range names {
		src, err := imaging.Open(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("img_sequence: open %s: %w", name, err)
		}
		resized := imaging.Resize(src, w, h, imaging.Lanczos)
		rgba := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(rgba, rgba.Rect, resized, image.Point{}, draw.Src)
		set.Images = append(set.Images, rgba)
	}
	return set, nil
}
