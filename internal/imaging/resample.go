package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// NearestNeighbor resamples an image to width x height without
// interpolation, so every output pixel is a copy of some input pixel.
func NearestNeighbor(img image.Image, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", width, height)
	}
	return imaging.Resize(img, width, height, imaging.NearestNeighbor), nil
}

// Duplicate returns a deep copy of an image as NRGBA with bounds starting
// at (0, 0).
func Duplicate(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}
