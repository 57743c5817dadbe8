package imaging

import (
	"fmt"
	"image"
	"image/color"
)

// maskThreshold is the luminance (0-255) at or above which a mask image
// pixel counts as set.
const maskThreshold = 128

// MaskFromImage converts a mask image into a boolean grid indexed [y][x].
//
// A pixel is set when its luminance is at least 128, so white-on-black
// mask images mark the white area. Fully transparent pixels are never set.
func MaskFromImage(img image.Image) [][]bool {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	mask := make([][]bool, height)
	for y := range mask {
		mask[y] = make([]bool, width)
	}

	ParallelIterator{}.ForEach(width, height, func(y, x int) {
		c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
		if _, _, _, a := c.RGBA(); a == 0 {
			return
		}
		g := color.GrayModel.Convert(c).(color.Gray)
		mask[y][x] = g.Y >= maskThreshold
	})

	return mask
}

// MaskToImage renders a boolean grid as a black and white image, set
// pixels white. The grid must be rectangular.
func MaskToImage(mask [][]bool) *image.Gray {
	height := len(mask)
	width := 0
	if height > 0 {
		width = len(mask[0])
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	ParallelIterator{}.ForEach(width, height, func(y, x int) {
		if mask[y][x] {
			img.Pix[y*img.Stride+x] = 255
		}
	})
	return img
}

// LoadMask loads a mask image through the cache and checks it matches the
// expected dimensions.
func LoadMask(cache *ImageCache, path string, width, height int) ([][]bool, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load mask: %w", err)
	}
	b := img.Bounds()
	if b.Dx() != width || b.Dy() != height {
		return nil, fmt.Errorf("mask is %dx%d, image is %dx%d", b.Dx(), b.Dy(), width, height)
	}
	return MaskFromImage(img), nil
}

// CountMask returns the number of set pixels in a mask.
func CountMask(mask [][]bool) int {
	n := 0
	for _, row := range mask {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}
