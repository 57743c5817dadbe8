package carving

import (
	"image"
	"image/color"

	"github.com/ironsheep/seam-carving-mcp/internal/imaging"
)

// EnergyMap renders the gradient energy (e1 + e2, without forward or mask
// terms) of every pixel, scaled so the highest energy is white.
//
// A nil intensity uses equal RGB weights.
func EnergyMap(img image.Image, intensity IntensityFunc) *image.Gray {
	if intensity == nil {
		intensity = imaging.DefaultRGBWeights.Intensity
	}

	src := imaging.Duplicate(img)
	b := src.Bounds()
	width, height := b.Dx(), b.Dy()
	it := imaging.ParallelIterator{}

	grey := make([][]int, height)
	for y := range grey {
		grey[y] = make([]int, width)
	}
	it.ForEach(width, height, func(y, x int) {
		grey[y][x] = intensity(src.NRGBAAt(x, y))
	})

	energy := make([][]int64, height)
	for y := range energy {
		energy[y] = make([]int64, width)
	}
	it.ForEach(width, height, func(y, x int) {
		var e int64
		switch {
		case x < width-1:
			e += absDiff(grey[y][x+1], grey[y][x])
		case x > 0:
			e += absDiff(grey[y][x-1], grey[y][x])
		}
		switch {
		case y < height-1:
			e += absDiff(grey[y+1][x], grey[y][x])
		case y > 0:
			e += absDiff(grey[y-1][x], grey[y][x])
		}
		energy[y][x] = e
	})

	var max int64
	for _, row := range energy {
		for _, e := range row {
			if e > max {
				max = e
			}
		}
	}

	out := image.NewGray(image.Rect(0, 0, width, height))
	if max == 0 {
		return out
	}
	it.ForEach(width, height, func(y, x int) {
		out.SetGray(x, y, color.Gray{Y: uint8(energy[y][x] * 255 / max)})
	})
	return out
}
