package ocr

import (
	"errors"
)

// ErrOCRUnavailable is returned when the binary was built without cgo and
// therefore without Tesseract.
var ErrOCRUnavailable = errors.New("ocr not available: built without cgo")

// ErrEmptyImage is returned when DetectTextRegions gets no pixels.
var ErrEmptyImage = errors.New("ocr: empty image")

// Bounds represents a rectangular bounding box in pixel coordinates.
// (X1, Y1) is inclusive, (X2, Y2) exclusive.
type Bounds struct {
	X1 int `json:"x1"` // Left edge
	Y1 int `json:"y1"` // Top edge
	X2 int `json:"x2"` // Right edge
	Y2 int `json:"y2"` // Bottom edge
}

// TextRegionBox represents a detected text region's location without its content.
type TextRegionBox struct {
	// Bounds is the bounding box around the text region.
	Bounds Bounds `json:"bounds"`

	// Confidence is Tesseract's confidence score for this being a text region (0.0 to 1.0).
	Confidence float64 `json:"confidence"`
}

// DetectTextRegionsResult contains text region locations without the actual text content.
type DetectTextRegionsResult struct {
	// Regions is the list of detected text regions with bounding boxes.
	Regions []TextRegionBox `json:"regions"`

	// Count is the number of text regions detected.
	Count int `json:"count"`
}

// TextMask builds a width x height mask with every region set, each grown
// by padding pixels on all sides and clipped to the image.
func TextMask(regions []TextRegionBox, width, height, padding int) [][]bool {
	mask := make([][]bool, height)
	for y := range mask {
		mask[y] = make([]bool, width)
	}

	for _, r := range regions {
		x1, y1 := clamp(r.Bounds.X1-padding, 0, width), clamp(r.Bounds.Y1-padding, 0, height)
		x2, y2 := clamp(r.Bounds.X2+padding, 0, width), clamp(r.Bounds.Y2+padding, 0, height)
		for y := y1; y < y2; y++ {
			for x := x1; x < x2; x++ {
				mask[y][x] = true
			}
		}
	}
	return mask
}

// MergeMasks sets every pixel of dst that is set in src. Both masks must
// have the same dimensions; a nil dst returns src.
func MergeMasks(dst, src [][]bool) [][]bool {
	if dst == nil {
		return src
	}
	for y, row := range src {
		for x, v := range row {
			if v {
				dst[y][x] = true
			}
		}
	}
	return dst
}

func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
