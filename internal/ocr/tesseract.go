//go:build cgo

package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/otiai10/gosseract/v2"
)

// DetectTextRegions finds text blocks in an already decoded image.
//
// Tesseract receives the pixels of img, not the file it came from, so the
// boxes are in the same frame as img even when loading applied an EXIF
// rotation.
//
// Parameters:
//   - img: The image to search.
//   - language: Tesseract language code (e.g., "eng"). Empty means "eng".
//   - minConfidence: Minimum confidence (0.0 to 1.0) for including a region.
//
// Regions are taken at Tesseract's RIL_BLOCK level, so one box covers a
// whole paragraph including the gaps between its words and lines.
func DetectTextRegions(img image.Image, language string, minConfidence float64) (*DetectTextRegionsResult, error) {
	data, err := encodeForTesseract(img)
	if err != nil {
		return nil, err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if language == "" {
		language = "eng"
	}
	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImageFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_BLOCK)
	if err != nil {
		return nil, fmt.Errorf("failed to get text regions: %w", err)
	}

	regions := make([]TextRegionBox, 0, len(boxes))
	for _, box := range boxes {
		confidence := float64(box.Confidence) / 100.0
		if confidence < minConfidence {
			continue
		}
		regions = append(regions, TextRegionBox{
			Bounds: Bounds{
				X1: box.Box.Min.X,
				Y1: box.Box.Min.Y,
				X2: box.Box.Max.X,
				Y2: box.Box.Max.Y,
			},
			Confidence: confidence,
		})
	}

	return &DetectTextRegionsResult{
		Regions: regions,
		Count:   len(regions),
	}, nil
}

func encodeForTesseract(img image.Image) ([]byte, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image for ocr: %w", err)
	}
	return buf.Bytes(), nil
}

// Version returns the linked Tesseract version.
func Version() string {
	return gosseract.Version()
}
