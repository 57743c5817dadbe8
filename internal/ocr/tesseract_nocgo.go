//go:build !cgo

package ocr

import "image"

// DetectTextRegions always fails without cgo.
func DetectTextRegions(img image.Image, language string, minConfidence float64) (*DetectTextRegionsResult, error) {
	return nil, ErrOCRUnavailable
}

// Version reports that Tesseract is not linked.
func Version() string {
	return "unavailable"
}
