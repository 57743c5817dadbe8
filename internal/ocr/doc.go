// Package ocr finds text in images with Tesseract so it can be protected
// while carving.
//
// Tesseract's block-level bounding boxes become a boolean mask that the
// carver uses in repel mode.
//
// # Prerequisites
//
// Tesseract and its language data must be installed, and the package must
// be built with cgo:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng libtesseract-dev
//   - macOS: brew install tesseract
//
// Without cgo DetectTextRegions returns ErrOCRUnavailable; the mask helpers
// still work.
package ocr
