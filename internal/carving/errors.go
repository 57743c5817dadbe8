package carving

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidInput is returned when the source image is smaller than
	// 2x2, or when the mask does not have the image's dimensions.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedResize is returned when the requested width change is
	// larger than half the source width.
	ErrUnsupportedResize = errors.New("unsupported resize")

	// ErrInconsistentSeams is returned when the seam log cannot be replayed
	// onto the insertion index lists. It indicates a bug, not bad input.
	ErrInconsistentSeams = errors.New("inconsistent seam log")
)
