package carving

import (
	"image/color"
	"io"
	"log"

	"github.com/pkg/errors"

	"github.com/ironsheep/seam-carving-mcp/internal/imaging"
)

// PixelIterator is the pixel-grid iteration capability used by the carver.
//
// ForEach must call fn exactly once for every (y, x) in the grid and
// ForEachLine exactly once for every index in [0, n). Both may run calls
// concurrently and in any order, and must return only after all calls have
// completed.
type PixelIterator interface {
	ForEach(width, height int, fn func(y, x int))
	ForEachLine(n int, fn func(i int))
}

// IntensityFunc converts a color to the scalar intensity used by the
// energy function. It must be deterministic.
type IntensityFunc func(c color.Color) int

// Logger receives progress messages.
type Logger interface {
	Printf(format string, v ...interface{})
}

// MaskMode selects how masked pixels are weighted.
type MaskMode int

const (
	// MaskAttract gives masked pixels the lowest possible energy so seams
	// pass through them first.
	MaskAttract MaskMode = iota

	// MaskRepel gives masked pixels a very high energy so seams only pass
	// through them when no unmasked path exists.
	MaskRepel
)

// String returns "attract" or "repel".
func (m MaskMode) String() string {
	switch m {
	case MaskAttract:
		return "attract"
	case MaskRepel:
		return "repel"
	}
	return "unknown"
}

// ParseMaskMode parses "attract" or "repel". The empty string selects
// MaskAttract.
func ParseMaskMode(s string) (MaskMode, bool) {
	switch s {
	case "", "attract":
		return MaskAttract, true
	case "repel":
		return MaskRepel, true
	}
	return MaskAttract, false
}

// Option configures a SeamsCarver.
type Option func(*SeamsCarver)

// WithIterator sets the pixel iterator. The default is
// imaging.ParallelIterator.
func WithIterator(it PixelIterator) Option {
	return func(c *SeamsCarver) {
		c.iter = it
	}
}

// WithIntensity sets the color to intensity conversion. The default weighs
// red, green and blue equally.
func WithIntensity(fn IntensityFunc) Option {
	return func(c *SeamsCarver) {
		c.intensity = fn
	}
}

// WithWeights is shorthand for WithIntensity(w.Intensity). Invalid weights
// make New fail with ErrInvalidInput.
func WithWeights(w imaging.RGBWeights) Option {
	return func(c *SeamsCarver) {
		if err := w.Validate(); err != nil {
			c.optErr = errors.Wrap(ErrInvalidInput, err.Error())
			return
		}
		c.intensity = w.Intensity
	}
}

// WithLogger sets the progress logger. By default nothing is logged.
func WithLogger(l Logger) Option {
	return func(c *SeamsCarver) {
		c.logger = l
	}
}

// WithMaskMode sets how masked pixels are weighted.
func WithMaskMode(m MaskMode) Option {
	return func(c *SeamsCarver) {
		c.maskMode = m
	}
}

func defaultLogger() Logger {
	return log.New(io.Discard, "", 0)
}
