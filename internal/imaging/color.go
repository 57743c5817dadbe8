package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBWeights holds the per-channel weights used to turn a color into a
// single intensity value.
//
// The weights are relative: the intensity of a pixel is
//
//	(r*Red + g*Green + b*Blue) / (Red + Green + Blue)
//
// using truncating integer division over 8-bit channels, so the result is
// always in the range 0-255.
type RGBWeights struct {
	Red   int `json:"red"`
	Green int `json:"green"`
	Blue  int `json:"blue"`
}

// DefaultRGBWeights weights every channel equally.
var DefaultRGBWeights = RGBWeights{Red: 1, Green: 1, Blue: 1}

// Amount returns the sum of the weights, the intensity divisor.
func (w RGBWeights) Amount() int {
	return w.Red + w.Green + w.Blue
}

// Max returns the largest of the three weights.
func (w RGBWeights) Max() int {
	m := w.Red
	if w.Green > m {
		m = w.Green
	}
	if w.Blue > m {
		m = w.Blue
	}
	return m
}

// Validate reports whether the weights can be used as a divisor.
func (w RGBWeights) Validate() error {
	if w.Red < 0 || w.Green < 0 || w.Blue < 0 {
		return fmt.Errorf("rgb weights must be non-negative, got %d,%d,%d", w.Red, w.Green, w.Blue)
	}
	if w.Amount() == 0 {
		return fmt.Errorf("rgb weights must not all be zero")
	}
	return nil
}

// Intensity converts a color to its weighted intensity.
//
// The color is first converted to non-premultiplied 8-bit channels so that
// translucent pixels weigh their own color, not their color times alpha.
func (w RGBWeights) Intensity(c color.Color) int {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return w.weigh(n)
}

func (w RGBWeights) weigh(n color.NRGBA) int {
	return (int(n.R)*w.Red + int(n.G)*w.Green + int(n.B)*w.Blue) / w.Amount()
}

// ParseRGBWeights parses a comma separated triple such as "299,587,114".
func ParseRGBWeights(s string) (RGBWeights, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RGBWeights{}, fmt.Errorf("invalid rgb weights %q: want r,g,b", s)
	}

	var vals [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return RGBWeights{}, fmt.Errorf("invalid rgb weights %q: %w", s, err)
		}
		vals[i] = v
	}

	w := RGBWeights{Red: vals[0], Green: vals[1], Blue: vals[2]}
	if err := w.Validate(); err != nil {
		return RGBWeights{}, err
	}
	return w, nil
}

// Greyscale renders every pixel as its weighted intensity.
//
// Alpha is preserved. The same weighting is what the seam carver uses for
// its intensity grid, so this output shows exactly what the energy sees.
func Greyscale(img image.Image, w RGBWeights) (*image.NRGBA, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		g := uint8(w.weigh(c))
		return color.NRGBA{R: g, G: g, B: g, A: c.A}
	}), nil
}

// ChangeHue scales every channel by its weight relative to the largest
// weight. A weight equal to the maximum keeps the channel as is, a zero
// weight removes the channel entirely.
func ChangeHue(img image.Image, w RGBWeights) (*image.NRGBA, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	max := w.Max()
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{
			R: uint8(w.Red * int(c.R) / max),
			G: uint8(w.Green * int(c.G) / max),
			B: uint8(w.Blue * int(c.B) / max),
			A: c.A,
		}
	}), nil
}

// RotateHue shifts the hue of every pixel by the given number of degrees
// (-360 to 360).
func RotateHue(img image.Image, degrees int) (*image.RGBA, error) {
	if degrees < -360 || degrees > 360 {
		return nil, fmt.Errorf("hue rotation %d outside range -360..360", degrees)
	}
	return adjust.Hue(img, degrees), nil
}

// ParseHexColor parses "#RRGGBB" (or "RRGGBB") into an opaque color.
func ParseHexColor(hex string) (color.NRGBA, error) {
	if hex == "" {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] != '#' {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// HexString formats a color as "#RRGGBB", dropping alpha.
func HexString(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return strings.ToUpper(cf.Hex())
}
