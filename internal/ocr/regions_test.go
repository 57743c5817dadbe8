package ocr

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

func countSet(mask [][]bool) int {
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

func TestTextMask(t *testing.T) {
	regions := []TextRegionBox{
		{Bounds: Bounds{X1: 2, Y1: 1, X2: 5, Y2: 3}},
	}

	mask := TextMask(regions, 10, 6, 0)
	require.Len(t, mask, 6)
	require.Len(t, mask[0], 10)
	assert.Equal(t, 6, countSet(mask))
	assert.True(t, mask[1][2])
	assert.True(t, mask[2][4])
	assert.False(t, mask[3][4], "Y2 is exclusive")
	assert.False(t, mask[1][5], "X2 is exclusive")
}

func TestTextMask_PaddingClipped(t *testing.T) {
	regions := []TextRegionBox{
		{Bounds: Bounds{X1: 0, Y1: 0, X2: 2, Y2: 2}},
		{Bounds: Bounds{X1: 7, Y1: 4, X2: 12, Y2: 9}},
	}

	mask := TextMask(regions, 8, 6, 1)
	// First box grows to 0..3 x 0..3, second to 6..8 x 3..6.
	assert.Equal(t, 9+6, countSet(mask))
	assert.True(t, mask[5][7])
	assert.False(t, mask[0][4])
}

func TestMergeMasks(t *testing.T) {
	a := TextMask([]TextRegionBox{{Bounds: Bounds{0, 0, 1, 1}}}, 3, 3, 0)
	b := TextMask([]TextRegionBox{{Bounds: Bounds{2, 2, 3, 3}}}, 3, 3, 0)

	merged := MergeMasks(a, b)
	assert.Equal(t, 2, countSet(merged))
	assert.True(t, merged[0][0])
	assert.True(t, merged[2][2])

	assert.Equal(t, b, MergeMasks(nil, b))
}

// textImage renders black text on white, scaled up for Tesseract.
func textImage(text string, scale int) *image.RGBA {

	small := image.NewRGBA(image.Rect(0, 0, len(text)*7+40, 40))
	draw.Draw(small, small.Bounds(), image.White, image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(20), Y: fixed.I(25)},
	}
	d.DrawString(text)

	b := small.Bounds()
	big := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	for y := 0; y < big.Bounds().Dy(); y++ {
		for x := 0; x < big.Bounds().Dx(); x++ {
			big.Set(x, y, small.At(x/scale, y/scale))
		}
	}

	return big
}

func TestDetectTextRegions(t *testing.T) {
	img := textImage("SEAM CARVING", 4)

	res, err := DetectTextRegions(img, "eng", 0)
	if errors.Is(err, ErrOCRUnavailable) {
		t.Skip("built without cgo")
	}
	if err != nil {
		t.Skipf("tesseract not usable here: %v", err)
	}

	assert.Equal(t, len(res.Regions), res.Count)
	for _, r := range res.Regions {
		assert.True(t, r.Bounds.X1 < r.Bounds.X2 && r.Bounds.Y1 < r.Bounds.Y2, "degenerate box %+v", r.Bounds)
		assert.True(t, r.Confidence >= 0 && r.Confidence <= 1)
	}
}

func TestDetectTextRegions_EmptyImage(t *testing.T) {
	_, err := DetectTextRegions(nil, "eng", 0.5)
	if errors.Is(err, ErrOCRUnavailable) {
		t.Skip("built without cgo")
	}
	assert.ErrorIs(t, err, ErrEmptyImage)

	_, err = DetectTextRegions(image.NewRGBA(image.Rect(0, 0, 0, 0)), "eng", 0.5)
	assert.ErrorIs(t, err, ErrEmptyImage)
}
