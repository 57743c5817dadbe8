package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	img.Set(0, 0, color.White)
	img.Set(1, 0, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
	img.Set(2, 0, color.NRGBA{R: 127, G: 127, B: 127, A: 255})
	img.Set(3, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 0})
	img.Set(0, 1, color.Black)

	mask := MaskFromImage(img)
	require.Len(t, mask, 2)
	require.Len(t, mask[0], 4)
	assert.Equal(t, []bool{true, true, false, false}, mask[0])
	assert.Equal(t, []bool{false, false, false, false}, mask[1])
}

func TestMaskFromImage_OffsetBounds(t *testing.T) {
	img := image.NewGray(image.Rect(5, 5, 8, 7))
	img.SetGray(7, 6, color.Gray{Y: 255})

	mask := MaskFromImage(img)
	require.Len(t, mask, 2)
	assert.True(t, mask[1][2])
	assert.Equal(t, 1, CountMask(mask))
}

func TestMaskToImage_RoundTrip(t *testing.T) {
	mask := [][]bool{
		{true, false, false},
		{false, true, true},
	}

	img := MaskToImage(mask)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
	assert.Equal(t, uint8(255), img.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(0), img.GrayAt(1, 0).Y)

	assert.Equal(t, mask, MaskFromImage(img))
	assert.Equal(t, 3, CountMask(mask))
}

func TestMaskToImage_Empty(t *testing.T) {
	img := MaskToImage(nil)
	assert.True(t, img.Bounds().Empty())
}

func TestLoadMask(t *testing.T) {
	cache := NewImageCache()
	src := image.NewGray(image.Rect(0, 0, 4, 3))
	src.SetGray(2, 1, color.Gray{Y: 200})
	path := writePNG(t, "mask.png", src)

	mask, err := LoadMask(cache, path, 4, 3)
	require.NoError(t, err)
	assert.True(t, mask[1][2])
	assert.Equal(t, 1, CountMask(mask))

	_, err = LoadMask(cache, path, 5, 3)
	assert.Error(t, err)

	_, err = LoadMask(cache, "/nonexistent/mask.png", 4, 3)
	assert.Error(t, err)
}
