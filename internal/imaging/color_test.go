package imaging

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGBWeights_Intensity(t *testing.T) {
	tests := []struct {
		name string
		w    RGBWeights
		c    color.Color
		want int
	}{
		{"equal weights", DefaultRGBWeights, color.NRGBA{R: 30, G: 60, B: 91, A: 255}, 60},
		{"truncates", DefaultRGBWeights, color.NRGBA{R: 1, G: 1, B: 0, A: 255}, 0},
		{"red only", RGBWeights{Red: 1}, color.NRGBA{R: 200, G: 10, B: 10, A: 255}, 200},
		{"luma", RGBWeights{Red: 299, Green: 587, Blue: 114}, color.White, 255},
		{"ignores alpha", DefaultRGBWeights, color.NRGBA{R: 90, G: 90, B: 90, A: 10}, 90},
		{"grey input", DefaultRGBWeights, color.Gray{Y: 77}, 77},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.w.Intensity(tt.c))
		})
	}
}

func TestRGBWeights_Validate(t *testing.T) {
	assert.NoError(t, DefaultRGBWeights.Validate())
	assert.NoError(t, RGBWeights{Blue: 3}.Validate())
	assert.Error(t, RGBWeights{}.Validate())
	assert.Error(t, RGBWeights{Red: 2, Green: -1, Blue: 1}.Validate())

	assert.Equal(t, 6, RGBWeights{Red: 1, Green: 2, Blue: 3}.Amount())
	assert.Equal(t, 5, RGBWeights{Red: 5, Green: 2, Blue: 3}.Max())
}

func TestParseRGBWeights(t *testing.T) {
	w, err := ParseRGBWeights(" 299,587 , 114")
	require.NoError(t, err)
	assert.Equal(t, RGBWeights{Red: 299, Green: 587, Blue: 114}, w)

	for _, bad := range []string{"", "1,2", "1,2,3,4", "a,b,c", "0,0,0", "-1,2,3"} {
		_, err := ParseRGBWeights(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestGreyscale(t *testing.T) {
	img := solidImage(3, 2, color.NRGBA{R: 30, G: 60, B: 90, A: 128})

	out, err := Greyscale(img, DefaultRGBWeights)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 60, G: 60, B: 60, A: 128}, out.NRGBAAt(2, 1))

	_, err = Greyscale(img, RGBWeights{})
	assert.Error(t, err)
}

func TestChangeHue(t *testing.T) {
	img := solidImage(2, 2, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	out, err := ChangeHue(img, RGBWeights{Red: 2, Green: 1, Blue: 0})
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 200, G: 50, B: 0, A: 255}, out.NRGBAAt(1, 1))
}

func TestRotateHue(t *testing.T) {
	img := solidImage(2, 2, color.NRGBA{R: 255, A: 255})

	same, err := RotateHue(img, 360)
	require.NoError(t, err)
	r, g, b, _ := same.At(0, 0).RGBA()
	assert.InDelta(t, 255, int(r>>8), 1)
	assert.InDelta(t, 0, int(g>>8), 1)
	assert.InDelta(t, 0, int(b>>8), 1)

	green, err := RotateHue(img, 120)
	require.NoError(t, err)
	_, g, _, _ = green.At(1, 1).RGBA()
	assert.InDelta(t, 255, int(g>>8), 2)

	_, err = RotateHue(img, -361)
	assert.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#FF8000")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 255, G: 128, B: 0, A: 255}, c)

	c, err = ParseHexColor("00ff00")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{G: 255, A: 255}, c)

	for _, bad := range []string{"", "#12", "#GGGGGG"} {
		_, err := ParseHexColor(bad)
		assert.Error(t, err, "input %q", bad)
	}

	assert.Equal(t, "#FF8000", HexString(color.NRGBA{R: 255, G: 128, A: 255}))
}
