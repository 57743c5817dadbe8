package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// EncodedImage is an image returned inline as a base64 PNG.
type EncodedImage struct {
	// Width of the encoded image in pixels.
	Width int `json:"width"`

	// Height of the encoded image in pixels.
	Height int `json:"height"`

	// ImageBase64 holds the PNG bytes, base64 (standard encoding).
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`

	// Preview is true when the image was downscaled for transport and the
	// full-size result was only written to disk (if at all).
	Preview bool `json:"preview,omitempty"`
}

// EncodePNG encodes an image as a base64 PNG at full size.
func EncodePNG(img image.Image) (*EncodedImage, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	b := img.Bounds()
	return &EncodedImage{
		Width:       b.Dx(),
		Height:      b.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// EncodePreview encodes an image as a base64 PNG, first shrinking it so
// neither edge exceeds maxEdge. The aspect ratio is preserved. A maxEdge of
// zero or less disables shrinking.
func EncodePreview(img image.Image, maxEdge int) (*EncodedImage, error) {
	b := img.Bounds()
	if maxEdge <= 0 || (b.Dx() <= maxEdge && b.Dy() <= maxEdge) {
		return EncodePNG(img)
	}

	thumb := resize.Thumbnail(uint(maxEdge), uint(maxEdge), img, resize.Lanczos3)
	res, err := EncodePNG(thumb)
	if err != nil {
		return nil, err
	}
	res.Preview = true
	return res, nil
}

// SaveImage writes an image to disk. The format is chosen from the file
// extension (png, jpg/jpeg, gif, tif/tiff, bmp).
func SaveImage(img image.Image, path string) error {
	if err := imaging.Save(img, path, imaging.JPEGQuality(90)); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
