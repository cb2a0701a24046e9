package media

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
)

const (
	// MaxSide is the longest side of a compressed image
	MaxSide = 1024
	// JPEGQuality is the encoder quality of a compressed image
	JPEGQuality = 80
	// JPEGMimeType is the content type of every compressed image
	JPEGMimeType = "image/jpeg"
)

// ErrNotDataURL is returned for content that is not a base64 data URL
var ErrNotDataURL = errors.New("not a base64 data URL")

// CompressImage scales an image down to fit MaxSide and re-encodes it as JPEG.
// Transparent areas are flattened onto white.
func CompressImage(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	img = imaging.Fit(img, MaxSide, MaxSide, imaging.Lanczos)
	bounds := img.Bounds()
	canvas := imaging.New(bounds.Dx(), bounds.Dy(), color.White)
	flat := imaging.Overlay(canvas, img, image.Pt(0, 0), 1.0)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, flat, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeDataURL splits a data URL of the form data:<mime>;base64,<payload>
func DecodeDataURL(value string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(value, "data:")
	if !ok {
		return "", nil, ErrNotDataURL
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrNotDataURL
	}
	mime, ok := strings.CutSuffix(header, ";base64")
	if !ok {
		return "", nil, ErrNotDataURL
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("invalid data URL payload: %w", err)
	}
	return mime, data, nil
}

// EncodeDataURL builds a base64 data URL
func EncodeDataURL(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// CompressDataURL compresses an embedded image and returns it as a JPEG data URL.
// Anything other than an image data URL, including plain links, is returned unchanged.
func CompressDataURL(value string) (string, error) {
	mime, data, err := DecodeDataURL(value)
	if errors.Is(err, ErrNotDataURL) || (err == nil && !strings.HasPrefix(mime, "image/")) {
		return value, nil
	}
	if err != nil {
		return "", err
	}

	compressed, err := CompressImage(data)
	if err != nil {
		return "", err
	}
	return EncodeDataURL(JPEGMimeType, compressed), nil
}
