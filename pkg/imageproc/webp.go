package imageproc

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

var (
	ErrEmptyImage       = errors.New("empty image")
	ErrUnsupportedImage = errors.New("unsupported image format")
)

type Options struct {
	MaxWidth int
	Quality  float32
}

// SniffFormat returns "jpeg", "png" or "webp" based on content.
func SniffFormat(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyImage
	}
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)
	switch {
	case strings.Contains(ct, "jpeg"):
		return "jpeg", nil
	case strings.Contains(ct, "png"):
		return "png", nil
	case strings.Contains(ct, "webp"):
		return "webp", nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedImage, ct)
}

func Decode(data []byte) (image.Image, error) {
	format, err := SniffFormat(data)
	if err != nil {
		return nil, err
	}
	r := bytes.NewReader(data)
	switch format {
	case "jpeg":
		return jpeg.Decode(r)
	case "png":
		return png.Decode(r)
	default:
		return webp.Decode(r)
	}
}

// ToWebP decodes data, shrinks it to MaxWidth keeping the aspect ratio and
// re-encodes it as lossy WebP. Images narrower than MaxWidth are not upscaled.
func ToWebP(data []byte, opt Options) ([]byte, error) {
	img, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if opt.MaxWidth > 0 && img.Bounds().Dx() > opt.MaxWidth {
		img = imaging.Resize(img, opt.MaxWidth, 0, imaging.Lanczos)
	}
	q := opt.Quality
	if q <= 0 || q > 100 {
		q = 80
	}
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: q}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
