package imageproc

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func TestSniffFormat(t *testing.T) {
	f, err := SniffFormat(pngBytes(t, 4, 4))
	require.NoError(t, err)
	assert.Equal(t, "png", f)

	_, err = SniffFormat(nil)
	assert.ErrorIs(t, err, ErrEmptyImage)

	_, err = SniffFormat([]byte("just some text"))
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

func TestToWebP_Downscales(t *testing.T) {
	out, err := ToWebP(pngBytes(t, 200, 100), Options{MaxWidth: 50, Quality: 70})
	require.NoError(t, err)

	img, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 50, img.Bounds().Dx())
	assert.Equal(t, 25, img.Bounds().Dy())
}

func TestToWebP_KeepsSmallImages(t *testing.T) {
	out, err := ToWebP(pngBytes(t, 30, 20), Options{MaxWidth: 100})
	require.NoError(t, err)

	img, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 30, img.Bounds().Dx())
}
