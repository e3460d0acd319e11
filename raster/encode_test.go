// SPDX-License-Identifier: MIT

package raster_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gldemo/raster"
)

func checker() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			c := color.NRGBA{A: 0xff}
			if (x+y)%2 == 0 {
				c = color.NRGBA{R: 0xff, G: 0x80, B: 0x10, A: 0xff}
			}
			img.SetNRGBA(x, y, c)
		}
	}

	return img
}

func TestEncodePNG(t *testing.T) {
	t.Parallel()

	src := checker()
	var buf bytes.Buffer
	require.NoError(t, raster.Encode(&buf, src, "PNG"))

	got, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, src.Bounds(), got.Bounds())
	r, g, b, a := got.At(2, 0).RGBA()
	wr, wg, wb, wa := src.At(2, 0).RGBA()
	require.Equal(t, []uint32{wr, wg, wb, wa}, []uint32{r, g, b, a})
}

func TestEncodeWebP(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, raster.Encode(&buf, checker(), raster.FormatWebP))
	data := buf.Bytes()
	require.Greater(t, len(data), 12)
	require.Equal(t, "RIFF", string(data[0:4]))
	require.Equal(t, "WEBP", string(data[8:12]))
}

func TestEncodeUnknown(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.ErrorIs(t, raster.Encode(&buf, checker(), "gif"), raster.ErrUnknownFormat)
	require.Zero(t, buf.Len())
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	f, err := raster.FormatFromPath("out/frame_001.WebP")
	require.NoError(t, err)
	require.Equal(t, raster.FormatWebP, f)

	f, err = raster.FormatFromPath("a.png")
	require.NoError(t, err)
	require.Equal(t, raster.FormatPNG, f)

	_, err = raster.FormatFromPath("a.jpg")
	require.ErrorIs(t, err, raster.ErrUnknownFormat)
	_, err = raster.FormatFromPath("noext")
	require.ErrorIs(t, err, raster.ErrUnknownFormat)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := raster.ParseFormat("PNG")
	require.NoError(t, err)
	require.Equal(t, raster.FormatPNG, f)

	_, err = raster.ParseFormat("")
	require.ErrorIs(t, err, raster.ErrUnknownFormat)
}
