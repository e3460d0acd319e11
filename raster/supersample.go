// SPDX-License-Identifier: MIT

package raster

import (
	"image"

	"golang.org/x/image/draw"
)

// downsample filters src to w×h with Catmull-Rom. src is premultiplied,
// so edges blend without dark halos. Same-size input is returned as is.
func downsample(src *image.RGBA, w, h int) *image.RGBA {
	b := src.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)

	return dst
}
