// SPDX-License-Identifier: MIT

package raster

import "errors"

// Sentinel errors for the software renderer.
var (
	// ErrInvalidOptions indicates a non-positive size, supersample factor or line width.
	ErrInvalidOptions = errors.New("raster: invalid options")

	// ErrBadColor indicates a color string that is not #rrggbb or #rrggbbaa.
	ErrBadColor = errors.New("raster: bad color")

	// ErrUnknownFormat indicates an output format Encode does not support.
	ErrUnknownFormat = errors.New("raster: unknown image format")

	// ErrNilScene indicates Render was called without a scene or camera.
	ErrNilScene = errors.New("raster: nil scene")
)
