// SPDX-License-Identifier: MIT

package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
)

// Output formats understood by Encode.
const (
	FormatWebP = "webp"
	FormatPNG  = "png"
)

// Encode writes img to w in the named format (lossless WebP or PNG).
func Encode(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case FormatWebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("raster: webp encode: %w", err)
		}
	case FormatPNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("raster: png encode: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return nil
}

// ParseFormat normalizes a format name such as "WebP" or "png".
func ParseFormat(name string) (string, error) {
	f := strings.ToLower(name)
	switch f {
	case FormatWebP, FormatPNG:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath returns the format implied by path's extension.
func FormatFromPath(path string) (string, error) {
	f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return "", fmt.Errorf("%w: extension %q", ErrUnknownFormat, filepath.Ext(path))
	}

	return f, nil
}
