// SPDX-License-Identifier: MIT

package raster

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"

	"github.com/katalvlaran/gldemo/scene"
)

// Options controls frame size and line styling. Width, Height and
// LineWidth are in output pixels; the frame is drawn at Supersample times
// that resolution and filtered down.
type Options struct {
	Width, Height int
	Supersample   int
	Background    color.NRGBA
	Stroke        color.NRGBA
	LineWidth     float64
}

// DefaultOptions mirrors scene.DefaultConfig().Render.
func DefaultOptions() Options {
	o, _ := OptionsFromConfig(scene.DefaultConfig().Render)

	return o
}

// OptionsFromConfig converts the render block of a scene description.
func OptionsFromConfig(rc scene.RenderConfig) (Options, error) {
	bg, err := ParseHexColor(rc.Background)
	if err != nil {
		return Options{}, fmt.Errorf("background: %w", err)
	}
	fg, err := ParseHexColor(rc.Stroke)
	if err != nil {
		return Options{}, fmt.Errorf("stroke: %w", err)
	}
	o := Options{
		Width:       rc.Width,
		Height:      rc.Height,
		Supersample: rc.Supersample,
		Background:  bg,
		Stroke:      fg,
		LineWidth:   rc.LineWidth,
	}

	return o, o.Validate()
}

// Validate reports ErrInvalidOptions for non-positive dimensions.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 || o.Supersample < 1 || o.LineWidth <= 0 {
		return fmt.Errorf("%w: %dx%d supersample %d line width %g",
			ErrInvalidOptions, o.Width, o.Height, o.Supersample, o.LineWidth)
	}

	return nil
}

// ParseHexColor parses "#rrggbb" (opaque) or "#rrggbbaa".
func ParseHexColor(s string) (color.NRGBA, error) {
	raw, ok := strings.CutPrefix(s, "#")
	if !ok || (len(raw) != 6 && len(raw) != 8) {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	c := color.NRGBA{R: b[0], G: b[1], B: b[2], A: 0xff}
	if len(b) == 4 {
		c.A = b[3]
	}

	return c, nil
}
