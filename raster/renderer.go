// SPDX-License-Identifier: MIT

package raster

import (
	"fmt"
	"image"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/vector"

	"github.com/katalvlaran/gldemo/internal/logging"
	"github.com/katalvlaran/gldemo/matrix"
	"github.com/katalvlaran/gldemo/scene"
)

// Renderer draws scene meshes as antialiased wireframes.
//
// A Renderer reuses its rasterizer between frames and is not safe for
// concurrent use; give each goroutine its own.
type Renderer struct {
	opts Options
	log  *zap.Logger
	ras  *vector.Rasterizer
}

// Stats summarizes one Render call.
type Stats struct {
	Nodes   int // drawable nodes visited
	Edges   int // edges stroked
	Clipped int // edges dropped behind the eye or outside the viewport
}

// New returns a renderer for opts. A nil logger discards output.
func New(opts Options, log *zap.Logger) (*Renderer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &Renderer{
		opts: opts,
		log:  logging.OrNop(log),
		ras:  vector.NewRasterizer(opts.Width*opts.Supersample, opts.Height*opts.Supersample),
	}, nil
}

// Options returns the renderer's settings.
func (r *Renderer) Options() Options { return r.opts }

// Render refreshes world transformations and draws every mesh-carrying node
// of s through the camera into a Width×Height image.
func (r *Renderer) Render(s *scene.Scene) (*image.NRGBA, error) {
	img, _, err := r.RenderStats(s)

	return img, err
}

// RenderStats is Render that also reports what was drawn.
func (r *Renderer) RenderStats(s *scene.Scene) (*image.NRGBA, Stats, error) {
	var st Stats
	if s == nil || s.Root == nil || s.Camera == nil {
		return nil, st, ErrNilScene
	}
	start := time.Now()
	s.Update()

	ss := r.opts.Supersample
	w, h := r.opts.Width*ss, r.opts.Height*ss

	view, err := s.Camera.ViewMatrix()
	if err != nil {
		return nil, st, fmt.Errorf("raster: %w", err)
	}
	proj, err := s.Camera.ProjectionMatrix(float64(w) / float64(h))
	if err != nil {
		return nil, st, fmt.Errorf("raster: %w", err)
	}
	viewProj := proj.Mul(view)

	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(r.opts.Background), image.Point{}, draw.Src)
	stroke := image.NewUniform(r.opts.Stroke)

	half := r.opts.LineWidth * float64(ss) / 2
	pad := half + 1
	for _, n := range s.Drawables() {
		st.Nodes++
		mvp := matrix.UploadF32(viewProj.Mul(n.World.Matrix()))

		clip := make([][4]float32, len(n.Mesh.Vertices))
		for i, v := range n.Mesh.Vertices {
			p := v.Position
			clip[i] = transform(&mvp, float32(p[0]), float32(p[1]), float32(p[2]))
		}

		r.ras.Reset(w, h)
		drawn := 0
		for _, e := range n.Mesh.Edges() {
			a, b := clip[e.A], clip[e.B]
			if a[3] <= 0 || b[3] <= 0 {
				st.Clipped++
				continue
			}
			ax, ay := toPixel(a, w, h)
			bx, by := toPixel(b, w, h)
			ax, ay, bx, by, ok := clipSegment(ax, ay, bx, by, -pad, -pad, float64(w)+pad, float64(h)+pad)
			if !ok {
				st.Clipped++
				continue
			}
			if strokeQuad(r.ras, ax, ay, bx, by, half) {
				drawn++
			}
		}
		if drawn > 0 {
			r.ras.Draw(canvas, canvas.Bounds(), stroke, image.Point{})
		}
		st.Edges += drawn
	}

	out := image.NewNRGBA(image.Rect(0, 0, r.opts.Width, r.opts.Height))
	draw.Draw(out, out.Bounds(), downsample(canvas, r.opts.Width, r.opts.Height), image.Point{}, draw.Src)

	r.log.Debug("frame rendered",
		zap.Int("nodes", st.Nodes),
		zap.Int("edges", st.Edges),
		zap.Int("clipped", st.Clipped),
		zap.Duration("elapsed", time.Since(start)),
	)

	return out, st, nil
}

// transform multiplies the row-major m by (x, y, z, 1).
func transform(m *f32.Mat4, x, y, z float32) [4]float32 {
	var out [4]float32
	for row := 0; row < 4; row++ {
		out[row] = m[row*4]*x + m[row*4+1]*y + m[row*4+2]*z + m[row*4+3]
	}

	return out
}

// toPixel maps clip coordinates to raster space, y down.
func toPixel(c [4]float32, w, h int) (x, y float64) {
	nx, ny := float64(c[0]/c[3]), float64(c[1]/c[3])

	return (nx + 1) / 2 * float64(w), (1 - ny) / 2 * float64(h)
}

// strokeQuad adds the rectangle of half-width half around a→b. It reports
// false for degenerate segments.
func strokeQuad(z *vector.Rasterizer, ax, ay, bx, by, half float64) bool {
	dx, dy := bx-ax, by-ay
	l := math.Hypot(dx, dy)
	if l < 1e-9 {
		return false
	}
	nx, ny := -dy/l*half, dx/l*half

	z.MoveTo(float32(ax+nx), float32(ay+ny))
	z.LineTo(float32(bx+nx), float32(by+ny))
	z.LineTo(float32(bx-nx), float32(by-ny))
	z.LineTo(float32(ax-nx), float32(ay-ny))
	z.ClosePath()

	return true
}
