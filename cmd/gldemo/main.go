// SPDX-License-Identifier: MIT

// Command gldemo renders a scene description as a sequence of wireframe
// frames, orbiting the camera a fixed step per frame.
//
// Usage:
//
//	gldemo -config configs/orbit.yaml -out frames -frames 24 -format webp
//
// Without -config a single cube is rendered. Frames are written as
// <out>/frame_NNN.<format> and rendered concurrently by -workers goroutines,
// each building its own scene.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gldemo/internal/logging"
	"github.com/katalvlaran/gldemo/raster"
	"github.com/katalvlaran/gldemo/scene"
)

type flags struct {
	config    string
	out       string
	frames    int
	format    string
	workers   int
	logLevel  string
	logFormat string
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("gldemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.config, "config", "", "scene description (YAML); empty renders a single cube")
	fs.StringVar(&f.out, "out", "frames", "output directory")
	fs.IntVar(&f.frames, "frames", 1, "number of frames; each orbits the camera by camera.orbit_step degrees")
	fs.StringVar(&f.format, "format", raster.FormatWebP, "output format: webp or png")
	fs.IntVar(&f.workers, "workers", runtime.NumCPU(), "frames rendered concurrently")
	fs.StringVar(&f.logLevel, "log-level", "info", "debug, info, warn or error")
	fs.StringVar(&f.logFormat, "log-format", logging.EncodingConsole, "console or json")
	if err := fs.Parse(args); err != nil {
		return f, err
	}

	if f.frames < 1 {
		return f, fmt.Errorf("-frames must be >= 1, got %d", f.frames)
	}
	if f.workers < 1 {
		return f, fmt.Errorf("-workers must be >= 1, got %d", f.workers)
	}

	return f, nil
}

// defaultConfig is the scene rendered without -config.
func defaultConfig() *scene.Config {
	c := scene.DefaultConfig()
	c.Camera.Eye = []float64{4, 3, 12}
	c.Objects = []scene.ObjectConfig{{Name: "cube", Mesh: scene.MeshCube}}

	return &c
}

func loadConfig(path string) (*scene.Config, error) {
	if path == "" {
		return defaultConfig(), nil
	}
	c, err := scene.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if f.format, err = raster.ParseFormat(f.format); err != nil {
		return err
	}

	log, err := logging.New(f.logLevel, f.logFormat)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cfg, err := loadConfig(f.config)
	if err != nil {
		return err
	}
	opts, err := raster.OptionsFromConfig(cfg.Render)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(f.out, 0o755); err != nil {
		return err
	}

	preview, err := cfg.Build()
	if err != nil {
		return err
	}
	angle, axis := preview.Camera.World.Rotation().ToAxisAngle()
	pos, view, _, _ := preview.Camera.WorldVectors()
	log.Info("scene loaded",
		zap.String("config", f.config),
		zap.Int("drawables", len(preview.Drawables())),
		zap.Stringer("eye", pos),
		zap.Stringer("view", view),
		zap.Float64("camera_angle", angle),
		zap.Stringer("camera_axis", axis),
		zap.Float64("orbit_step", preview.OrbitStep),
	)

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.workers)
	for i := 0; i < f.frames; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(f.out, fmt.Sprintf("frame_%03d.%s", i, f.format))

			return renderFrame(cfg, opts, i, path, f.format, log.With(zap.Int("frame", i)))
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("done",
		zap.Int("frames", f.frames),
		zap.Int("workers", f.workers),
		zap.Duration("elapsed", time.Since(start)),
	)

	return nil
}

func renderFrame(cfg *scene.Config, opts raster.Options, frame int, path, format string, log *zap.Logger) error {
	start := time.Now()
	s, err := cfg.Build()
	if err != nil {
		return err
	}
	if err := s.Orbit(float64(frame) * s.OrbitStep); err != nil {
		return err
	}

	r, err := raster.New(opts, log)
	if err != nil {
		return err
	}
	img, st, err := r.RenderStats(s)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := raster.Encode(out, img, format); err != nil {
		_ = out.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	log.Info("frame written",
		zap.String("path", path),
		zap.Int("edges", st.Edges),
		zap.Int("clipped", st.Clipped),
		zap.Duration("elapsed", time.Since(start)),
	)

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "gldemo:", err)
		}
		stop()
		os.Exit(1)
	}
}
