// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for iterative kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxPolarIterations caps the Newton iteration of
	// PolarDecomposition. Well-conditioned affine matrices converge in well
	// under 20 steps.
	DefaultMaxPolarIterations = 64
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxIterationsInvalid = "matrix: WithMaxIterations: n must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	maxIterations int // DefaultMaxPolarIterations
}

// WithMaxIterations sets the iteration cap of iterative kernels.
// Implementation:
//   - Stage 1: validate n > 0.
//   - Stage 2: return a setter that writes n into Options.
//
// Errors:
//   - Panics with a stable message when n <= 0.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIterations = n }
}

// defaultOptions returns Options populated with package defaults.
func defaultOptions() Options {
	return Options{maxIterations: DefaultMaxPolarIterations}
}

// gatherOptions applies opts in order over the defaults; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
