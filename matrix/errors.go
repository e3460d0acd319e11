// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Algorithms return these sentinels (optionally wrapped with an
// operation tag via matrixErrorf) and tests match them via errors.Is.
// No algorithm panics on user-triggered error conditions; panics are reserved
// for nonsensical Option parameters (programmer error).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistent grepping.
// Wrapped forms look like "Inverse: matrix: singular matrix".
//
// ERROR PRIORITY (documented, enforced in tests):
// dimension/index -> buffer -> numeric failure (singular, eigen, convergence)
// -> unsupported dimension.

var (
	// ErrInvalidDimensions indicates that a requested dimension is non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a linear index or (row, column) pair is
	// outside the matrix. Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates operands of different N, or a source
	// slice whose length is not N*N.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBufferTooSmall indicates a readback buffer shorter than N*N.
	ErrBufferTooSmall = errors.New("matrix: output buffer too small")

	// ErrSingular is returned when the determinant is ≈ 0 and an inverse
	// was requested.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNoRealEigenvalues indicates that the characteristic polynomial has
	// no (complete) set of real roots.
	ErrNoRealEigenvalues = errors.New("matrix: no real eigenvalues")

	// ErrUnderdetermined indicates an eigenspace with more than one free
	// variable (repeated eigenvalue); no unique eigenvector exists.
	ErrUnderdetermined = errors.New("matrix: eigenvector underdetermined")

	// ErrNoEigenvector indicates that M-λI reduced to full rank, i.e. the
	// computed λ is not an eigenvalue within tolerance.
	ErrNoEigenvector = errors.New("matrix: no eigenvector for eigenvalue")

	// ErrNoConvergence indicates that an iterative kernel (polar
	// decomposition) did not converge within its iteration cap.
	ErrNoConvergence = errors.New("matrix: iteration did not converge")

	// ErrZeroAxis indicates a rotation or reflection axis of length ≈ 0.
	ErrZeroAxis = errors.New("matrix: zero-length axis")

	// ErrInvalidProjection indicates degenerate projection parameters
	// (zero extent, non-positive aspect or field of view, near == far).
	ErrInvalidProjection = errors.New("matrix: invalid projection parameters")

	// ErrUnsupported marks an operation without a closed form for the
	// receiver's dimension (determinant/adjoint/inverse of MatN with N > 4).
	ErrUnsupported = errors.New("matrix: operation not supported for dimension")
)
