// SPDX-License-Identifier: MIT
// Package matrix: closed-form determinant and adjoint for N = 2, 3, 4.
//
// The generic kernels know nothing about closed forms. Each specialized
// dimension supplies a zero-size hooks value, and both the fixed-size types
// and MatN route Determinant/Adjoint/Inverse through it.

package matrix

import "github.com/katalvlaran/gldemo/scalar"

// hooks is the dimension-specific capability set behind Determinant,
// Adjoint and Inverse.
type hooks[T scalar.Real] interface {
	determinant(e []T) T
	adjointInto(dst, e []T)
}

type (
	hooks2[T scalar.Real] struct{}
	hooks3[T scalar.Real] struct{}
	hooks4[T scalar.Real] struct{}
)

func (hooks2[T]) determinant(e []T) T    { return det2(e) }
func (hooks2[T]) adjointInto(dst, e []T) { adjoint2Into(dst, e) }
func (hooks3[T]) determinant(e []T) T    { return det3(e) }
func (hooks3[T]) adjointInto(dst, e []T) { adjointNInto(dst, e, 3, cofactor3[T]) }
func (hooks4[T]) determinant(e []T) T    { return det4(e) }
func (hooks4[T]) adjointInto(dst, e []T) { adjointNInto(dst, e, 4, cofactor4[T]) }

// hooksFor returns the closed-form hooks for n, or false when none exist.
func hooksFor[T scalar.Real](n int) (hooks[T], bool) {
	switch n {
	case 2:
		return hooks2[T]{}, true
	case 3:
		return hooks3[T]{}, true
	case 4:
		return hooks4[T]{}, true
	default:
		return nil, false
	}
}

// det2 is m00·m11 - m01·m10.
func det2[T scalar.Real](e []T) T { return e[0]*e[3] - e[2]*e[1] }

func adjoint2Into[T scalar.Real](dst, e []T) {
	m00, m10, m01, m11 := e[0], e[1], e[2], e[3]
	dst[0], dst[1], dst[2], dst[3] = m11, -m10, -m01, m00
}

// minorInto writes e without row skipR and column skipC into dst, keeping
// the column-major layout of the (n-1)×(n-1) result.
func minorInto[T scalar.Real](dst, e []T, n, skipR, skipC int) {
	k := 0
	for c := 0; c < n; c++ {
		if c == skipC {
			continue
		}
		for r := 0; r < n; r++ {
			if r == skipR {
				continue
			}
			dst[k] = e[idx(r, c, n)]
			k++
		}
	}
}

func signed[T scalar.Real](v T, r, c int) T {
	if (r+c)%2 == 1 {
		return -v
	}

	return v
}

func cofactor3[T scalar.Real](e []T, r, c int) T {
	var m [4]T
	minorInto(m[:], e, 3, r, c)

	return signed(det2(m[:]), r, c)
}

func cofactor4[T scalar.Real](e []T, r, c int) T {
	var m [9]T
	minorInto(m[:], e, 4, r, c)

	return signed(det3(m[:]), r, c)
}

// det3 expands along row 0.
func det3[T scalar.Real](e []T) T {
	var sum T
	for c := 0; c < 3; c++ {
		sum += e[idx(0, c, 3)] * cofactor3(e, 0, c)
	}

	return sum
}

// det4 expands along row 0 with 3×3 minors.
func det4[T scalar.Real](e []T) T {
	var sum T
	for c := 0; c < 4; c++ {
		sum += e[idx(0, c, 4)] * cofactor4(e, 0, c)
	}

	return sum
}

// adjointNInto writes the transposed cofactor matrix of e into dst.
func adjointNInto[T scalar.Real](dst, e []T, n int, cofactor func([]T, int, int) T) {
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			dst[idx(r, c, n)] = cofactor(e, c, r)
		}
	}
}

// inverseInto writes adjoint(e)/det(e) into dst. dst must not alias e.
//
// Errors:
//   - ErrSingular when det ≈ 0.
func inverseInto[T scalar.Real](dst, e []T, h hooks[T]) error {
	det := h.determinant(e)
	if scalar.IsZero(det) {
		return ErrSingular
	}
	h.adjointInto(dst, e)
	divInto(dst, dst, det)

	return nil
}
