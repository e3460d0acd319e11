// SPDX-License-Identifier: MIT
// Package matrix: column-major linear-algebra kernels shared by MatN and the
// fixed-size Mat2, Mat3 and Mat4 types.
//
// Purpose:
//   - Implement every dimension-independent algorithm exactly once, over a
//     flat slice e of length n*n where element (r, c) lives at e[r+c*n].
//   - Define operation tags for unified error wrapping.
//
// Notes:
//   - Kernels never allocate and never validate; callers own shape checks.
//   - dst arguments must not alias inputs unless a kernel says otherwise.

package matrix

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/gldemo/scalar"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAt          = "At"
	opSet         = "Set"
	opNew         = "New"
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opMulVec      = "MulVec"
	opDeterminant = "Determinant"
	opAdjoint     = "Adjoint"
	opInverse     = "Inverse"
	opRowMajor    = "RowMajor"
	opDiagonalize = "Diagonalize"
	opAxisAngle   = "AxisAngle"
	opPolar       = "PolarDecomposition"
	opPerspective = "Perspective"
	opOrtho       = "Orthographic"
	opReflection  = "Reflection"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// idx maps (r, c) to the column-major linear index.
func idx(r, c, n int) int { return r + c*n }

func identityInto[T scalar.Real](e []T, n int) {
	clear(e)
	for i := 0; i < n; i++ {
		e[idx(i, i, n)] = 1
	}
}

func addInto[T scalar.Real](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subInto[T scalar.Real](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// scaleInto may alias dst and a.
func scaleInto[T scalar.Real](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] * s
	}
}

func divInto[T scalar.Real](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] / s
	}
}

// mulInto computes dst = a·b.
//
// Implementation:
//   - dst[i+j*n] = Σ_k a[i+k*n]·b[k+j*n] (pre-multiplication, M·v convention).
//
// Complexity:
//   - Time O(n³), Space O(1).
func mulInto[T scalar.Real](dst, a, b []T, n int) {
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			var sum T
			for k := 0; k < n; k++ {
				sum += a[idx(i, k, n)] * b[idx(k, j, n)]
			}
			dst[idx(i, j, n)] = sum
		}
	}
}

// transposeTimesInto computes dst = aᵀ·b without materializing aᵀ.
func transposeTimesInto[T scalar.Real](dst, a, b []T, n int) {
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			var sum T
			for k := 0; k < n; k++ {
				sum += a[idx(k, i, n)] * b[idx(k, j, n)]
			}
			dst[idx(i, j, n)] = sum
		}
	}
}

// timesTransposeInto computes dst = a·bᵀ without materializing bᵀ.
func timesTransposeInto[T scalar.Real](dst, a, b []T, n int) {
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			var sum T
			for k := 0; k < n; k++ {
				sum += a[idx(i, k, n)] * b[idx(j, k, n)]
			}
			dst[idx(i, j, n)] = sum
		}
	}
}

// mulVecInto computes dst = a·v for a column vector v of length n.
func mulVecInto[T scalar.Real](dst, a, v []T, n int) {
	for i := 0; i < n; i++ {
		var sum T
		for k := 0; k < n; k++ {
			sum += a[idx(i, k, n)] * v[k]
		}
		dst[i] = sum
	}
}

func transposeInto[T scalar.Real](dst, a []T, n int) {
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			dst[idx(c, r, n)] = a[idx(r, c, n)]
		}
	}
}

func trace[T scalar.Real](a []T, n int) T {
	var sum T
	for i := 0; i < n; i++ {
		sum += a[idx(i, i, n)]
	}

	return sum
}

func frobeniusSquared[T scalar.Real](a []T) T {
	var sum T
	for _, v := range a {
		sum += v * v
	}

	return sum
}

func equalApprox[T scalar.Real](a, b []T) bool {
	for i := range a {
		if !scalar.FEqual(a[i], b[i]) {
			return false
		}
	}

	return true
}

func swapRows[T scalar.Real](e []T, n, r1, r2 int) {
	if r1 == r2 {
		return
	}
	for c := 0; c < n; c++ {
		e[idx(r1, c, n)], e[idx(r2, c, n)] = e[idx(r2, c, n)], e[idx(r1, c, n)]
	}
}

// rowReduce brings e into row echelon form in place, or into reduced row
// echelon form when reduced is true.
//
// Implementation:
//   - Stage 1: for each column, pick the untouched row with the largest
//     |value| (partial pivoting). If that value is ≈ 0 the column is skipped
//     and the pivot row does not advance.
//   - Stage 2: swap the pivot row up and scale it to a leading 1.
//   - Stage 3: eliminate the column below the pivot (and above it when
//     reduced), writing exact zeros.
//
// Behavior highlights:
//   - Irreversible; callers that need the original keep a copy.
//   - Returns the rank, i.e. the number of pivot rows.
//
// Complexity:
//   - Time O(n³), Space O(1).
func rowReduce[T scalar.Real](e []T, n int, reduced bool) int {
	row := 0
	for col := 0; col < n && row < n; col++ {
		pivot := row
		best := scalar.Abs(e[idx(row, col, n)])
		for r := row + 1; r < n; r++ {
			if v := scalar.Abs(e[idx(r, col, n)]); v > best {
				best, pivot = v, r
			}
		}
		if scalar.IsZero(best) {
			continue
		}
		swapRows(e, n, row, pivot)

		inv := 1 / e[idx(row, col, n)]
		for c := 0; c < n; c++ {
			e[idx(row, c, n)] *= inv
		}
		e[idx(row, col, n)] = 1

		start := row + 1
		if reduced {
			start = 0
		}
		for r := start; r < n; r++ {
			if r == row {
				continue
			}
			f := e[idx(r, col, n)]
			for c := 0; c < n; c++ {
				e[idx(r, c, n)] -= f * e[idx(row, c, n)]
			}
			e[idx(r, col, n)] = 0
		}
		row++
	}

	return row
}

// rowMajorInto writes e transposed into out, i.e. row by row.
func rowMajorInto[T scalar.Real](out, e []T, n int) {
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out[r*n+c] = e[idx(r, c, n)]
		}
	}
}

// loadInto copies src into dst, transposing when src is row-major.
func loadInto[T scalar.Real](dst, src []T, n int, rowMajor bool) {
	if !rowMajor {
		copy(dst, src)
		return
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			dst[idx(r, c, n)] = src[r*n+c]
		}
	}
}

// rawBytes appends the little-endian bit patterns of e to buf.
func rawBytes[T scalar.Real](buf []byte, e []T) []byte {
	for _, v := range e {
		switch x := any(v).(type) {
		case float32:
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(x))
		default:
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(float64(v)))
		}
	}

	return buf
}

// compareRaw orders two layouts by their raw bytes. Deterministic, not geometric.
func compareRaw[T scalar.Real](a, b []T) int {
	return bytes.Compare(rawBytes(nil, a), rawBytes(nil, b))
}

// format renders e row by row: "[a b; c d]".
func format[T scalar.Real](e []T, n int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for r := 0; r < n; r++ {
		if r > 0 {
			sb.WriteString("; ")
		}
		for c := 0; c < n; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", float64(e[idx(r, c, n)]))
		}
	}
	sb.WriteByte(']')

	return sb.String()
}
