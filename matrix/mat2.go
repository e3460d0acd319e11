// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/gldemo/scalar"
	"github.com/katalvlaran/gldemo/vector"
)

// Mat2 is a 2×2 column-major matrix value: element (r, c) is m[r+c*2].
// The zero value is the zero matrix.
type Mat2[T scalar.Real] [4]T

// Common instantiations.
type (
	Mat2f = Mat2[float32]
	Mat2d = Mat2[float64]
)

// Identity2 returns the 2×2 identity.
func Identity2[T scalar.Real]() Mat2[T] {
	var m Mat2[T]
	identityInto(m[:], 2)

	return m
}

// New2 copies elems (column-major, or row-major when rowMajor is true).
//
// Errors:
//   - ErrDimensionMismatch when len(elems) != 4.
func New2[T scalar.Real](elems []T, rowMajor bool) (Mat2[T], error) {
	var m Mat2[T]
	if len(elems) != len(m) {
		return m, matrixErrorf(opNew, ErrDimensionMismatch)
	}
	loadInto(m[:], elems, 2, rowMajor)

	return m, nil
}

// FromColumns2 builds a matrix from its column vectors.
func FromColumns2[T scalar.Real](c0, c1 vector.Vec2[T]) Mat2[T] {
	var m Mat2[T]
	copy(m[0:2], c0[:])
	copy(m[2:4], c1[:])
	return m
}

// MatN returns a MatN view aliasing m's storage.
func (m *Mat2[T]) MatN() *MatN[T] { return &MatN[T]{n: 2, e: m[:], h: hooks2[T]{}} }

// Dim returns 2.
func (Mat2[T]) Dim() int { return 2 }

// Elems exposes the column-major storage as a slice aliasing m.
func (m *Mat2[T]) Elems() []T { return m[:] }

// At returns element (r, c); ErrOutOfRange outside the matrix.
func (m Mat2[T]) At(r, c int) (T, error) { return m.MatN().At(r, c) }

// Set stores v at (r, c); ErrOutOfRange outside the matrix.
func (m *Mat2[T]) Set(r, c int, v T) error { return m.MatN().Set(r, c, v) }

// AtIndex returns the element at column-major index i.
func (m Mat2[T]) AtIndex(i int) (T, error) { return m.MatN().AtIndex(i) }

// SetIndex stores v at column-major index i.
func (m *Mat2[T]) SetIndex(i int, v T) error { return m.MatN().SetIndex(i, v) }

// Column returns column c.
func (m Mat2[T]) Column(c int) (vector.Vec2[T], error) {
	var v vector.Vec2[T]
	if c < 0 || c >= 2 {
		return v, matrixErrorf(opAt, ErrOutOfRange)
	}
	copy(v[:], m[c*2:(c+1)*2])

	return v, nil
}

// SetColumn replaces column c.
func (m *Mat2[T]) SetColumn(c int, v vector.Vec2[T]) error {
	if c < 0 || c >= 2 {
		return matrixErrorf(opSet, ErrOutOfRange)
	}
	copy(m[c*2:(c+1)*2], v[:])

	return nil
}

func (m Mat2[T]) col(c int) vector.Vec2[T] {
	var v vector.Vec2[T]
	copy(v[:], m[c*2:(c+1)*2])

	return v
}

// Equal reports element-wise FEqual.
func (m Mat2[T]) Equal(o Mat2[T]) bool { return equalApprox(m[:], o[:]) }

// Compare orders by the raw bytes of the column-major layout.
func (m Mat2[T]) Compare(o Mat2[T]) int { return compareRaw(m[:], o[:]) }

// Less is Compare(o) < 0.
func (m Mat2[T]) Less(o Mat2[T]) bool { return m.Compare(o) < 0 }

// Add returns m + o.
func (m Mat2[T]) Add(o Mat2[T]) Mat2[T] { addInto(m[:], m[:], o[:]); return m }

// Sub returns m - o.
func (m Mat2[T]) Sub(o Mat2[T]) Mat2[T] { subInto(m[:], m[:], o[:]); return m }

// Scale returns m multiplied by s.
func (m Mat2[T]) Scale(s T) Mat2[T] { scaleInto(m[:], m[:], s); return m }

// Div returns m divided by s.
func (m Mat2[T]) Div(s T) Mat2[T] { divInto(m[:], m[:], s); return m }

// Neg returns -m.
func (m Mat2[T]) Neg() Mat2[T] { return m.Scale(-1) }

// AddAssign adds o to m in place.
func (m *Mat2[T]) AddAssign(o Mat2[T]) { addInto(m[:], m[:], o[:]) }

// SubAssign subtracts o from m in place.
func (m *Mat2[T]) SubAssign(o Mat2[T]) { subInto(m[:], m[:], o[:]) }

// ScaleAssign multiplies m by s in place.
func (m *Mat2[T]) ScaleAssign(s T) { scaleInto(m[:], m[:], s) }

// DivAssign divides m by s in place.
func (m *Mat2[T]) DivAssign(s T) { divInto(m[:], m[:], s) }

// Mul returns m·o.
func (m Mat2[T]) Mul(o Mat2[T]) Mat2[T] {
	var out Mat2[T]
	mulInto(out[:], m[:], o[:], 2)

	return out
}

// MulVec returns m·v.
func (m Mat2[T]) MulVec(v vector.Vec2[T]) vector.Vec2[T] {
	var out vector.Vec2[T]
	mulVecInto(out[:], m[:], v[:], 2)

	return out
}

// Transpose returns mᵀ.
func (m Mat2[T]) Transpose() Mat2[T] {
	var out Mat2[T]
	transposeInto(out[:], m[:], 2)

	return out
}

// TransposeTimes returns mᵀ·o.
func (m Mat2[T]) TransposeTimes(o Mat2[T]) Mat2[T] {
	var out Mat2[T]
	transposeTimesInto(out[:], m[:], o[:], 2)

	return out
}

// TimesTranspose returns m·oᵀ.
func (m Mat2[T]) TimesTranspose(o Mat2[T]) Mat2[T] {
	var out Mat2[T]
	timesTransposeInto(out[:], m[:], o[:], 2)

	return out
}

// Trace returns the sum of the diagonal.
func (m Mat2[T]) Trace() T { return trace(m[:], 2) }

// FrobeniusNormSquared returns the sum of squared elements.
func (m Mat2[T]) FrobeniusNormSquared() T { return frobeniusSquared(m[:]) }

// FrobeniusNorm returns the square root of FrobeniusNormSquared.
func (m Mat2[T]) FrobeniusNorm() T { return scalar.Sqrt(frobeniusSquared(m[:])) }

// ToRowEchelonForm reduces m in place and returns the rank.
func (m *Mat2[T]) ToRowEchelonForm() int { return rowReduce(m[:], 2, false) }

// ToReducedRowEchelonForm reduces m in place to RREF and returns the rank.
func (m *Mat2[T]) ToReducedRowEchelonForm() int { return rowReduce(m[:], 2, true) }

// ToIdentity overwrites m with the identity.
func (m *Mat2[T]) ToIdentity() { identityInto(m[:], 2) }

// ToZero sets every component to zero.
func (m *Mat2[T]) ToZero() { *m = Mat2[T]{} }

// Determinant returns det(m).
func (m Mat2[T]) Determinant() T { return hooks2[T]{}.determinant(m[:]) }

// Adjoint returns the transposed cofactor matrix.
func (m Mat2[T]) Adjoint() Mat2[T] {
	var out Mat2[T]
	hooks2[T]{}.adjointInto(out[:], m[:])

	return out
}

// Inverse returns Adjoint()/Determinant().
//
// Errors:
//   - ErrSingular when det ≈ 0.
func (m Mat2[T]) Inverse() (Mat2[T], error) {
	var out Mat2[T]
	if err := inverseInto(out[:], m[:], hooks2[T]{}); err != nil {
		return out, matrixErrorf(opInverse, err)
	}

	return out, nil
}

// RowMajor writes m row by row into out[:4].
//
// Errors:
//   - ErrBufferTooSmall when len(out) < 4.
func (m Mat2[T]) RowMajor(out []T) error {
	if len(out) < len(m) {
		return matrixErrorf(opRowMajor, ErrBufferTooSmall)
	}
	rowMajorInto(out, m[:], 2)

	return nil
}

// String formats m for diagnostics.
func (m Mat2[T]) String() string { return format(m[:], 2) }
