// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/gldemo/scalar"
	"github.com/katalvlaran/gldemo/vector"
)

// Mat4 is a 4×4 column-major matrix value: element (r, c) is m[r+c*4].
// The zero value is the zero matrix.
type Mat4[T scalar.Real] [16]T

// Common instantiations.
type (
	Mat4f = Mat4[float32]
	Mat4d = Mat4[float64]
)

// Identity4 returns the 4×4 identity.
func Identity4[T scalar.Real]() Mat4[T] {
	var m Mat4[T]
	identityInto(m[:], 4)

	return m
}

// New4 copies elems (column-major, or row-major when rowMajor is true).
//
// Errors:
//   - ErrDimensionMismatch when len(elems) != 16.
func New4[T scalar.Real](elems []T, rowMajor bool) (Mat4[T], error) {
	var m Mat4[T]
	if len(elems) != len(m) {
		return m, matrixErrorf(opNew, ErrDimensionMismatch)
	}
	loadInto(m[:], elems, 4, rowMajor)

	return m, nil
}

// FromColumns4 builds a matrix from its column vectors.
func FromColumns4[T scalar.Real](c0, c1, c2, c3 vector.Vec4[T]) Mat4[T] {
	var m Mat4[T]
	copy(m[0:4], c0[:])
	copy(m[4:8], c1[:])
	copy(m[8:12], c2[:])
	copy(m[12:16], c3[:])
	return m
}

// MatN returns a MatN view aliasing m's storage.
func (m *Mat4[T]) MatN() *MatN[T] { return &MatN[T]{n: 4, e: m[:], h: hooks4[T]{}} }

// Dim returns 4.
func (Mat4[T]) Dim() int { return 4 }

// Elems exposes the column-major storage as a slice aliasing m.
func (m *Mat4[T]) Elems() []T { return m[:] }

// At returns element (r, c); ErrOutOfRange outside the matrix.
func (m Mat4[T]) At(r, c int) (T, error) { return m.MatN().At(r, c) }

// Set stores v at (r, c); ErrOutOfRange outside the matrix.
func (m *Mat4[T]) Set(r, c int, v T) error { return m.MatN().Set(r, c, v) }

// AtIndex returns the element at column-major index i.
func (m Mat4[T]) AtIndex(i int) (T, error) { return m.MatN().AtIndex(i) }

// SetIndex stores v at column-major index i.
func (m *Mat4[T]) SetIndex(i int, v T) error { return m.MatN().SetIndex(i, v) }

// Column returns column c.
func (m Mat4[T]) Column(c int) (vector.Vec4[T], error) {
	var v vector.Vec4[T]
	if c < 0 || c >= 4 {
		return v, matrixErrorf(opAt, ErrOutOfRange)
	}
	copy(v[:], m[c*4:(c+1)*4])

	return v, nil
}

// SetColumn replaces column c.
func (m *Mat4[T]) SetColumn(c int, v vector.Vec4[T]) error {
	if c < 0 || c >= 4 {
		return matrixErrorf(opSet, ErrOutOfRange)
	}
	copy(m[c*4:(c+1)*4], v[:])

	return nil
}

func (m Mat4[T]) col(c int) vector.Vec4[T] {
	var v vector.Vec4[T]
	copy(v[:], m[c*4:(c+1)*4])

	return v
}

// Equal reports element-wise FEqual.
func (m Mat4[T]) Equal(o Mat4[T]) bool { return equalApprox(m[:], o[:]) }

// Compare orders by the raw bytes of the column-major layout.
func (m Mat4[T]) Compare(o Mat4[T]) int { return compareRaw(m[:], o[:]) }

// Less is Compare(o) < 0.
func (m Mat4[T]) Less(o Mat4[T]) bool { return m.Compare(o) < 0 }

// Add returns m + o.
func (m Mat4[T]) Add(o Mat4[T]) Mat4[T] { addInto(m[:], m[:], o[:]); return m }

// Sub returns m - o.
func (m Mat4[T]) Sub(o Mat4[T]) Mat4[T] { subInto(m[:], m[:], o[:]); return m }

// Scale returns m multiplied by s.
func (m Mat4[T]) Scale(s T) Mat4[T] { scaleInto(m[:], m[:], s); return m }

// Div returns m divided by s.
func (m Mat4[T]) Div(s T) Mat4[T] { divInto(m[:], m[:], s); return m }

// Neg returns -m.
func (m Mat4[T]) Neg() Mat4[T] { return m.Scale(-1) }

// AddAssign adds o to m in place.
func (m *Mat4[T]) AddAssign(o Mat4[T]) { addInto(m[:], m[:], o[:]) }

// SubAssign subtracts o from m in place.
func (m *Mat4[T]) SubAssign(o Mat4[T]) { subInto(m[:], m[:], o[:]) }

// ScaleAssign multiplies m by s in place.
func (m *Mat4[T]) ScaleAssign(s T) { scaleInto(m[:], m[:], s) }

// DivAssign divides m by s in place.
func (m *Mat4[T]) DivAssign(s T) { divInto(m[:], m[:], s) }

// Mul returns m·o.
func (m Mat4[T]) Mul(o Mat4[T]) Mat4[T] {
	var out Mat4[T]
	mulInto(out[:], m[:], o[:], 4)

	return out
}

// MulVec returns m·v.
func (m Mat4[T]) MulVec(v vector.Vec4[T]) vector.Vec4[T] {
	var out vector.Vec4[T]
	mulVecInto(out[:], m[:], v[:], 4)

	return out
}

// Transpose returns mᵀ.
func (m Mat4[T]) Transpose() Mat4[T] {
	var out Mat4[T]
	transposeInto(out[:], m[:], 4)

	return out
}

// TransposeTimes returns mᵀ·o.
func (m Mat4[T]) TransposeTimes(o Mat4[T]) Mat4[T] {
	var out Mat4[T]
	transposeTimesInto(out[:], m[:], o[:], 4)

	return out
}

// TimesTranspose returns m·oᵀ.
func (m Mat4[T]) TimesTranspose(o Mat4[T]) Mat4[T] {
	var out Mat4[T]
	timesTransposeInto(out[:], m[:], o[:], 4)

	return out
}

// Trace returns the sum of the diagonal.
func (m Mat4[T]) Trace() T { return trace(m[:], 4) }

// FrobeniusNormSquared returns the sum of squared elements.
func (m Mat4[T]) FrobeniusNormSquared() T { return frobeniusSquared(m[:]) }

// FrobeniusNorm returns the square root of FrobeniusNormSquared.
func (m Mat4[T]) FrobeniusNorm() T { return scalar.Sqrt(frobeniusSquared(m[:])) }

// ToRowEchelonForm reduces m in place and returns the rank.
func (m *Mat4[T]) ToRowEchelonForm() int { return rowReduce(m[:], 4, false) }

// ToReducedRowEchelonForm reduces m in place to RREF and returns the rank.
func (m *Mat4[T]) ToReducedRowEchelonForm() int { return rowReduce(m[:], 4, true) }

// ToIdentity overwrites m with the identity.
func (m *Mat4[T]) ToIdentity() { identityInto(m[:], 4) }

// ToZero sets every component to zero.
func (m *Mat4[T]) ToZero() { *m = Mat4[T]{} }

// Determinant returns det(m).
func (m Mat4[T]) Determinant() T { return hooks4[T]{}.determinant(m[:]) }

// Adjoint returns the transposed cofactor matrix.
func (m Mat4[T]) Adjoint() Mat4[T] {
	var out Mat4[T]
	hooks4[T]{}.adjointInto(out[:], m[:])

	return out
}

// Inverse returns Adjoint()/Determinant().
//
// Errors:
//   - ErrSingular when det ≈ 0.
func (m Mat4[T]) Inverse() (Mat4[T], error) {
	var out Mat4[T]
	if err := inverseInto(out[:], m[:], hooks4[T]{}); err != nil {
		return out, matrixErrorf(opInverse, err)
	}

	return out, nil
}

// RowMajor writes m row by row into out[:16].
//
// Errors:
//   - ErrBufferTooSmall when len(out) < 16.
func (m Mat4[T]) RowMajor(out []T) error {
	if len(out) < len(m) {
		return matrixErrorf(opRowMajor, ErrBufferTooSmall)
	}
	rowMajorInto(out, m[:], 4)

	return nil
}

// String formats m for diagnostics.
func (m Mat4[T]) String() string { return format(m[:], 4) }
