// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/gldemo/scalar"
	"github.com/katalvlaran/gldemo/vector"
)

// Mat3 is a 3×3 column-major matrix value: element (r, c) is m[r+c*3].
// The zero value is the zero matrix.
type Mat3[T scalar.Real] [9]T

// Common instantiations.
type (
	Mat3f = Mat3[float32]
	Mat3d = Mat3[float64]
)

// Identity3 returns the 3×3 identity.
func Identity3[T scalar.Real]() Mat3[T] {
	var m Mat3[T]
	identityInto(m[:], 3)

	return m
}

// New3 copies elems (column-major, or row-major when rowMajor is true).
//
// Errors:
//   - ErrDimensionMismatch when len(elems) != 9.
func New3[T scalar.Real](elems []T, rowMajor bool) (Mat3[T], error) {
	var m Mat3[T]
	if len(elems) != len(m) {
		return m, matrixErrorf(opNew, ErrDimensionMismatch)
	}
	loadInto(m[:], elems, 3, rowMajor)

	return m, nil
}

// FromColumns3 builds a matrix from its column vectors.
func FromColumns3[T scalar.Real](c0, c1, c2 vector.Vec3[T]) Mat3[T] {
	var m Mat3[T]
	copy(m[0:3], c0[:])
	copy(m[3:6], c1[:])
	copy(m[6:9], c2[:])
	return m
}

// MatN returns a MatN view aliasing m's storage.
func (m *Mat3[T]) MatN() *MatN[T] { return &MatN[T]{n: 3, e: m[:], h: hooks3[T]{}} }

// Dim returns 3.
func (Mat3[T]) Dim() int { return 3 }

// Elems exposes the column-major storage as a slice aliasing m.
func (m *Mat3[T]) Elems() []T { return m[:] }

// At returns element (r, c); ErrOutOfRange outside the matrix.
func (m Mat3[T]) At(r, c int) (T, error) { return m.MatN().At(r, c) }

// Set stores v at (r, c); ErrOutOfRange outside the matrix.
func (m *Mat3[T]) Set(r, c int, v T) error { return m.MatN().Set(r, c, v) }

// AtIndex returns the element at column-major index i.
func (m Mat3[T]) AtIndex(i int) (T, error) { return m.MatN().AtIndex(i) }

// SetIndex stores v at column-major index i.
func (m *Mat3[T]) SetIndex(i int, v T) error { return m.MatN().SetIndex(i, v) }

// Column returns column c.
func (m Mat3[T]) Column(c int) (vector.Vec3[T], error) {
	var v vector.Vec3[T]
	if c < 0 || c >= 3 {
		return v, matrixErrorf(opAt, ErrOutOfRange)
	}
	copy(v[:], m[c*3:(c+1)*3])

	return v, nil
}

// SetColumn replaces column c.
func (m *Mat3[T]) SetColumn(c int, v vector.Vec3[T]) error {
	if c < 0 || c >= 3 {
		return matrixErrorf(opSet, ErrOutOfRange)
	}
	copy(m[c*3:(c+1)*3], v[:])

	return nil
}

func (m Mat3[T]) col(c int) vector.Vec3[T] {
	var v vector.Vec3[T]
	copy(v[:], m[c*3:(c+1)*3])

	return v
}

// Equal reports element-wise FEqual.
func (m Mat3[T]) Equal(o Mat3[T]) bool { return equalApprox(m[:], o[:]) }

// Compare orders by the raw bytes of the column-major layout.
func (m Mat3[T]) Compare(o Mat3[T]) int { return compareRaw(m[:], o[:]) }

// Less is Compare(o) < 0.
func (m Mat3[T]) Less(o Mat3[T]) bool { return m.Compare(o) < 0 }

// Add returns m + o.
func (m Mat3[T]) Add(o Mat3[T]) Mat3[T] { addInto(m[:], m[:], o[:]); return m }

// Sub returns m - o.
func (m Mat3[T]) Sub(o Mat3[T]) Mat3[T] { subInto(m[:], m[:], o[:]); return m }

// Scale returns m multiplied by s.
func (m Mat3[T]) Scale(s T) Mat3[T] { scaleInto(m[:], m[:], s); return m }

// Div returns m divided by s.
func (m Mat3[T]) Div(s T) Mat3[T] { divInto(m[:], m[:], s); return m }

// Neg returns -m.
func (m Mat3[T]) Neg() Mat3[T] { return m.Scale(-1) }

// AddAssign adds o to m in place.
func (m *Mat3[T]) AddAssign(o Mat3[T]) { addInto(m[:], m[:], o[:]) }

// SubAssign subtracts o from m in place.
func (m *Mat3[T]) SubAssign(o Mat3[T]) { subInto(m[:], m[:], o[:]) }

// ScaleAssign multiplies m by s in place.
func (m *Mat3[T]) ScaleAssign(s T) { scaleInto(m[:], m[:], s) }

// DivAssign divides m by s in place.
func (m *Mat3[T]) DivAssign(s T) { divInto(m[:], m[:], s) }

// Mul returns m·o.
func (m Mat3[T]) Mul(o Mat3[T]) Mat3[T] {
	var out Mat3[T]
	mulInto(out[:], m[:], o[:], 3)

	return out
}

// MulVec returns m·v.
func (m Mat3[T]) MulVec(v vector.Vec3[T]) vector.Vec3[T] {
	var out vector.Vec3[T]
	mulVecInto(out[:], m[:], v[:], 3)

	return out
}

// Transpose returns mᵀ.
func (m Mat3[T]) Transpose() Mat3[T] {
	var out Mat3[T]
	transposeInto(out[:], m[:], 3)

	return out
}

// TransposeTimes returns mᵀ·o.
func (m Mat3[T]) TransposeTimes(o Mat3[T]) Mat3[T] {
	var out Mat3[T]
	transposeTimesInto(out[:], m[:], o[:], 3)

	return out
}

// TimesTranspose returns m·oᵀ.
func (m Mat3[T]) TimesTranspose(o Mat3[T]) Mat3[T] {
	var out Mat3[T]
	timesTransposeInto(out[:], m[:], o[:], 3)

	return out
}

// Trace returns the sum of the diagonal.
func (m Mat3[T]) Trace() T { return trace(m[:], 3) }

// FrobeniusNormSquared returns the sum of squared elements.
func (m Mat3[T]) FrobeniusNormSquared() T { return frobeniusSquared(m[:]) }

// FrobeniusNorm returns the square root of FrobeniusNormSquared.
func (m Mat3[T]) FrobeniusNorm() T { return scalar.Sqrt(frobeniusSquared(m[:])) }

// ToRowEchelonForm reduces m in place and returns the rank.
func (m *Mat3[T]) ToRowEchelonForm() int { return rowReduce(m[:], 3, false) }

// ToReducedRowEchelonForm reduces m in place to RREF and returns the rank.
func (m *Mat3[T]) ToReducedRowEchelonForm() int { return rowReduce(m[:], 3, true) }

// ToIdentity overwrites m with the identity.
func (m *Mat3[T]) ToIdentity() { identityInto(m[:], 3) }

// ToZero sets every component to zero.
func (m *Mat3[T]) ToZero() { *m = Mat3[T]{} }

// Determinant returns det(m).
func (m Mat3[T]) Determinant() T { return hooks3[T]{}.determinant(m[:]) }

// Adjoint returns the transposed cofactor matrix.
func (m Mat3[T]) Adjoint() Mat3[T] {
	var out Mat3[T]
	hooks3[T]{}.adjointInto(out[:], m[:])

	return out
}

// Inverse returns Adjoint()/Determinant().
//
// Errors:
//   - ErrSingular when det ≈ 0.
func (m Mat3[T]) Inverse() (Mat3[T], error) {
	var out Mat3[T]
	if err := inverseInto(out[:], m[:], hooks3[T]{}); err != nil {
		return out, matrixErrorf(opInverse, err)
	}

	return out, nil
}

// RowMajor writes m row by row into out[:9].
//
// Errors:
//   - ErrBufferTooSmall when len(out) < 9.
func (m Mat3[T]) RowMajor(out []T) error {
	if len(out) < len(m) {
		return matrixErrorf(opRowMajor, ErrBufferTooSmall)
	}
	rowMajorInto(out, m[:], 3)

	return nil
}

// String formats m for diagnostics.
func (m Mat3[T]) String() string { return format(m[:], 3) }
