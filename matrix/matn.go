// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/gldemo/scalar"
	"github.com/katalvlaran/gldemo/vector"
)

// MatN is a square N×N matrix with a run-time dimension, stored column-major:
// element (r, c) lives at linear index r + c*N.
//
// MatN shares every kernel with Mat2, Mat3 and Mat4. Determinant, Adjoint
// and Inverse use the closed forms of those types when N is 2, 3 or 4 and
// return ErrUnsupported otherwise.
//
// Methods with a pointer receiver and an "Assign"/"To" name mutate the
// receiver; all others return an independent matrix.
type MatN[T scalar.Real] struct {
	n int
	e []T
	h hooks[T] // nil when N has no closed form
}

func newMatN[T scalar.Real](n int) *MatN[T] {
	h, _ := hooksFor[T](n)

	return &MatN[T]{n: n, e: make([]T, n*n), h: h}
}

// NewMatN returns the N×N zero matrix.
//
// Errors:
//   - ErrInvalidDimensions when n <= 0.
func NewMatN[T scalar.Real](n int) (*MatN[T], error) {
	if n <= 0 {
		return nil, matrixErrorf(opNew, ErrInvalidDimensions)
	}

	return newMatN[T](n), nil
}

// NewMatNFrom copies elems (column-major, or row-major when rowMajor is
// true) into a new N×N matrix.
//
// Errors:
//   - ErrInvalidDimensions when n <= 0.
//   - ErrDimensionMismatch when len(elems) != n*n.
func NewMatNFrom[T scalar.Real](n int, elems []T, rowMajor bool) (*MatN[T], error) {
	m, err := NewMatN[T](n)
	if err != nil {
		return nil, err
	}
	if len(elems) != n*n {
		return nil, matrixErrorf(opNew, ErrDimensionMismatch)
	}
	loadInto(m.e, elems, n, rowMajor)

	return m, nil
}

// IdentityN returns the N×N identity.
func IdentityN[T scalar.Real](n int) (*MatN[T], error) {
	m, err := NewMatN[T](n)
	if err != nil {
		return nil, err
	}
	identityInto(m.e, n)

	return m, nil
}

// Dim returns N.
func (m *MatN[T]) Dim() int { return m.n }

// Elems exposes the column-major storage. Writes through it are visible
// in m.
func (m *MatN[T]) Elems() []T { return m.e }

// Clone returns an independent copy.
func (m *MatN[T]) Clone() *MatN[T] {
	out := &MatN[T]{n: m.n, e: make([]T, len(m.e)), h: m.h}
	copy(out.e, m.e)

	return out
}

// AtIndex returns the element at linear index i.
func (m *MatN[T]) AtIndex(i int) (T, error) {
	if i < 0 || i >= len(m.e) {
		return 0, matrixErrorf(opAt, ErrOutOfRange)
	}

	return m.e[i], nil
}

// SetIndex assigns the element at linear index i.
func (m *MatN[T]) SetIndex(i int, v T) error {
	if i < 0 || i >= len(m.e) {
		return matrixErrorf(opSet, ErrOutOfRange)
	}
	m.e[i] = v

	return nil
}

// At returns element (r, c), i.e. AtIndex(r + c*N).
func (m *MatN[T]) At(r, c int) (T, error) {
	if r < 0 || r >= m.n || c < 0 || c >= m.n {
		return 0, matrixErrorf(opAt, ErrOutOfRange)
	}

	return m.AtIndex(idx(r, c, m.n))
}

// Set assigns element (r, c).
func (m *MatN[T]) Set(r, c int, v T) error {
	if r < 0 || r >= m.n || c < 0 || c >= m.n {
		return matrixErrorf(opSet, ErrOutOfRange)
	}

	return m.SetIndex(idx(r, c, m.n), v)
}

// Equal reports element-wise FEqual; different dimensions are never equal.
func (m *MatN[T]) Equal(o *MatN[T]) bool { return m.n == o.n && equalApprox(m.e, o.e) }

// Compare orders by the raw bytes of the column-major layout.
func (m *MatN[T]) Compare(o *MatN[T]) int { return compareRaw(m.e, o.e) }

// Less is Compare(o) < 0.
func (m *MatN[T]) Less(o *MatN[T]) bool { return m.Compare(o) < 0 }

func (m *MatN[T]) sameDim(o *MatN[T], tag string) error {
	if m.n != o.n {
		return matrixErrorf(tag, ErrDimensionMismatch)
	}

	return nil
}

// Add returns m + o.
func (m *MatN[T]) Add(o *MatN[T]) (*MatN[T], error) {
	if err := m.sameDim(o, opAdd); err != nil {
		return nil, err
	}
	out := newMatN[T](m.n)
	addInto(out.e, m.e, o.e)

	return out, nil
}

// Sub returns m - o.
func (m *MatN[T]) Sub(o *MatN[T]) (*MatN[T], error) {
	if err := m.sameDim(o, opSub); err != nil {
		return nil, err
	}
	out := newMatN[T](m.n)
	subInto(out.e, m.e, o.e)

	return out, nil
}

// AddAssign sets m = m + o.
func (m *MatN[T]) AddAssign(o *MatN[T]) error {
	if err := m.sameDim(o, opAdd); err != nil {
		return err
	}
	addInto(m.e, m.e, o.e)

	return nil
}

// SubAssign sets m = m - o.
func (m *MatN[T]) SubAssign(o *MatN[T]) error {
	if err := m.sameDim(o, opSub); err != nil {
		return err
	}
	subInto(m.e, m.e, o.e)

	return nil
}

// Scale returns s·m.
func (m *MatN[T]) Scale(s T) *MatN[T] {
	out := m.Clone()
	scaleInto(out.e, out.e, s)

	return out
}

// Div returns m / s.
func (m *MatN[T]) Div(s T) *MatN[T] {
	out := m.Clone()
	divInto(out.e, out.e, s)

	return out
}

// Neg returns -m.
func (m *MatN[T]) Neg() *MatN[T] { return m.Scale(-1) }

// ScaleAssign multiplies m by s in place.
func (m *MatN[T]) ScaleAssign(s T) { scaleInto(m.e, m.e, s) }

// DivAssign divides m by s in place.
func (m *MatN[T]) DivAssign(s T) { divInto(m.e, m.e, s) }

// Mul returns m·o.
func (m *MatN[T]) Mul(o *MatN[T]) (*MatN[T], error) {
	if err := m.sameDim(o, opMul); err != nil {
		return nil, err
	}
	out := newMatN[T](m.n)
	mulInto(out.e, m.e, o.e, m.n)

	return out, nil
}

// MulVec returns m·v for a column vector v.
func (m *MatN[T]) MulVec(v vector.VecN[T]) (vector.VecN[T], error) {
	if v.Dim() != m.n {
		return nil, matrixErrorf(opMulVec, ErrDimensionMismatch)
	}
	out := vector.NewN[T](m.n)
	mulVecInto(out, m.e, v, m.n)

	return out, nil
}

// Transpose returns mᵀ.
func (m *MatN[T]) Transpose() *MatN[T] {
	out := newMatN[T](m.n)
	transposeInto(out.e, m.e, m.n)

	return out
}

// TransposeTimes returns mᵀ·o.
func (m *MatN[T]) TransposeTimes(o *MatN[T]) (*MatN[T], error) {
	if err := m.sameDim(o, opMul); err != nil {
		return nil, err
	}
	out := newMatN[T](m.n)
	transposeTimesInto(out.e, m.e, o.e, m.n)

	return out, nil
}

// TimesTranspose returns m·oᵀ.
func (m *MatN[T]) TimesTranspose(o *MatN[T]) (*MatN[T], error) {
	if err := m.sameDim(o, opMul); err != nil {
		return nil, err
	}
	out := newMatN[T](m.n)
	timesTransposeInto(out.e, m.e, o.e, m.n)

	return out, nil
}

// Trace returns the sum of the diagonal.
func (m *MatN[T]) Trace() T { return trace(m.e, m.n) }

// FrobeniusNormSquared returns the sum of squared elements.
func (m *MatN[T]) FrobeniusNormSquared() T { return frobeniusSquared(m.e) }

// FrobeniusNorm returns the square root of FrobeniusNormSquared.
func (m *MatN[T]) FrobeniusNorm() T { return scalar.Sqrt(frobeniusSquared(m.e)) }

// ToRowEchelonForm reduces m in place with partial pivoting and returns
// the number of pivot rows. The original contents are lost.
func (m *MatN[T]) ToRowEchelonForm() int { return rowReduce(m.e, m.n, false) }

// ToReducedRowEchelonForm is ToRowEchelonForm plus elimination above each
// pivot.
func (m *MatN[T]) ToReducedRowEchelonForm() int { return rowReduce(m.e, m.n, true) }

// ToIdentity overwrites m with the identity.
func (m *MatN[T]) ToIdentity() { identityInto(m.e, m.n) }

// ToZero sets every component to zero.
func (m *MatN[T]) ToZero() { clear(m.e) }

// Determinant returns det(m).
//
// Errors:
//   - ErrUnsupported when N is not 2, 3 or 4.
func (m *MatN[T]) Determinant() (T, error) {
	if m.h == nil {
		return 0, matrixErrorf(opDeterminant, ErrUnsupported)
	}

	return m.h.determinant(m.e), nil
}

// Adjoint returns the transposed cofactor matrix.
//
// Errors:
//   - ErrUnsupported when N is not 2, 3 or 4.
func (m *MatN[T]) Adjoint() (*MatN[T], error) {
	if m.h == nil {
		return nil, matrixErrorf(opAdjoint, ErrUnsupported)
	}
	out := newMatN[T](m.n)
	m.h.adjointInto(out.e, m.e)

	return out, nil
}

// Inverse returns Adjoint()/Determinant().
//
// Errors:
//   - ErrUnsupported when N is not 2, 3 or 4.
//   - ErrSingular when det ≈ 0.
func (m *MatN[T]) Inverse() (*MatN[T], error) {
	if m.h == nil {
		return nil, matrixErrorf(opInverse, ErrUnsupported)
	}
	out := newMatN[T](m.n)
	if err := inverseInto(out.e, m.e, m.h); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return out, nil
}

// RowMajor writes m row by row into out[:N*N].
//
// Errors:
//   - ErrBufferTooSmall when len(out) < N*N.
func (m *MatN[T]) RowMajor(out []T) error {
	if len(out) < len(m.e) {
		return matrixErrorf(opRowMajor, ErrBufferTooSmall)
	}
	rowMajorInto(out, m.e, m.n)

	return nil
}

// String renders m row by row, e.g. "[1 0; 0 1]".
func (m *MatN[T]) String() string { return format(m.e, m.n) }
