// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/gldemo/scalar"

// VecN is an N-component vector over a caller-owned slice. It shares every
// algorithm with the fixed-size Vec2, Vec3 and Vec4 types; use it when the
// dimension is only known at run time.
//
// Binary operations validate that both operands have the same length and
// return ErrDimensionMismatch otherwise. Value-producing methods allocate a
// fresh slice; *Assign methods write into the receiver.
type VecN[T scalar.Real] []T

// NewN returns a zero vector of dimension n.
func NewN[T scalar.Real](n int) VecN[T] { return make(VecN[T], n) }

// FromN copies s into a new VecN.
func FromN[T scalar.Real](s []T) VecN[T] {
	v := make(VecN[T], len(s))
	copy(v, s)

	return v
}

// Dim returns the number of components.
func (v VecN[T]) Dim() int { return len(v) }

// At returns component i.
func (v VecN[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v) {
		return 0, vectorErrorf(opAt, ErrOutOfRange)
	}

	return v[i], nil
}

// Set assigns component i.
func (v VecN[T]) Set(i int, x T) error {
	if i < 0 || i >= len(v) {
		return vectorErrorf(opSet, ErrOutOfRange)
	}
	v[i] = x

	return nil
}

// Clone returns an independent copy.
func (v VecN[T]) Clone() VecN[T] { return FromN(v) }

func (v VecN[T]) sameDim(w VecN[T], tag string) error {
	if len(v) != len(w) {
		return vectorErrorf(tag, ErrDimensionMismatch)
	}

	return nil
}

// Add returns v + w.
func (v VecN[T]) Add(w VecN[T]) (VecN[T], error) {
	if err := v.sameDim(w, opAdd); err != nil {
		return nil, err
	}
	out := make(VecN[T], len(v))
	addInto(out, v, w)

	return out, nil
}

// Sub returns v - w.
func (v VecN[T]) Sub(w VecN[T]) (VecN[T], error) {
	if err := v.sameDim(w, opSub); err != nil {
		return nil, err
	}
	out := make(VecN[T], len(v))
	subInto(out, v, w)

	return out, nil
}

// AddAssign sets v = v + w.
func (v VecN[T]) AddAssign(w VecN[T]) error {
	if err := v.sameDim(w, opAdd); err != nil {
		return err
	}
	addInto(v, v, w)

	return nil
}

// SubAssign sets v = v - w.
func (v VecN[T]) SubAssign(w VecN[T]) error {
	if err := v.sameDim(w, opSub); err != nil {
		return err
	}
	subInto(v, v, w)

	return nil
}

// Scale returns s·v.
func (v VecN[T]) Scale(s T) VecN[T] {
	out := make(VecN[T], len(v))
	scaleInto(out, v, s)

	return out
}

// Div returns v / s.
func (v VecN[T]) Div(s T) VecN[T] {
	out := make(VecN[T], len(v))
	divInto(out, v, s)

	return out
}

// Neg returns -v.
func (v VecN[T]) Neg() VecN[T] { return v.Scale(-1) }

// ScaleAssign sets v = s·v.
func (v VecN[T]) ScaleAssign(s T) { scaleInto(v, v, s) }

// DivAssign sets v = v / s.
func (v VecN[T]) DivAssign(s T) { divInto(v, v, s) }

// Equal reports componentwise FEqual; vectors of different dimension are
// never equal.
func (v VecN[T]) Equal(w VecN[T]) bool { return len(v) == len(w) && equal(v, w) }

// Compare orders v and w by their raw component bytes (shorter first on a
// common prefix). Use it for deterministic sorting only.
func (v VecN[T]) Compare(w VecN[T]) int { return compareRaw(v, w) }

// Less is Compare(w) < 0.
func (v VecN[T]) Less(w VecN[T]) bool { return v.Compare(w) < 0 }

// Dot returns the inner product.
func (v VecN[T]) Dot(w VecN[T]) (T, error) {
	if err := v.sameDim(w, opDot); err != nil {
		return 0, err
	}

	return dot(v, w), nil
}

// Length returns the Euclidean norm.
func (v VecN[T]) Length() T { return length(v) }

// SquaredLength returns dot(v, v).
func (v VecN[T]) SquaredLength() T { return dot(v, v) }

// Normalize scales v to unit length in place and returns the previous
// length. A vector of length ≈ 0 is left unchanged and 0 is returned.
func (v VecN[T]) Normalize() T { return normalize(v) }

// UnitVector returns a normalized copy of v.
func (v VecN[T]) UnitVector() VecN[T] {
	out := v.Clone()
	normalize(out)

	return out
}

// ScalarProjection returns the signed length of v along w.
func (v VecN[T]) ScalarProjection(w VecN[T]) (T, error) {
	if err := v.sameDim(w, opProject); err != nil {
		return 0, err
	}

	return scalarProjection(v, w), nil
}

// VectorProjection returns the component of v along w. Pass isUnit when w
// is already normalized to skip the division by |w|².
func (v VecN[T]) VectorProjection(w VecN[T], isUnit bool) (VecN[T], error) {
	if err := v.sameDim(w, opProject); err != nil {
		return nil, err
	}
	out := make(VecN[T], len(v))
	projectInto(out, v, w, isUnit)

	return out, nil
}

// ToZero sets every component to 0.
func (v VecN[T]) ToZero() { clear(v) }

// String formats v as "(x, y, ...)".
func (v VecN[T]) String() string { return format(v) }
