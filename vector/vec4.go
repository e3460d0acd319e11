// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/gldemo/scalar"

// Vec4 is a 4-component vector value, typically a homogeneous point
// (w = 1) or direction (w = 0).
type Vec4[T scalar.Real] [4]T

// Common instantiations.
type (
	Vec4f = Vec4[float32]
	Vec4d = Vec4[float64]
)

// New4 returns (x, y, z, w).
func New4[T scalar.Real](x, y, z, w T) Vec4[T] { return Vec4[T]{x, y, z, w} }

// From4 copies a 4-element slice into a Vec4.
func From4[T scalar.Real](s []T) (Vec4[T], error) {
	var v Vec4[T]
	if len(s) != len(v) {
		return v, vectorErrorf(opFrom, ErrDimensionMismatch)
	}
	copy(v[:], s)

	return v, nil
}

// X returns the first component.
func (v Vec4[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vec4[T]) Y() T { return v[1] }

// Z returns the third component.
func (v Vec4[T]) Z() T { return v[2] }

// W returns the fourth component.
func (v Vec4[T]) W() T { return v[3] }

// XYZ drops the w component.
func (v Vec4[T]) XYZ() Vec3[T] { return Vec3[T]{v[0], v[1], v[2]} }

// Dim returns 4.
func (Vec4[T]) Dim() int { return 4 }

// At returns component i; ErrOutOfRange when i is out of range.
func (v Vec4[T]) At(i int) (T, error) { return VecN[T](v[:]).At(i) }

// Set stores x at component i; ErrOutOfRange when i is out of range.
func (v *Vec4[T]) Set(i int, x T) error { return VecN[T](v[:]).Set(i, x) }

// Elems returns the components as a slice aliasing v.
func (v *Vec4[T]) Elems() []T { return v[:] }

// Add returns v + w.
func (v Vec4[T]) Add(w Vec4[T]) Vec4[T] { addInto(v[:], v[:], w[:]); return v }

// Sub returns v - w.
func (v Vec4[T]) Sub(w Vec4[T]) Vec4[T] { subInto(v[:], v[:], w[:]); return v }

// Scale returns v multiplied by s.
func (v Vec4[T]) Scale(s T) Vec4[T] { scaleInto(v[:], v[:], s); return v }

// Div returns v divided by s.
func (v Vec4[T]) Div(s T) Vec4[T] { divInto(v[:], v[:], s); return v }

// Neg returns -v.
func (v Vec4[T]) Neg() Vec4[T] { return Vec4[T]{-v[0], -v[1], -v[2], -v[3]} }

// AddAssign adds w to v in place.
func (v *Vec4[T]) AddAssign(w Vec4[T]) { addInto(v[:], v[:], w[:]) }

// SubAssign subtracts w from v in place.
func (v *Vec4[T]) SubAssign(w Vec4[T]) { subInto(v[:], v[:], w[:]) }

// ScaleAssign multiplies v by s in place.
func (v *Vec4[T]) ScaleAssign(s T) { scaleInto(v[:], v[:], s) }

// DivAssign divides v by s in place.
func (v *Vec4[T]) DivAssign(s T) { divInto(v[:], v[:], s) }

// Equal reports componentwise approximate equality (scalar.FEqual).
func (v Vec4[T]) Equal(w Vec4[T]) bool { return equal(v[:], w[:]) }

// Compare orders v and w by their raw little-endian bytes.
func (v Vec4[T]) Compare(w Vec4[T]) int { return compareRaw(v[:], w[:]) }

// Less reports whether v orders before w under Compare.
func (v Vec4[T]) Less(w Vec4[T]) bool { return v.Compare(w) < 0 }

// Dot returns the dot product of v and w.
func (v Vec4[T]) Dot(w Vec4[T]) T { return dot(v[:], w[:]) }

// Length returns the Euclidean length.
func (v Vec4[T]) Length() T { return length(v[:]) }

// SquaredLength returns the squared Euclidean length.
func (v Vec4[T]) SquaredLength() T { return dot(v[:], v[:]) }

// Normalize scales v to unit length and returns the previous length; a length ≈ 0 leaves v unchanged and returns 0.
func (v *Vec4[T]) Normalize() T { return normalize(v[:]) }

// UnitVector returns v scaled to unit length, or v unchanged when its length ≈ 0.
func (v Vec4[T]) UnitVector() Vec4[T] { normalize(v[:]); return v }

// ScalarProjection returns the length of v along w; 0 when w ≈ 0.
func (v Vec4[T]) ScalarProjection(w Vec4[T]) T { return scalarProjection(v[:], w[:]) }

// VectorProjection returns the projection of v onto w. isUnit skips normalizing w.
func (v Vec4[T]) VectorProjection(w Vec4[T], isUnit bool) Vec4[T] {
	var out Vec4[T]
	projectInto(out[:], v[:], w[:], isUnit)

	return out
}

// ToZero sets every component to zero.
func (v *Vec4[T]) ToZero() { *v = Vec4[T]{} }

// Cross returns the cross product of the xyz parts with w = 0.
func (v Vec4[T]) Cross(w Vec4[T]) Vec4[T] {
	return v.XYZ().Cross(w.XYZ()).Homogeneous(0)
}

// UnitCross returns the normalized Cross.
func (v Vec4[T]) UnitCross(w Vec4[T]) Vec4[T] { return v.Cross(w).UnitVector() }

// String formats v for diagnostics.
func (v Vec4[T]) String() string { return format(v[:]) }
