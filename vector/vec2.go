// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/gldemo/scalar"

// Vec2 is a 2-component vector value.
type Vec2[T scalar.Real] [2]T

// Common instantiations.
type (
	Vec2f = Vec2[float32]
	Vec2d = Vec2[float64]
)

// New2 returns (x, y).
func New2[T scalar.Real](x, y T) Vec2[T] { return Vec2[T]{x, y} }

// From2 copies a 2-element slice into a Vec2.
func From2[T scalar.Real](s []T) (Vec2[T], error) {
	var v Vec2[T]
	if len(s) != len(v) {
		return v, vectorErrorf(opFrom, ErrDimensionMismatch)
	}
	copy(v[:], s)

	return v, nil
}

// X returns the first component.
func (v Vec2[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vec2[T]) Y() T { return v[1] }

// Dim returns 2.
func (Vec2[T]) Dim() int { return 2 }

// At returns component i.
func (v Vec2[T]) At(i int) (T, error) { return VecN[T](v[:]).At(i) }

// Set assigns component i.
func (v *Vec2[T]) Set(i int, x T) error { return VecN[T](v[:]).Set(i, x) }

// Elems exposes the components as a slice aliasing v.
func (v *Vec2[T]) Elems() []T { return v[:] }

// Add returns v + w.
func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] { addInto(v[:], v[:], w[:]); return v }

// Sub returns v - w.
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] { subInto(v[:], v[:], w[:]); return v }

// Scale returns v multiplied by s.
func (v Vec2[T]) Scale(s T) Vec2[T] { scaleInto(v[:], v[:], s); return v }

// Div returns v divided by s.
func (v Vec2[T]) Div(s T) Vec2[T] { divInto(v[:], v[:], s); return v }

// Neg returns -v.
func (v Vec2[T]) Neg() Vec2[T] { return Vec2[T]{-v[0], -v[1]} }

// AddAssign adds w to v in place.
func (v *Vec2[T]) AddAssign(w Vec2[T]) { addInto(v[:], v[:], w[:]) }

// SubAssign subtracts w from v in place.
func (v *Vec2[T]) SubAssign(w Vec2[T]) { subInto(v[:], v[:], w[:]) }

// ScaleAssign multiplies v by s in place.
func (v *Vec2[T]) ScaleAssign(s T) { scaleInto(v[:], v[:], s) }

// DivAssign divides v by s in place.
func (v *Vec2[T]) DivAssign(s T) { divInto(v[:], v[:], s) }

// Equal reports componentwise approximate equality (scalar.FEqual).
func (v Vec2[T]) Equal(w Vec2[T]) bool { return equal(v[:], w[:]) }

// Compare orders v and w by their raw little-endian bytes.
func (v Vec2[T]) Compare(w Vec2[T]) int { return compareRaw(v[:], w[:]) }

// Less reports whether v orders before w under Compare.
func (v Vec2[T]) Less(w Vec2[T]) bool { return v.Compare(w) < 0 }

// Dot returns the dot product of v and w.
func (v Vec2[T]) Dot(w Vec2[T]) T { return dot(v[:], w[:]) }

// Length returns the Euclidean length.
func (v Vec2[T]) Length() T { return length(v[:]) }

// SquaredLength returns the squared Euclidean length.
func (v Vec2[T]) SquaredLength() T { return dot(v[:], v[:]) }

// Normalize scales v to unit length and returns the previous length; a length ≈ 0 leaves v unchanged and returns 0.
func (v *Vec2[T]) Normalize() T { return normalize(v[:]) }

// UnitVector returns v scaled to unit length, or v unchanged when its length ≈ 0.
func (v Vec2[T]) UnitVector() Vec2[T] { normalize(v[:]); return v }

// ScalarProjection returns the length of v along w; 0 when w ≈ 0.
func (v Vec2[T]) ScalarProjection(w Vec2[T]) T { return scalarProjection(v[:], w[:]) }

// VectorProjection returns the projection of v onto w. isUnit skips normalizing w.
func (v Vec2[T]) VectorProjection(w Vec2[T], isUnit bool) Vec2[T] {
	var out Vec2[T]
	projectInto(out[:], v[:], w[:], isUnit)

	return out
}

// ToZero sets every component to zero.
func (v *Vec2[T]) ToZero() { *v = Vec2[T]{} }

// Perp returns (y, -x), v rotated a quarter turn clockwise.
func (v Vec2[T]) Perp() Vec2[T] { return Vec2[T]{v[1], -v[0]} }

// UnitPerp returns the normalized Perp.
func (v Vec2[T]) UnitPerp() Vec2[T] { return v.Perp().UnitVector() }

// DotPerp returns dot(v, w.Perp()).
func (v Vec2[T]) DotPerp(w Vec2[T]) T { return v[0]*w[1] - v[1]*w[0] }

// String formats v for diagnostics.
func (v Vec2[T]) String() string { return format(v[:]) }

// Orthonormalize2 normalizes u, then removes the u component from v and
// normalizes it.
func Orthonormalize2[T scalar.Real](u, v *Vec2[T]) {
	u.Normalize()
	*v = v.Sub(u.Scale(u.Dot(*v)))
	v.Normalize()
}

// OrthonormalBasis2 returns the orthonormal pair (v.Perp(), v) for the input
// direction v. Pass isUnit when v is already normalized.
func OrthonormalBasis2[T scalar.Real](v Vec2[T], isUnit bool) (u, vn Vec2[T]) {
	if !isUnit {
		v.Normalize()
	}

	return v.Perp(), v
}
