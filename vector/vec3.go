// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/gldemo/scalar"

// Vec3 is a 3-component vector value.
type Vec3[T scalar.Real] [3]T

// Common instantiations.
type (
	Vec3f = Vec3[float32]
	Vec3d = Vec3[float64]
)

// New3 returns (x, y, z).
func New3[T scalar.Real](x, y, z T) Vec3[T] { return Vec3[T]{x, y, z} }

// From3 copies a 3-element slice into a Vec3.
func From3[T scalar.Real](s []T) (Vec3[T], error) {
	var v Vec3[T]
	if len(s) != len(v) {
		return v, vectorErrorf(opFrom, ErrDimensionMismatch)
	}
	copy(v[:], s)

	return v, nil
}

// UnitX, UnitY and UnitZ return the basis vectors.
func UnitX[T scalar.Real]() Vec3[T] { return Vec3[T]{1, 0, 0} }

// UnitY returns (0, 1, 0).
func UnitY[T scalar.Real]() Vec3[T] { return Vec3[T]{0, 1, 0} }

// UnitZ returns (0, 0, 1).
func UnitZ[T scalar.Real]() Vec3[T] { return Vec3[T]{0, 0, 1} }

// X returns the first component.
func (v Vec3[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vec3[T]) Y() T { return v[1] }

// Z returns the third component.
func (v Vec3[T]) Z() T { return v[2] }

// Dim returns 3.
func (Vec3[T]) Dim() int { return 3 }

// At returns component i.
func (v Vec3[T]) At(i int) (T, error) { return VecN[T](v[:]).At(i) }

// Set assigns component i.
func (v *Vec3[T]) Set(i int, x T) error { return VecN[T](v[:]).Set(i, x) }

// Elems exposes the components as a slice aliasing v.
func (v *Vec3[T]) Elems() []T { return v[:] }

// Add returns v + w.
func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] { addInto(v[:], v[:], w[:]); return v }

// Sub returns v - w.
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] { subInto(v[:], v[:], w[:]); return v }

// Scale returns v multiplied by s.
func (v Vec3[T]) Scale(s T) Vec3[T] { scaleInto(v[:], v[:], s); return v }

// Div returns v divided by s.
func (v Vec3[T]) Div(s T) Vec3[T] { divInto(v[:], v[:], s); return v }

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] { return Vec3[T]{-v[0], -v[1], -v[2]} }

// Mul returns the componentwise product.
func (v Vec3[T]) Mul(w Vec3[T]) Vec3[T] { return Vec3[T]{v[0] * w[0], v[1] * w[1], v[2] * w[2]} }

// AddAssign adds w to v in place.
func (v *Vec3[T]) AddAssign(w Vec3[T]) { addInto(v[:], v[:], w[:]) }

// SubAssign subtracts w from v in place.
func (v *Vec3[T]) SubAssign(w Vec3[T]) { subInto(v[:], v[:], w[:]) }

// ScaleAssign multiplies v by s in place.
func (v *Vec3[T]) ScaleAssign(s T) { scaleInto(v[:], v[:], s) }

// DivAssign divides v by s in place.
func (v *Vec3[T]) DivAssign(s T) { divInto(v[:], v[:], s) }

// Equal reports componentwise FEqual.
func (v Vec3[T]) Equal(w Vec3[T]) bool { return equal(v[:], w[:]) }

// Compare orders by raw component bytes.
func (v Vec3[T]) Compare(w Vec3[T]) int { return compareRaw(v[:], w[:]) }

// Less is Compare(w) < 0.
func (v Vec3[T]) Less(w Vec3[T]) bool { return v.Compare(w) < 0 }

// Dot returns the dot product of v and w.
func (v Vec3[T]) Dot(w Vec3[T]) T { return dot(v[:], w[:]) }

// Length returns the Euclidean length.
func (v Vec3[T]) Length() T { return length(v[:]) }

// SquaredLength returns the squared Euclidean length.
func (v Vec3[T]) SquaredLength() T { return dot(v[:], v[:]) }

// Normalize scales v to unit length and returns the previous length; a length ≈ 0 leaves v unchanged and returns 0.
func (v *Vec3[T]) Normalize() T { return normalize(v[:]) }

// UnitVector returns v scaled to unit length, or v unchanged when its length ≈ 0.
func (v Vec3[T]) UnitVector() Vec3[T] { normalize(v[:]); return v }

// ScalarProjection returns the signed length of v along w.
func (v Vec3[T]) ScalarProjection(w Vec3[T]) T { return scalarProjection(v[:], w[:]) }

// VectorProjection returns the component of v along w.
func (v Vec3[T]) VectorProjection(w Vec3[T], isUnit bool) Vec3[T] {
	var out Vec3[T]
	projectInto(out[:], v[:], w[:], isUnit)

	return out
}

// ToZero sets every component to 0.
func (v *Vec3[T]) ToZero() { *v = Vec3[T]{} }

// Cross returns v × w.
func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// UnitCross returns the normalized cross product.
func (v Vec3[T]) UnitCross(w Vec3[T]) Vec3[T] { return v.Cross(w).UnitVector() }

// Homogeneous lifts v to a Vec4 with the given w.
func (v Vec3[T]) Homogeneous(w T) Vec4[T] { return Vec4[T]{v[0], v[1], v[2], w} }

// String formats v for diagnostics.
func (v Vec3[T]) String() string { return format(v[:]) }

// Orthonormalize3 applies Gram-Schmidt to u, v, w in that order: u is
// normalized, v loses its u component and is normalized, w loses its u and v
// components and is normalized.
func Orthonormalize3[T scalar.Real](u, v, w *Vec3[T]) {
	u.Normalize()

	*v = v.Sub(u.Scale(u.Dot(*v)))
	v.Normalize()

	*w = w.Sub(u.Scale(u.Dot(*w))).Sub(v.Scale(v.Dot(*w)))
	w.Normalize()
}

// OrthonormalBasis3 completes w into a right-handed orthonormal basis
// (u, v, w) with u × v = w. Pass isUnit when w is already normalized.
//
// u is built from the two components of w with the largest magnitude, so the
// division is never by a value near zero unless w itself is ≈ 0.
func OrthonormalBasis3[T scalar.Real](w Vec3[T], isUnit bool) (u, v, wn Vec3[T]) {
	if !isUnit {
		w.Normalize()
	}
	if scalar.Abs(w[0]) >= scalar.Abs(w[1]) {
		inv := 1 / scalar.Sqrt(w[0]*w[0]+w[2]*w[2])
		u = Vec3[T]{-w[2] * inv, 0, w[0] * inv}
	} else {
		inv := 1 / scalar.Sqrt(w[1]*w[1]+w[2]*w[2])
		u = Vec3[T]{0, w[2] * inv, -w[1] * inv}
	}
	v = w.Cross(u)

	return u, v, w
}
