// SPDX-License-Identifier: MIT

// Package scalar holds the numeric foundation shared by the vector and
// matrix packages: the Real constraint, the tolerance policy used for every
// floating-point comparison, thin forwarding wrappers over package math, and
// closed-form real roots of quadratic and cubic polynomials.
//
// Every helper is generic over Real and computes in float64 internally, so a
// float32 caller pays one widening per call and nothing else.
package scalar

import "math"

// Real is the scalar type every vector and matrix is generic over.
type Real interface {
	~float32 | ~float64
}

// DefaultEpsilon is the relative tolerance of FEqual.
const DefaultEpsilon = 1e-6

// Frequently used angle constants.
const (
	Pi       = math.Pi
	TwoPi    = 2 * math.Pi
	HalfPi   = math.Pi / 2
	InvPi    = 1 / math.Pi
	InvTwoPi = 1 / (2 * math.Pi)

	// DegToRad converts degrees to radians by multiplication.
	DegToRad = math.Pi / 180
	// RadToDeg converts radians to degrees by multiplication.
	RadToDeg = 180 / math.Pi
)

// Epsilon returns DefaultEpsilon converted to T.
func Epsilon[T Real]() T { return T(DefaultEpsilon) }

// FEqual reports whether a and b are equal within DefaultEpsilon, scaled by
// the larger of 1, |a| and |b|. Near zero the test is absolute; for large
// magnitudes it becomes relative.
//
// Complexity: O(1).
func FEqual[T Real](a, b T) bool {
	fa, fb := float64(a), float64(b)
	scale := math.Max(1, math.Max(math.Abs(fa), math.Abs(fb)))

	return math.Abs(fa-fb) <= DefaultEpsilon*scale
}

// IsZero is FEqual(v, 0).
func IsZero[T Real](v T) bool { return FEqual(v, 0) }

// Abs returns |v|.
func Abs[T Real](v T) T { return T(math.Abs(float64(v))) }

// Pow returns base**exp.
func Pow[T Real](base, exp T) T { return T(math.Pow(float64(base), float64(exp))) }

// Sqrt returns the square root of v.
func Sqrt[T Real](v T) T { return T(math.Sqrt(float64(v))) }

// Cbrt returns the real cube root of v, negative for negative v.
func Cbrt[T Real](v T) T { return T(math.Cbrt(float64(v))) }

// Sin returns the sine of v radians.
func Sin[T Real](v T) T { return T(math.Sin(float64(v))) }

// Cos returns the cosine of v radians.
func Cos[T Real](v T) T { return T(math.Cos(float64(v))) }

// Tan returns the tangent of v radians.
func Tan[T Real](v T) T { return T(math.Tan(float64(v))) }

// Asin returns the arcsine of v in radians.
func Asin[T Real](v T) T { return T(math.Asin(float64(v))) }

// Acos returns the arccosine of v in radians.
func Acos[T Real](v T) T { return T(math.Acos(float64(v))) }

// Atan returns the arctangent of v in radians.
func Atan[T Real](v T) T { return T(math.Atan(float64(v))) }

// Atan2 returns the angle of the point (x, y), in (-Pi, Pi].
func Atan2[T Real](y, x T) T { return T(math.Atan2(float64(y), float64(x))) }

// Clamp limits v to [lo, hi].
func Clamp[T Real](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// Radians converts degrees to radians.
func Radians[T Real](deg T) T { return T(float64(deg) * DegToRad) }

// Degrees converts radians to degrees.
func Degrees[T Real](rad T) T { return T(float64(rad) * RadToDeg) }
