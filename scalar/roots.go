// SPDX-License-Identifier: MIT

package scalar

import "math"

// QuadraticRealRoots solves a·x² + b·x + c = 0.
//
// It returns both real roots (repeated when the discriminant is zero) and
// true, or false when the discriminant is negative or a is ≈ 0. The roots
// array is unspecified when ok is false.
//
// Complexity: O(1).
func QuadraticRealRoots[T Real](a, b, c T) (roots [2]T, ok bool) {
	if IsZero(a) {
		return roots, false
	}
	fa, fb, fc := float64(a), float64(b), float64(c)

	disc := fb*fb - 4*fa*fc
	if disc < 0 {
		return roots, false
	}
	sq := math.Sqrt(disc)
	roots[0] = T((-fb + sq) / (2 * fa))
	roots[1] = T((-fb - sq) / (2 * fa))

	return roots, true
}

// CubicRealRoots solves a·x³ + b·x² + c·x + d = 0 with Cardano's method on
// the depressed cubic y³ + p·y + q = 0, x = y - b/(3a).
//
// Behavior:
//   - Δ = (p/3)³ + (q/2)² < 0: three distinct real roots via the
//     trigonometric form; ok is true.
//   - Δ ≥ 0: u and v are the real cube roots of -q/2 ± √Δ and
//     roots[0] = u + v - b/(3a) is always filled. The remaining roots are
//     reported (as the repeated pair -(u+v)/2) only when u ≈ v; otherwise
//     ok is false and roots[1:] are unspecified.
//   - a ≈ 0 is not a cubic: ok is false.
//
// Complexity: O(1).
func CubicRealRoots[T Real](a, b, c, d T) (roots [3]T, ok bool) {
	if IsZero(a) {
		return roots, false
	}
	fa, fb, fc, fd := float64(a), float64(b), float64(c), float64(d)

	ba := fb / fa
	p := (3*fc/fa - ba*ba) / 3
	q := (2*ba*ba*ba - 9*fb*fc/(fa*fa) + 27*fd/fa) / 27
	shift := -ba / 3

	p3 := p / 3
	halfQ := q / 2
	disc := p3*p3*p3 + halfQ*halfQ

	if disc < 0 {
		// p < 0 here, so |p/3|³ > 0.
		arg := math.Max(-1, math.Min(1, -halfQ/math.Sqrt(-p3*p3*p3)))
		phi := math.Acos(arg)
		r := 2 * math.Sqrt(-p3)
		for k := 0; k < 3; k++ {
			roots[k] = T(r*math.Cos((phi+TwoPi*float64(k))/3) + shift)
		}

		return roots, true
	}

	sq := math.Sqrt(disc)
	u := math.Cbrt(-halfQ + sq)
	v := math.Cbrt(-halfQ - sq)
	roots[0] = T(u + v + shift)
	if !FEqual(u, v) {
		return roots, false
	}
	roots[1] = T(-(u+v)/2 + shift)
	roots[2] = roots[1]

	return roots, true
}
