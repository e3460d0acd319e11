// SPDX-License-Identifier: MIT

// Package vector provides Euclidean vectors generic over scalar.Real.
//
// Vec2, Vec3 and Vec4 are fixed-size array values: assignment copies, and
// value-receiver methods return new vectors. Pointer-receiver methods
// (Normalize, Set, *Assign) mutate the receiver in place. VecN is the
// run-time sized counterpart over a caller-owned slice; all four share the
// same slice kernels.
//
// Equality is approximate (scalar.FEqual per component). Compare and Less
// induce a deterministic total order over the raw little-endian bytes of
// the components, suitable for sorted containers but not for geometry.
//
// Quick tour:
//
//	a := vector.New3(1.0, 0, 0)
//	b := vector.New3(0.0, 1, 0)
//	n := a.Cross(b)          // (0, 0, 1)
//	l := n.Scale(3).Length() // 3
//	u, v, w := vector.OrthonormalBasis3(n, true)
package vector
