// SPDX-License-Identifier: MIT
// Package matrix: rotations, axis-angle conversion, column orthonormalization
// and the affine helpers (compose/split 4×4 from a 3×3 block plus
// translation) used by transform hierarchies.

package matrix

import (
	"github.com/katalvlaran/gldemo/scalar"
	"github.com/katalvlaran/gldemo/vector"
)

// NewRotation2 returns the counter-clockwise rotation by angle radians.
func NewRotation2[T scalar.Real](angle T) Mat2[T] {
	c, s := scalar.Cos(angle), scalar.Sin(angle)

	return Mat2[T]{c, s, -s, c}
}

// Angle returns the rotation angle of m, atan2(m10, m00). Meaningful for
// rotation matrices only.
func (m Mat2[T]) Angle() T { return scalar.Atan2(m[1], m[0]) }

// Orthonormalize applies Gram-Schmidt to the columns of m in place.
func (m *Mat2[T]) Orthonormalize() {
	c0, c1 := m.col(0), m.col(1)
	vector.Orthonormalize2(&c0, &c1)
	*m = FromColumns2(c0, c1)
}

// Orthonormalize applies Gram-Schmidt to the columns of m in place.
func (m *Mat3[T]) Orthonormalize() {
	c0, c1, c2 := m.col(0), m.col(1), m.col(2)
	vector.Orthonormalize3(&c0, &c1, &c2)
	*m = FromColumns3(c0, c1, c2)
}

// NewRotation3 returns the rotation by angle radians about axis
// (right-handed). The axis does not need unit length.
//
// Errors:
//   - ErrZeroAxis when |axis| ≈ 0.
func NewRotation3[T scalar.Real](angle T, axis vector.Vec3[T]) (Mat3[T], error) {
	var m Mat3[T]
	if err := m.FromAxisAngle(angle, axis); err != nil {
		return Identity3[T](), err
	}

	return m, nil
}

// FromAxisAngle overwrites m with the Rodrigues rotation
// R = I + sin θ·A + (1-cos θ)·A², where A is the skew-symmetric cross-product
// matrix of the normalized axis.
//
// Errors:
//   - ErrZeroAxis when |axis| ≈ 0; m is left unchanged.
func (m *Mat3[T]) FromAxisAngle(angle T, axis vector.Vec3[T]) error {
	if axis.Normalize() == 0 {
		return matrixErrorf(opAxisAngle, ErrZeroAxis)
	}
	x, y, z := axis[0], axis[1], axis[2]
	a := Mat3[T]{0, z, -y, -z, 0, x, y, -x, 0}

	r := Identity3[T]()
	r.AddAssign(a.Scale(scalar.Sin(angle)))
	r.AddAssign(a.Mul(a).Scale(1 - scalar.Cos(angle)))
	*m = r

	return nil
}

// ToAxisAngle extracts the rotation angle in [0, π] and unit axis of a
// rotation matrix.
//
// Behavior highlights:
//   - θ ≈ 0: returns 0 and the x axis (any axis is valid).
//   - θ ≈ π: the axis is read from (R + I)/2 = n·nᵀ, sign chosen so its
//     largest component is positive.
//   - otherwise: axis = (R21-R12, R02-R20, R10-R01) / (2 sin θ).
func (m Mat3[T]) ToAxisAngle() (angle T, axis vector.Vec3[T]) {
	cos := scalar.Clamp((m.Trace()-1)/2, -1, 1)
	angle = scalar.Acos(cos)

	switch {
	case scalar.IsZero(angle):
		return 0, vector.UnitX[T]()
	case scalar.FEqual(angle, T(scalar.Pi)):
		b := m.Add(Identity3[T]()).Scale(0.5)
		i := 0
		for k := 1; k < 3; k++ {
			if b[idx(k, k, 3)] > b[idx(i, i, 3)] {
				i = k
			}
		}
		ni := scalar.Sqrt(b[idx(i, i, 3)])
		for k := 0; k < 3; k++ {
			axis[k] = b[idx(i, k, 3)] / ni
		}
		axis[i] = ni
		axis.Normalize()

		return angle, axis
	}

	axis = vector.New3(
		m[idx(2, 1, 3)]-m[idx(1, 2, 3)],
		m[idx(0, 2, 3)]-m[idx(2, 0, 3)],
		m[idx(1, 0, 3)]-m[idx(0, 1, 3)],
	)
	axis.Normalize()

	return angle, axis
}

// NewScale3 returns diag(s).
func NewScale3[T scalar.Real](s vector.Vec3[T]) Mat3[T] {
	return Mat3[T]{s[0], 0, 0, 0, s[1], 0, 0, 0, s[2]}
}

// Compose4 embeds block as the upper-left 3×3 of an affine matrix with
// translation t and bottom row (0, 0, 0, 1).
func Compose4[T scalar.Real](block Mat3[T], t vector.Vec3[T]) Mat4[T] {
	var m Mat4[T]
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			m[idx(r, c, 4)] = block[idx(r, c, 3)]
		}
	}
	m[idx(0, 3, 4)], m[idx(1, 3, 4)], m[idx(2, 3, 4)] = t[0], t[1], t[2]
	m[idx(3, 3, 4)] = 1

	return m
}

// Upper3 returns the upper-left 3×3 block.
func (m Mat4[T]) Upper3() Mat3[T] {
	var b Mat3[T]
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			b[idx(r, c, 3)] = m[idx(r, c, 4)]
		}
	}

	return b
}

// Translation returns the xyz part of the last column.
func (m Mat4[T]) Translation() vector.Vec3[T] {
	return vector.New3(m[idx(0, 3, 4)], m[idx(1, 3, 4)], m[idx(2, 3, 4)])
}

// NewTranslation4 returns the affine translation by t.
func NewTranslation4[T scalar.Real](t vector.Vec3[T]) Mat4[T] {
	return Compose4(Identity3[T](), t)
}

// NewScale4 returns the affine scale by s.
func NewScale4[T scalar.Real](s vector.Vec3[T]) Mat4[T] {
	return Compose4(NewScale3(s), vector.Vec3[T]{})
}

// NewRotation4 returns the affine rotation by angle radians about axis.
//
// Errors:
//   - ErrZeroAxis when |axis| ≈ 0.
func NewRotation4[T scalar.Real](angle T, axis vector.Vec3[T]) (Mat4[T], error) {
	r, err := NewRotation3(angle, axis)
	if err != nil {
		return Identity4[T](), err
	}

	return Compose4(r, vector.Vec3[T]{}), nil
}

// FromAxisAngle overwrites m with an affine rotation (zero translation).
func (m *Mat4[T]) FromAxisAngle(angle T, axis vector.Vec3[T]) error {
	r, err := NewRotation3(angle, axis)
	if err != nil {
		return err
	}
	*m = Compose4(r, vector.Vec3[T]{})

	return nil
}

// ToAxisAngle extracts the rotation of the upper-left block.
func (m Mat4[T]) ToAxisAngle() (angle T, axis vector.Vec3[T]) { return m.Upper3().ToAxisAngle() }

// TransformPoint returns the xyz of m·(p, 1).
func (m Mat4[T]) TransformPoint(p vector.Vec3[T]) vector.Vec3[T] {
	return m.MulVec(p.Homogeneous(1)).XYZ()
}

// TransformDirection returns the xyz of m·(d, 0); translation is ignored.
func (m Mat4[T]) TransformDirection(d vector.Vec3[T]) vector.Vec3[T] {
	return m.MulVec(d.Homogeneous(0)).XYZ()
}
