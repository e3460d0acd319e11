// SPDX-License-Identifier: MIT
// Package matrix: 4×4 projection and reflection constructors. All
// projections follow the right-handed OpenGL convention: the camera looks
// down -z and visible depth maps to NDC [-1, 1].

package matrix

import (
	"github.com/katalvlaran/gldemo/scalar"
	"github.com/katalvlaran/gldemo/vector"
)

// NewPerspectiveFOV returns a perspective projection with a vertical field
// of view of fovY degrees.
//
// Implementation:
//   - f = 1/tan(fovY·π/360)
//   - m00 = f/aspect, m11 = f, m22 = (far+near)/(near-far),
//     m23 = 2·far·near/(near-far), m32 = -1, all other entries 0.
//
// Errors:
//   - ErrInvalidProjection unless 0 < fovY < 180, aspect > 0, near > 0 and
//     near != far.
func NewPerspectiveFOV[T scalar.Real](fovY, aspect, near, far T) (Mat4[T], error) {
	var m Mat4[T]
	if fovY <= 0 || fovY >= 180 || aspect <= 0 || near <= 0 || scalar.FEqual(near, far) {
		return m, matrixErrorf(opPerspective, ErrInvalidProjection)
	}
	f := 1 / scalar.Tan(fovY*T(scalar.Pi)/360)

	m[idx(0, 0, 4)] = f / aspect
	m[idx(1, 1, 4)] = f
	m[idx(2, 2, 4)] = (far + near) / (near - far)
	m[idx(2, 3, 4)] = 2 * far * near / (near - far)
	m[idx(3, 2, 4)] = -1

	return m, nil
}

// NewOrthographic returns the parallel projection of the box
// [left, right]×[bottom, top]×[-near, -far] onto the NDC cube.
//
// Errors:
//   - ErrInvalidProjection when any extent is ≈ 0.
func NewOrthographic[T scalar.Real](left, right, top, bottom, near, far T) (Mat4[T], error) {
	var m Mat4[T]
	if scalar.FEqual(left, right) || scalar.FEqual(top, bottom) || scalar.FEqual(near, far) {
		return m, matrixErrorf(opOrtho, ErrInvalidProjection)
	}
	w, h, d := right-left, top-bottom, far-near

	m[idx(0, 0, 4)] = 2 / w
	m[idx(1, 1, 4)] = 2 / h
	m[idx(2, 2, 4)] = -2 / d
	m[idx(0, 3, 4)] = -(right + left) / w
	m[idx(1, 3, 4)] = -(top + bottom) / h
	m[idx(2, 3, 4)] = -(far + near) / d
	m[idx(3, 3, 4)] = 1

	return m, nil
}

// NewReflection3 returns I - 2·n·nᵀ, the mirror through the plane
// orthogonal to axis (n = axis normalized).
//
// Errors:
//   - ErrZeroAxis when |axis| ≈ 0.
func NewReflection3[T scalar.Real](axis vector.Vec3[T]) (Mat3[T], error) {
	if axis.Normalize() == 0 {
		return Identity3[T](), matrixErrorf(opReflection, ErrZeroAxis)
	}
	m := Identity3[T]()
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			m[idx(r, c, 3)] -= 2 * axis[r] * axis[c]
		}
	}

	return m, nil
}

// NewReflection returns the affine form of NewReflection3.
func NewReflection[T scalar.Real](axis vector.Vec3[T]) (Mat4[T], error) {
	r, err := NewReflection3(axis)
	if err != nil {
		return Identity4[T](), err
	}

	return Compose4(r, vector.Vec3[T]{}), nil
}

// ProjectPoint returns the perspective-divided xyz of m·(p, 1). ok is false
// when the homogeneous w is ≈ 0.
func (m Mat4[T]) ProjectPoint(p vector.Vec3[T]) (ndc vector.Vec3[T], ok bool) {
	h := m.MulVec(p.Homogeneous(1))
	if scalar.IsZero(h[3]) {
		return ndc, false
	}

	return h.XYZ().Div(h[3]), true
}
