// SPDX-License-Identifier: MIT
// Package matrix: closed-form eigen-decomposition of 2×2 and symmetric 3×3
// matrices.
//
// Purpose:
//   - Find eigenvalues as real roots of the characteristic polynomial
//     (scalar.QuadraticRealRoots / scalar.CubicRealRoots).
//   - Find each eigenvector from the null space of M - λI.
//   - Return (rot, diag) with rot's columns the unit eigenvectors and
//     diag = rot⁻¹·M·rot.
//
// Notes:
//   - Repeated eigenvalues leave an eigenspace of dimension ≥ 2; that case
//     is reported as ErrUnderdetermined instead of picking an arbitrary basis.

package matrix

import (
	"github.com/katalvlaran/gldemo/scalar"
	"github.com/katalvlaran/gldemo/vector"
)

// Diagonalize decomposes m into rot·diag·rot⁻¹.
//
// Implementation:
//   - Stage 1: λ² - trace·λ + det = 0.
//   - Stage 2: an already diagonal m yields (I, m) directly.
//   - Stage 3: each eigenvector comes from row 0 of M - λI, or row 1 when
//     m01 ≈ 0.
//
// Errors:
//   - ErrNoRealEigenvalues when the discriminant is negative.
//   - ErrUnderdetermined when the eigenvectors are not independent.
func (m Mat2[T]) Diagonalize() (rot, diag Mat2[T], err error) {
	roots, ok := scalar.QuadraticRealRoots(1, -m.Trace(), m.Determinant())
	if !ok {
		return rot, diag, matrixErrorf(opDiagonalize, ErrNoRealEigenvalues)
	}

	m00, m10, m01, m11 := m[0], m[1], m[2], m[3]
	if scalar.IsZero(m01) && scalar.IsZero(m10) {
		return Identity2[T](), Mat2[T]{m00, 0, 0, m11}, nil
	}

	for k, lambda := range roots {
		var v vector.Vec2[T]
		if !scalar.IsZero(m01) {
			v = vector.New2(1, -(m00-lambda)/m01)
		} else {
			v = vector.New2(-(m11-lambda)/m10, 1)
		}
		v.Normalize()
		_ = rot.SetColumn(k, v)
	}

	inv, err := rot.Inverse()
	if err != nil {
		return rot, diag, matrixErrorf(opDiagonalize, ErrUnderdetermined)
	}

	return rot, inv.Mul(m).Mul(rot), nil
}

// Diagonalize decomposes a symmetric m into rot·diag·rot⁻¹.
//
// Implementation:
//   - Stage 1: λ³ - trace·λ² + c·λ - det = 0 where c is the sum of the
//     principal 2×2 minors.
//   - Stage 2: for every λ, reduce M - λI to RREF. Exactly one zero row is
//     required; the free column is set to 1 and each pivot variable is
//     back-substituted from its row.
//   - Stage 3: normalize, assemble rot, diag = rot⁻¹·M·rot.
//
// Behavior highlights:
//   - All stages run in float64 and the results are narrowed to T, so a
//     float32 matrix is held to the same zero-row tolerance as a float64 one.
//
// Errors:
//   - ErrNoRealEigenvalues when the cubic has fewer than three real roots.
//   - ErrUnderdetermined when M - λI has two or more zero rows (repeated λ).
//   - ErrNoEigenvector when M - λI has full rank within tolerance.
//
// Complexity:
//   - Time O(1) (three 3×3 reductions), Space O(1).
func (m Mat3[T]) Diagonalize() (rot, diag Mat3[T], err error) {
	var wide Mat3d
	for i, x := range m {
		wide[i] = float64(x)
	}

	wr, wd, err := diagonalize3(wide)
	if err != nil {
		return rot, diag, matrixErrorf(opDiagonalize, err)
	}
	for i := range wr {
		rot[i], diag[i] = T(wr[i]), T(wd[i])
	}

	return rot, diag, nil
}

func diagonalize3(m Mat3d) (rot, diag Mat3d, err error) {
	m00, m10, m20 := m[0], m[1], m[2]
	m01, m11, m21 := m[3], m[4], m[5]
	m02, m12, m22 := m[6], m[7], m[8]

	c := m00*m11 + m00*m22 + m22*m11 - m01*m10 - m12*m21 - m02*m20
	roots, ok := scalar.CubicRealRoots(1, -m.Trace(), c, -m.Determinant())
	if !ok {
		return rot, diag, ErrNoRealEigenvalues
	}

	for k, lambda := range roots {
		v, err := eigenvector3(m, lambda)
		if err != nil {
			return rot, diag, err
		}
		_ = rot.SetColumn(k, v)
	}

	inv, err := rot.Inverse()
	if err != nil {
		return rot, diag, ErrUnderdetermined
	}

	return rot, inv.Mul(m).Mul(rot), nil
}

// eigenvector3 returns a unit vector spanning the null space of m - λI.
func eigenvector3(m Mat3d, lambda float64) (vector.Vec3d, error) {
	var v vector.Vec3d

	t := m.Sub(Identity3[float64]().Scale(lambda))
	t.ToReducedRowEchelonForm()

	zeroRows := 0
	var pivotRows, pivotCols []int
	for r := 0; r < 3; r++ {
		p := -1
		for c := 0; c < 3; c++ {
			if !scalar.IsZero(t[idx(r, c, 3)]) {
				p = c
				break
			}
		}
		if p < 0 {
			zeroRows++
			continue
		}
		pivotRows = append(pivotRows, r)
		pivotCols = append(pivotCols, p)
	}

	switch {
	case zeroRows >= 2:
		return v, ErrUnderdetermined
	case zeroRows == 0:
		return v, ErrNoEigenvector
	}

	free := 3 - pivotCols[0] - pivotCols[1]
	v[free] = 1
	for i, p := range pivotCols {
		v[p] = -t[idx(pivotRows[i], free, 3)]
	}
	v.Normalize()

	return v, nil
}
