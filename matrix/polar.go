// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/gldemo/scalar"
	"github.com/katalvlaran/gldemo/vector"
)

// PolarDecomposition splits an affine m into translation, rotation and
// scale such that m's upper-left block equals rotation·scale.
//
// Implementation:
//   - Stage 1: translation is the last column.
//   - Stage 2: R₀ is the upper-left block M₃; iterate
//     R_{k+1} = ½(R_k + (R_kᵀ)⁻¹) until ‖R_{k+1} - R_k‖²_F ≈ 0.
//   - Stage 3: a reflection (det R < 0) is folded into scale by negating R;
//     R is re-orthonormalized and scale = R⁻¹·M₃.
//
// Behavior highlights:
//   - A pure rotation converges after the first step.
//   - The iteration count is capped (DefaultMaxPolarIterations, see
//     WithMaxIterations).
//
// Errors:
//   - ErrSingular when an iterate (or M₃ itself) is singular.
//   - ErrNoConvergence when the cap is reached.
func (m Mat4[T]) PolarDecomposition(opts ...Option) (scale, rotation Mat3[T], translation vector.Vec3[T], err error) {
	o := gatherOptions(opts...)

	translation = m.Translation()
	m3 := m.Upper3()

	r := m3
	converged := false
	for i := 0; i < o.maxIterations; i++ {
		invT, err := r.Transpose().Inverse()
		if err != nil {
			return scale, rotation, translation, matrixErrorf(opPolar, err)
		}
		next := r.Add(invT).Scale(0.5)
		diff := next.Sub(r).FrobeniusNormSquared()
		r = next
		if scalar.IsZero(diff) {
			converged = true
			break
		}
	}
	if !converged {
		return scale, rotation, translation, matrixErrorf(opPolar, ErrNoConvergence)
	}

	if r.Determinant() < 0 {
		r = r.Scale(-1)
	}
	r.Orthonormalize()

	// r is orthonormal: its inverse is its transpose.
	return r.TransposeTimes(m3), r, translation, nil
}
