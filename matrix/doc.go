// SPDX-License-Identifier: MIT

// Package matrix provides square matrices generic over scalar.Real, sized
// 2×2, 3×3 and 4×4 (Mat2, Mat3, Mat4) plus a run-time sized MatN.
//
// 🚀 What is inside?
//
//   - Column-major storage: element (r, c) lives at m[r + c*N]
//   - Algebra: Add, Sub, Scale, Mul (M·v convention), Transpose, fused
//     TransposeTimes / TimesTranspose, Trace, Frobenius norm
//   - Row reduction: ToRowEchelonForm, ToReducedRowEchelonForm (partial pivoting)
//   - Closed forms: Determinant, Adjoint, Inverse (adjoint/det)
//   - Eigen-decomposition: Mat2.Diagonalize, Mat3.Diagonalize (symmetric)
//   - Rotations: NewRotation3/4 (Rodrigues), ToAxisAngle, Orthonormalize
//   - Projections: NewPerspectiveFOV, NewOrthographic, NewReflection
//   - Affine split: Mat4.PolarDecomposition into scale, rotation, translation
//   - Readback: RowMajor, UploadF32 (golang.org/x/image/math/f32)
//
// ✨ Conventions
//
//   - Fixed-size types are array values: `a := b` copies. Methods with a
//     pointer receiver (Set*, *Assign, To*, Orthonormalize, FromAxisAngle)
//     mutate the receiver; everything else returns a new value.
//   - Equal compares element-wise with scalar.FEqual.
//   - Errors are package sentinels (ErrSingular, ErrOutOfRange, ...) wrapped
//     with an operation tag; match them with errors.Is.
//   - MatN shares all kernels with the fixed types and dispatches the
//     closed forms for N in 2..4; other N report ErrUnsupported.
//
// Quick example:
//
//	r, _ := matrix.NewRotation4(scalar.HalfPi, vector.New3(0.0, 0, 1))
//	m := matrix.NewTranslation4(vector.New3(1.0, 2, 3)).Mul(r)
//	p := m.TransformPoint(vector.New3(1.0, 0, 0)) // (1, 3, 3)
//	inv, err := m.Inverse()
package matrix
