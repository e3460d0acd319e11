// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gldemo/matrix"
	"github.com/katalvlaran/gldemo/scalar"
	"github.com/katalvlaran/gldemo/vector"
)

func diagonal3(m matrix.Mat3d) []float64 {
	return []float64{m[0], m[4], m[8]}
}

func TestDiagonalize3Symmetric(t *testing.T) {
	t.Parallel()

	// Eigenvalues 2, 11 and 1.
	m := MustMat3(t,
		2, 0, 0,
		0, 3, 4,
		0, 4, 9,
	)
	rot, diag, err := m.Diagonalize()
	require.NoError(t, err)

	got := diagonal3(diag)
	sorted := append([]float64(nil), got...)
	sort.Float64s(sorted)
	require.InDeltaSlice(t, []float64{1, 2, 11}, sorted, 1e-9)

	for _, off := range []int{1, 2, 3, 5, 6, 7} {
		require.InDelta(t, 0, diag[off], 1e-9, "off-diagonal %d", off)
	}

	for k := 0; k < 3; k++ {
		v, err := rot.Column(k)
		require.NoError(t, err)
		require.True(t, scalar.FEqual(v.Length(), 1))
		requireApprox(t, v.Scale(got[k]), m.MulVec(v), "M·v = λ·v for column %d", k)
	}
	requireApprox(t, m, rot.Mul(diag).Mul(rot.Transpose()))
}

func TestDiagonalize3Rotated(t *testing.T) {
	t.Parallel()

	q, err := matrix.NewRotation3(0.4, vector.New3(1.0, 2, 0))
	require.NoError(t, err)
	d := matrix.Mat3d{5, 0, 0, 0, -1, 0, 0, 0, 2}
	m := q.Mul(d).Mul(q.Transpose())

	_, diag, err := m.Diagonalize()
	require.NoError(t, err)
	sorted := diagonal3(diag)
	sort.Float64s(sorted)
	require.InDeltaSlice(t, []float64{-1, 2, 5}, sorted, 1e-6)
}

func TestDiagonalize3Float32(t *testing.T) {
	t.Parallel()

	r, err := matrix.NewRotation3(0.7, vector.New3(1.0, 2, 3))
	require.NoError(t, err)

	for _, k := range []float64{1, 10, 100, 1000} {
		t.Run(fmt.Sprint(k), func(t *testing.T) {
			t.Parallel()
			wide := r.Mul(matrix.Mat3d{k, 0, 0, 0, 2 * k, 0, 0, 0, 3 * k}).Mul(r.Transpose())

			// narrow to float32, mirroring the upper triangle so m stays symmetric
			var m matrix.Mat3f
			for row := 0; row < 3; row++ {
				for col := 0; col < 3; col++ {
					i, j := min(row, col), max(row, col)
					m[row+3*col] = float32(wide[i+3*j])
				}
			}

			rot, diag, err := m.Diagonalize()
			require.NoError(t, err)

			got := []float64{float64(diag[0]), float64(diag[4]), float64(diag[8])}
			sorted := append([]float64(nil), got...)
			sort.Float64s(sorted)
			require.InDeltaSlice(t, []float64{k, 2 * k, 3 * k}, sorted, 1e-4*k)

			for col := 0; col < 3; col++ {
				v, err := rot.Column(col)
				require.NoError(t, err)
				require.InDelta(t, 1, float64(v.Length()), 1e-5)
				mv := m.MulVec(v)
				for i := 0; i < 3; i++ {
					require.InDelta(t, got[col]*float64(v[i]), float64(mv[i]), 1e-3*k, "M·v = λ·v, column %d row %d", col, i)
				}
			}
		})
	}
}

func TestDiagonalize3Failures(t *testing.T) {
	t.Parallel()

	t.Run("repeated eigenvalue", func(t *testing.T) {
		t.Parallel()
		m := MustMat3(t,
			2, 1, 0,
			1, 2, 0,
			0, 0, 3,
		)
		_, _, err := m.Diagonalize()
		require.ErrorIs(t, err, matrix.ErrUnderdetermined)
	})

	t.Run("complex eigenvalues", func(t *testing.T) {
		t.Parallel()
		r, err := matrix.NewRotation3(0.5, vector.New3(0.0, 0, 1))
		require.NoError(t, err)
		_, _, err = r.Diagonalize()
		require.ErrorIs(t, err, matrix.ErrNoRealEigenvalues)
	})
}

func TestDiagonalize2(t *testing.T) {
	t.Parallel()

	t.Run("symmetric", func(t *testing.T) {
		t.Parallel()
		m := matrix.Mat2d{2, 1, 1, 2}
		rot, diag, err := m.Diagonalize()
		require.NoError(t, err)
		require.InDeltaSlice(t, []float64{3, 1}, []float64{diag[0], diag[3]}, 1e-12)
		require.InDelta(t, 0, diag[1], 1e-12)
		require.InDelta(t, 0, diag[2], 1e-12)
		requireApprox(t, m, rot.Mul(diag).Mul(mustInverse2(t, rot)))
	})

	t.Run("lower triangular", func(t *testing.T) {
		t.Parallel()
		m := matrix.Mat2d{1, 3, 0, 4} // [[1 0] [3 4]]
		rot, diag, err := m.Diagonalize()
		require.NoError(t, err)
		requireApprox(t, m, rot.Mul(diag).Mul(mustInverse2(t, rot)))
	})

	t.Run("already diagonal", func(t *testing.T) {
		t.Parallel()
		m := matrix.Mat2d{7, 0, 0, -2}
		rot, diag, err := m.Diagonalize()
		require.NoError(t, err)
		require.Equal(t, matrix.Identity2[float64](), rot)
		require.Equal(t, m, diag)
	})

	t.Run("rotation has no real eigenvalues", func(t *testing.T) {
		t.Parallel()
		_, _, err := matrix.NewRotation2(1.0).Diagonalize()
		require.ErrorIs(t, err, matrix.ErrNoRealEigenvalues)
	})

	t.Run("defective", func(t *testing.T) {
		t.Parallel()
		_, _, err := matrix.Mat2d{1, 0, 1, 1}.Diagonalize() // [[1 1] [0 1]]
		require.ErrorIs(t, err, matrix.ErrUnderdetermined)
	})
}

func mustInverse2(t *testing.T, m matrix.Mat2d) matrix.Mat2d {
	t.Helper()
	inv, err := m.Inverse()
	require.NoError(t, err)

	return inv
}
