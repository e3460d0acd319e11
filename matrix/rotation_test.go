// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gldemo/matrix"
	"github.com/katalvlaran/gldemo/scalar"
	"github.com/katalvlaran/gldemo/vector"
)

func TestRotationQuarterTurnAboutZ(t *testing.T) {
	t.Parallel()

	r, err := matrix.NewRotation3(math.Pi/2, vector.New3(0.0, 0, 1))
	require.NoError(t, err)
	requireApprox(t, vector.New3(0.0, 1, 0), r.MulVec(vector.New3(1.0, 0, 0)))

	r4, err := matrix.NewRotation4(math.Pi/2, vector.New3(0.0, 0, 5))
	require.NoError(t, err)
	requireApprox(t, vector.New3(0.0, 1, 0), r4.TransformPoint(vector.New3(1.0, 0, 0)))
}

func TestFromAxisAngleThirtyDegrees(t *testing.T) {
	t.Parallel()

	h := math.Sqrt(3) / 2
	cases := []struct {
		name string
		axis vector.Vec3d
		want []float64 // column-major
	}{
		{"z", vector.New3(0.0, 0, 1), []float64{h, -0.5, 0, 0.5, h, 0, 0, 0, 1}},
		{"y", vector.New3(0.0, 1, 0), []float64{h, 0, 0.5, 0, 1, 0, -0.5, 0, h}},
		{"x", vector.New3(1.0, 0, 0), []float64{1, 0, 0, 0, h, -0.5, 0, 0.5, h}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			want, err := matrix.New3(tc.want, false)
			require.NoError(t, err)

			var got matrix.Mat3d
			require.NoError(t, got.FromAxisAngle(-math.Pi/6, tc.axis))
			requireApprox(t, want, got)
		})
	}
}

func TestRotationIsOrthonormal(t *testing.T) {
	t.Parallel()

	r, err := matrix.NewRotation3(1.234, vector.New3(1.0, -2, 0.5))
	require.NoError(t, err)
	requireApprox(t, matrix.Identity3[float64](), r.TransposeTimes(r))
	require.InDelta(t, 1, r.Determinant(), 1e-12)

	inv, err := r.Inverse()
	require.NoError(t, err)
	requireApprox(t, r.Transpose(), inv)
}

func TestZeroAxis(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewRotation3(1.0, vector.Vec3d{})
	require.ErrorIs(t, err, matrix.ErrZeroAxis)

	m := matrix.Identity4[float64]()
	require.ErrorIs(t, m.FromAxisAngle(1, vector.Vec3d{}), matrix.ErrZeroAxis)
	require.Equal(t, matrix.Identity4[float64](), m)
}

func TestToAxisAngleRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		angle float64
		axis  vector.Vec3d
	}{
		{"generic", 0.75, vector.New3(1.0, 2, 3)},
		{"negative axis", 2.0, vector.New3(0.0, -1, 0)},
		{"near pi", math.Pi, vector.New3(0.0, 0, 1)},
		{"pi oblique", math.Pi, vector.New3(1.0, 1, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r, err := matrix.NewRotation3(tc.angle, tc.axis)
			require.NoError(t, err)

			angle, axis := r.ToAxisAngle()
			require.InDelta(t, tc.angle, angle, 1e-6)
			require.True(t, scalar.FEqual(axis.Length(), 1))

			back, err := matrix.NewRotation3(angle, axis)
			require.NoError(t, err)
			requireApprox(t, r, back)
		})
	}

	angle, axis := matrix.Identity4[float64]().ToAxisAngle()
	require.Equal(t, 0.0, angle)
	require.Equal(t, vector.UnitX[float64](), axis)
}

func TestRotation2(t *testing.T) {
	t.Parallel()

	r := matrix.NewRotation2(math.Pi / 3)
	require.InDelta(t, math.Pi/3, r.Angle(), 1e-12)
	requireApprox(t, vector.New2(0.5, math.Sqrt(3)/2), r.MulVec(vector.New2(1.0, 0)))
	require.InDelta(t, -math.Pi/2, matrix.NewRotation2(-math.Pi/2).Angle(), 1e-12)
}

func TestOrthonormalizeColumns(t *testing.T) {
	t.Parallel()

	r, err := matrix.NewRotation3(0.6, vector.New3(0.0, 1, 1))
	require.NoError(t, err)
	noisy := r
	for i := range noisy {
		noisy[i] *= 1 + 1e-3*float64(i%3)
	}
	noisy.Orthonormalize()
	requireApprox(t, matrix.Identity3[float64](), noisy.TransposeTimes(noisy))

	m2 := matrix.Mat2d{2, 0, 1, 1}
	m2.Orthonormalize()
	requireApprox(t, matrix.Mat2d{1, 0, 0, 1}, m2)
}

func TestAffineHelpers(t *testing.T) {
	t.Parallel()

	r, err := matrix.NewRotation3(math.Pi/2, vector.New3(0.0, 0, 1))
	require.NoError(t, err)
	tr := vector.New3(1.0, 2, 3)
	m := matrix.Compose4(r, tr)

	require.Equal(t, r, m.Upper3())
	require.Equal(t, tr, m.Translation())
	requireApprox(t, vector.New3(1.0, 3, 3), m.TransformPoint(vector.New3(1.0, 0, 0)))
	requireApprox(t, vector.New3(0.0, 1, 0), m.TransformDirection(vector.New3(1.0, 0, 0)))

	composed := matrix.NewTranslation4(tr).Mul(matrix.Compose4(r, vector.Vec3d{}))
	requireApprox(t, m, composed)

	s := matrix.NewScale4(vector.New3(2.0, 3, 4))
	require.Equal(t, vector.New3(2.0, 3, 4), s.TransformPoint(vector.New3(1.0, 1, 1)))
}
