// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gldemo/matrix"
	"github.com/katalvlaran/gldemo/vector"
)

func TestZeroAndIdentity(t *testing.T) {
	t.Parallel()

	var z matrix.Mat4d
	for i := range z {
		require.Equal(t, 0.0, z[i])
	}

	id := matrix.Identity4[float64]()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			v, err := id.At(r, c)
			require.NoError(t, err)
			if r == c {
				require.Equal(t, 1.0, v)
			} else {
				require.Equal(t, 0.0, v)
			}
		}
	}
}

func TestColumnMajorIndexing(t *testing.T) {
	t.Parallel()

	m := MustMat4Cols(t, data1...)
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			v, err := m.At(r, c)
			require.NoError(t, err)
			require.Equal(t, float64(1+r+4*c), v, "(%d,%d)", r, c)

			lin, err := m.AtIndex(r + 4*c)
			require.NoError(t, err)
			require.Equal(t, v, lin)
		}
	}

	_, err := m.At(4, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.AtIndex(16)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 4, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetIndex(-1, 1), matrix.ErrOutOfRange)

	require.NoError(t, m.Set(2, 1, 42))
	require.Equal(t, 42.0, m[2+1*4])
}

func TestRowMajorLoadAndReadback(t *testing.T) {
	t.Parallel()

	rm := []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	m, err := matrix.New3(rm, true)
	require.NoError(t, err)
	v, _ := m.At(0, 1)
	require.Equal(t, 2.0, v)
	require.Equal(t, 4.0, m[1], "column-major storage")

	out := make([]float64, 9)
	require.NoError(t, m.RowMajor(out))
	require.Equal(t, rm, out)

	require.ErrorIs(t, m.RowMajor(make([]float64, 8)), matrix.ErrBufferTooSmall)

	_, err = matrix.New3([]float64{1, 2}, false)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMultiply(t *testing.T) {
	t.Parallel()

	m1 := MustMat4Cols(t, data1...)
	m2 := MustMat4Cols(t, data2...)
	got := m1.Mul(m2)

	// m2 columns are constant, so (m1·m2)(r, c) = (c+1)·Σ_k m1(r, k).
	for r := 0; r < 4; r++ {
		var rowSum float64
		for k := 0; k < 4; k++ {
			rowSum += m1[r+4*k]
		}
		for c := 0; c < 4; c++ {
			v, _ := got.At(r, c)
			require.Equal(t, float64(c+1)*rowSum, v, "(%d,%d)", r, c)
		}
	}

	v00, _ := got.At(0, 0)
	require.Equal(t, float64(1+5+9+13), v00)
	v13, _ := got.At(1, 3)
	require.Equal(t, float64(8+24+40+56), v13)
}

func TestIdentityIsNeutral(t *testing.T) {
	t.Parallel()

	m := MustMat4Cols(t, dataInvertible...)
	id := matrix.Identity4[float64]()
	require.Equal(t, m, m.Mul(id))
	require.Equal(t, m, id.Mul(m))
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	m1 := MustMat4Cols(t, data1...)
	want := MustMat4(t, data1...) // same literals read row-major
	require.Equal(t, want, m1.Transpose())
	require.Equal(t, m1, m1.Transpose().Transpose(), "exact involution")
}

func TestFusedTransposeProducts(t *testing.T) {
	t.Parallel()

	m1 := MustMat4Cols(t, data1...)
	m2 := MustMat4Cols(t, data2...)

	tt := m1.TransposeTimes(m2)
	require.Equal(t, m1.Transpose().Mul(m2), tt)
	v, _ := tt.At(0, 0)
	require.Equal(t, float64(1+2+3+4), v)
	v, _ = tt.At(3, 2)
	require.Equal(t, float64(39+42+45+48), v)

	ts := m1.TimesTranspose(m2)
	require.Equal(t, m1.Mul(m2.Transpose()), ts)
	v, _ = ts.At(0, 0)
	require.Equal(t, float64(1*1+5*2+9*3+13*4), v)
	v, _ = ts.At(1, 0)
	require.Equal(t, float64(2*1+6*2+10*3+14*4), v)
}

func TestAddSubScale(t *testing.T) {
	t.Parallel()

	m1 := MustMat4Cols(t, data1...)
	m2 := MustMat4Cols(t, data2...)

	require.Equal(t, MustMat4Cols(t,
		2, 3, 4, 5,
		7, 8, 9, 10,
		12, 13, 14, 15,
		17, 18, 19, 20,
	), m1.Add(m2))
	require.Equal(t, MustMat4Cols(t,
		0, 1, 2, 3,
		3, 4, 5, 6,
		6, 7, 8, 9,
		9, 10, 11, 12,
	), m1.Sub(m2))

	require.Equal(t, m1.Add(m1), m1.Scale(2))
	require.Equal(t, m1, m1.Scale(4).Div(4))
	require.Equal(t, matrix.Mat4d{}, m1.Add(m1.Neg()))

	acc := m1
	acc.AddAssign(m2)
	acc.SubAssign(m2)
	acc.ScaleAssign(3)
	acc.DivAssign(3)
	requireApprox(t, m1, acc)
}

func TestEqualAndCompare(t *testing.T) {
	t.Parallel()

	m1 := MustMat4Cols(t, data1...)
	m2 := MustMat4Cols(t, data2...)
	require.True(t, m1.Equal(m1))
	require.False(t, m1.Equal(m2))

	nudged := m1
	nudged[5] += 1e-9
	require.True(t, m1.Equal(nudged), "within tolerance")
	require.NotEqual(t, 0, m1.Compare(nudged), "byte order still distinguishes")
	require.Equal(t, 0, m1.Compare(m1))
	require.Equal(t, m1.Less(m2), m1.Compare(m2) < 0)
	require.Equal(t, -m1.Compare(m2), m2.Compare(m1))
}

func TestMulVec(t *testing.T) {
	t.Parallel()

	m1 := MustMat4Cols(t, data1...)
	require.Equal(t, vector.New4(1.0, 2, 3, 4), m1.MulVec(vector.New4(1.0, 0, 0, 0)))
	require.Equal(t, vector.New4(13.0, 14, 15, 16), m1.MulVec(vector.New4(0.0, 0, 0, 1)))
}

func TestTraceAndNorm(t *testing.T) {
	t.Parallel()

	m1 := MustMat4Cols(t, data1...)
	require.Equal(t, float64(1+6+11+16), m1.Trace())

	var sq float64
	for i := 1; i <= 16; i++ {
		sq += float64(i * i)
	}
	require.Equal(t, sq, m1.FrobeniusNormSquared())
	require.InDelta(t, 38.678159211627, m1.FrobeniusNorm(), 1e-9)
}

func TestColumns(t *testing.T) {
	t.Parallel()

	m := matrix.FromColumns3(
		vector.New3(1.0, 2, 3),
		vector.New3(4.0, 5, 6),
		vector.New3(7.0, 8, 9),
	)
	c1, err := m.Column(1)
	require.NoError(t, err)
	require.Equal(t, vector.New3(4.0, 5, 6), c1)

	require.NoError(t, m.SetColumn(2, vector.New3(0.0, 0, 1)))
	v, _ := m.At(2, 2)
	require.Equal(t, 1.0, v)

	_, err = m.Column(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetColumn(-1, vector.Vec3d{}), matrix.ErrOutOfRange)
}

func TestRowEchelon(t *testing.T) {
	t.Parallel()

	t.Run("full rank reduces to identity", func(t *testing.T) {
		t.Parallel()
		m := MustMat3(t,
			2, 2, 2,
			1, 0, 0,
			0, 0, 1,
		)
		rank := m.ToReducedRowEchelonForm()
		require.Equal(t, 3, rank)
		requireApprox(t, matrix.Identity3[float64](), m)
	})

	t.Run("row echelon has leading ones and zeros below", func(t *testing.T) {
		t.Parallel()
		m := MustMat3(t,
			1, 2, 3,
			4, 5, 6,
			7, 8, 10,
		)
		require.Equal(t, 3, m.ToRowEchelonForm())
		for r := 0; r < 3; r++ {
			v, _ := m.At(r, r)
			require.InDelta(t, 1, v, 1e-12, "leading one at row %d", r)
			for below := r + 1; below < 3; below++ {
				z, _ := m.At(below, r)
				require.Equal(t, 0.0, z)
			}
		}
	})

	t.Run("zero column is skipped", func(t *testing.T) {
		t.Parallel()
		m := MustMat3(t,
			0, 1, 2,
			0, 2, 4,
			0, 3, 7,
		)
		require.Equal(t, 2, m.ToReducedRowEchelonForm())
		requireApprox(t, MustMat3(t,
			0, 1, 0,
			0, 0, 1,
			0, 0, 0,
		), m)
	})

	t.Run("reduced form is idempotent", func(t *testing.T) {
		t.Parallel()
		m := MustMat4Cols(t, data1...)
		m.ToReducedRowEchelonForm()
		again := m
		again.ToReducedRowEchelonForm()
		requireApprox(t, m, again)
	})
}

func TestToIdentityToZero(t *testing.T) {
	t.Parallel()

	m := MustMat4Cols(t, data1...)
	m.ToIdentity()
	require.Equal(t, matrix.Identity4[float64](), m)
	m.ToZero()
	require.Equal(t, matrix.Mat4d{}, m)
}

func TestString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "[1 0; 0 1]", matrix.Identity2[float64]().String())
}
