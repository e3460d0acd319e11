// SPDX-License-Identifier: MIT

package scene_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gldemo/matrix"
	"github.com/katalvlaran/gldemo/scene"
	"github.com/katalvlaran/gldemo/vector"
)

var zAxis = vector.New3(0.0, 0, 1)

func TestTransformationDefaults(t *testing.T) {
	t.Parallel()

	tr := scene.NewTransformation()
	require.Equal(t, matrix.Identity3[float64](), tr.Rotation())
	require.Equal(t, vector.Vec3d{}, tr.Translation())
	require.Equal(t, vector.New3(1.0, 1, 1), tr.Scale())
	require.Equal(t, 1.0, tr.UniformScale())
	require.True(t, tr.IsIdentity())
	require.True(t, tr.IsUniformScale())
	require.Equal(t, matrix.Identity4[float64](), tr.Matrix())
}

func TestTransformationSetters(t *testing.T) {
	t.Parallel()

	tr := scene.NewTransformation()
	tr.SetUniformScale(2)
	require.Equal(t, 2.0, tr.UniformScale())
	require.Equal(t, vector.New3(2.0, 2, 2), tr.Scale())
	require.True(t, tr.IsUniformScale())
	require.False(t, tr.IsIdentity())

	tr.SetScale(vector.New3(1.0, 2, 3))
	require.Equal(t, vector.New3(1.0, 2, 3), tr.Scale())
	require.False(t, tr.IsUniformScale())

	r := mustRotation(t, math.Pi/6, zAxis)
	tr.SetRotation(r)
	require.Equal(t, r, tr.Rotation())
	tr.SetTranslation(vector.New3(1.0, 2, 3))
	require.Equal(t, vector.New3(1.0, 2, 3), tr.Translation())
}

func TestTransformationApply(t *testing.T) {
	t.Parallel()

	quarter := mustRotation(t, math.Pi/2, zAxis)
	cases := []struct {
		name    string
		uniform float64
		trans   vector.Vec3d
		in      vector.Vec3d
		want    vector.Vec3d
	}{
		{"translate origin", 1, vector.New3(5.0, 0, 0), vector.Vec3d{}, vector.New3(5.0, 0, 0)},
		{"rotate", 1, vector.Vec3d{}, vector.New3(5.0, 0, 0), vector.New3(0.0, 5, 0)},
		{"rotate scale", 2, vector.Vec3d{}, vector.New3(5.0, 0, 0), vector.New3(0.0, 10, 0)},
		{"rotate scale translate", 2, vector.New3(1.0, 1, 1), vector.New3(5.0, 0, 0), vector.New3(1.0, 11, 1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tr := scene.NewTransformation()
			tr.SetRotation(quarter)
			tr.SetUniformScale(tc.uniform)
			tr.SetTranslation(tc.trans)

			got := tr.Apply(tc.in)
			requireApprox(t, tc.want, got)
			requireApprox(t, tr.Matrix().TransformPoint(tc.in), got, "matches the 4×4 form")
		})
	}

	id := scene.NewTransformation()
	require.Equal(t, vector.New3(1.0, 2, 3), id.Apply(vector.New3(1.0, 2, 3)))
}

func TestTransformationApplyInverse(t *testing.T) {
	t.Parallel()

	tr := scene.NewTransformation()
	tr.SetRotation(mustRotation(t, math.Pi/2, zAxis))
	requireApprox(t, vector.New3(0.0, -5, 0), tr.ApplyInverse(vector.New3(5.0, 0, 0)))

	m, err := tr.Matrix().Inverse()
	require.NoError(t, err)
	requireApprox(t, m.TransformPoint(vector.New3(5.0, 0, 0)), tr.ApplyInverse(vector.New3(5.0, 0, 0)))

	tr.SetUniformScale(4)
	tr.SetTranslation(vector.New3(1.0, -2, 3))
	v := vector.New3(0.5, 7, -1)
	requireApprox(t, v, tr.ApplyInverse(tr.Apply(v)), "uniform round trip")

	tr.SetScale(vector.New3(2.0, 0.5, 3))
	requireApprox(t, v, tr.ApplyInverse(tr.Apply(v)), "non-uniform round trip")
}

func TestTransformationMatrix(t *testing.T) {
	t.Parallel()

	r := mustRotation(t, math.Pi/6, zAxis)
	tr := scene.NewTransformation()
	tr.SetRotation(r)
	tr.SetUniformScale(2)
	tr.SetTranslation(vector.New3(1.0, 2, 3))

	want := matrix.NewTranslation4(vector.New3(1.0, 2, 3)).
		Mul(matrix.Compose4(r, vector.Vec3d{})).
		Mul(matrix.NewScale4(vector.New3(2.0, 2, 2)))
	requireApprox(t, want, tr.Matrix())
}

func TestTransformationFromMatrix(t *testing.T) {
	t.Parallel()

	r := mustRotation(t, math.Pi/6, vector.New3(1.0, 0, 0))
	in := matrix.NewTranslation4(vector.New3(1.0, 2, 3)).
		Mul(matrix.Compose4(r, vector.Vec3d{})).
		Mul(matrix.NewScale4(vector.New3(2.0, 2, 2)))

	tr := scene.NewTransformation()
	require.NoError(t, tr.FromMatrix(in))
	requireApprox(t, r, tr.Rotation())
	requireApprox(t, vector.New3(2.0, 2, 2), tr.Scale())
	requireApprox(t, vector.New3(1.0, 2, 3), tr.Translation())
	require.True(t, tr.IsUniformScale())
	require.False(t, tr.IsIdentity())
	requireApprox(t, in, tr.Matrix())

	before := tr
	require.ErrorIs(t, tr.FromMatrix(matrix.Mat4d{}), matrix.ErrSingular)
	require.Equal(t, before, tr, "unchanged on error")
}

func TestCombine(t *testing.T) {
	t.Parallel()

	r := mustRotation(t, math.Pi/6, vector.New3(1.0, 1, 1))
	t1 := scene.NewTransformation()
	t1.SetRotation(r)
	t1.SetUniformScale(2)
	t1.SetTranslation(vector.New3(5.0, 3, 1))
	t2 := scene.NewTransformation()
	t2.SetRotation(r)
	t2.SetUniformScale(5)
	t2.SetTranslation(vector.New3(0.0, 5, 0))

	got := scene.Combine(t1, t2)
	requireApprox(t, t1.Matrix().Mul(t2.Matrix()), got.Matrix())
	require.True(t, got.IsUniformScale())

	t3 := scene.NewTransformation()
	t3.SetScale(vector.New3(1.0, 2, 3))
	require.False(t, scene.Combine(t1, t3).IsUniformScale(), "uniform only when both are")
	requireApprox(t, t1.Matrix().Mul(t3.Matrix()), scene.Combine(t1, t3).Matrix())

	id := scene.NewTransformation()
	require.Equal(t, t2, scene.Combine(id, t2))
	require.Equal(t, t1, scene.Combine(t1, id))
	require.True(t, scene.Combine(id, id).IsIdentity())
}
