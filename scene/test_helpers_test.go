// SPDX-License-Identifier: MIT

package scene_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gldemo/matrix"
	"github.com/katalvlaran/gldemo/vector"
)

type equaler[M any] interface {
	Equal(M) bool
}

func requireApprox[M equaler[M]](t testing.TB, want, got M, msgAndArgs ...any) {
	t.Helper()
	if !want.Equal(got) {
		require.Fail(t, fmt.Sprintf("approx mismatch\nwant: %v\n got: %v", want, got), msgAndArgs...)
	}
}

func mustRotation(t testing.TB, angle float64, axis vector.Vec3d) matrix.Mat3d {
	t.Helper()
	r, err := matrix.NewRotation3(angle, axis)
	require.NoError(t, err)

	return r
}
