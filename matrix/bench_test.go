// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the fixed-size and runtime
// kernels, using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gldemo/matrix"
	"github.com/katalvlaran/gldemo/vector"
)

// sinks to defeat dead-code elimination
var (
	sinkM4 matrix.Mat4d
	sinkM3 matrix.Mat3d
	sinkV4 vector.Vec4d
	sinkF  float64
	sinkN  *matrix.MatN[float64]
)

func randMat4(seed int64) matrix.Mat4d {
	rng := rand.New(rand.NewSource(seed))
	var m matrix.Mat4d
	for i := range m {
		m[i] = rng.Float64()*2 - 1
	}
	m[15] = 1

	return m
}

func BenchmarkMat4Mul(b *testing.B) {
	b.ReportAllocs()
	x, y := randMat4(1337), randMat4(4242)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM4 = x.Mul(y)
	}
}

func BenchmarkMat4MulVec(b *testing.B) {
	b.ReportAllocs()
	m := randMat4(7)
	v := vector.New4(1.0, 2, 3, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkV4 = m.MulVec(v)
	}
}

func BenchmarkMat4Determinant(b *testing.B) {
	b.ReportAllocs()
	m := randMat4(11)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkF = m.Determinant()
	}
}

func BenchmarkMat4Inverse(b *testing.B) {
	b.ReportAllocs()
	m := randMat4(22)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		inv, err := m.Inverse()
		if err != nil {
			b.Fatal(err)
		}
		sinkM4 = inv
	}
}

func BenchmarkPolarDecomposition(b *testing.B) {
	b.ReportAllocs()
	r, err := matrix.NewRotation3(0.7, vector.New3(1.0, 2, 3))
	if err != nil {
		b.Fatal(err)
	}
	m := matrix.Compose4(r.Mul(matrix.NewScale3(vector.New3(1.5, 0.5, 2))), vector.New3(1.0, 2, 3))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, _, _, err := m.PolarDecomposition()
		if err != nil {
			b.Fatal(err)
		}
		sinkM3 = s
	}
}

func BenchmarkMatNMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{2, 3, 4} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, _ := matrix.IdentityN[float64](n)
			y, _ := matrix.IdentityN[float64](n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p, err := x.Mul(y)
				if err != nil {
					b.Fatal(err)
				}
				sinkN = p
			}
		})
	}
}
