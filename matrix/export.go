// SPDX-License-Identifier: MIT
// Package matrix: readback into float32 upload buffers.
//
// Rendering backends consume matrices as flat float32 arrays. The
// golang.org/x/image/math/f32 types are row-major, so conversion goes
// through RowMajor; ColumnMajorF32 is provided for consumers that want the
// native layout unchanged.

package matrix

import (
	"golang.org/x/image/math/f32"

	"github.com/katalvlaran/gldemo/scalar"
)

// UploadF32 returns m row-major as an f32.Mat4.
func UploadF32[T scalar.Real](m Mat4[T]) f32.Mat4 {
	var rm [16]T
	_ = m.RowMajor(rm[:]) // cannot fail: buffer is exactly 16

	var out f32.Mat4
	for i, v := range rm {
		out[i] = float32(v)
	}

	return out
}

// UploadF32Mat3 returns m row-major as an f32.Mat3.
func UploadF32Mat3[T scalar.Real](m Mat3[T]) f32.Mat3 {
	var rm [9]T
	_ = m.RowMajor(rm[:])

	var out f32.Mat3
	for i, v := range rm {
		out[i] = float32(v)
	}

	return out
}

// ColumnMajorF32 returns m's storage converted to float32 without
// reordering.
func ColumnMajorF32[T scalar.Real](m Mat4[T]) [16]float32 {
	var out [16]float32
	for i, v := range m {
		out[i] = float32(v)
	}

	return out
}
