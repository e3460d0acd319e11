// SPDX-License-Identifier: MIT

package vector

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/gldemo/scalar"
)

// The kernels below operate on equal-length slices. Callers validate
// lengths; fixed-size types get that for free from their array types.

func addInto[T scalar.Real](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subInto[T scalar.Real](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func scaleInto[T scalar.Real](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] * s
	}
}

func divInto[T scalar.Real](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] / s
	}
}

func dot[T scalar.Real](a, b []T) T {
	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

func length[T scalar.Real](a []T) T {
	return scalar.Sqrt(dot(a, a))
}

func equal[T scalar.Real](a, b []T) bool {
	for i := range a {
		if !scalar.FEqual(a[i], b[i]) {
			return false
		}
	}

	return true
}

// normalize scales a to unit length in place and returns its previous
// length. A length ≈ 0 leaves a untouched and returns 0.
func normalize[T scalar.Real](a []T) T {
	l := length(a)
	if scalar.IsZero(l) {
		return 0
	}
	divInto(a, a, l)

	return l
}

// projectInto writes the projection of a onto b into dst; zero when b ≈ 0.
// When isUnit is true b is assumed to have unit length.
func projectInto[T scalar.Real](dst, a, b []T, isUnit bool) {
	if isUnit {
		scaleInto(dst, b, dot(a, b))
		return
	}

	l := length(b)
	if scalar.IsZero(l) {
		clear(dst)
		return
	}
	// unit(b)·dot(a, unit(b))
	scaleInto(dst, b, dot(a, b)/l/l)
}

// scalarProjection returns dot(a, unit(b)); 0 when b ≈ 0.
func scalarProjection[T scalar.Real](a, b []T) T {
	l := length(b)
	if scalar.IsZero(l) {
		return 0
	}

	return dot(a, b) / l
}

// rawBytes appends the little-endian bit patterns of a to buf.
func rawBytes[T scalar.Real](buf []byte, a []T) []byte {
	for _, v := range a {
		switch x := any(v).(type) {
		case float32:
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(x))
		case float64:
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(x))
		default:
			// named float types: widen to float64 bits
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(float64(v)))
		}
	}

	return buf
}

// compareRaw orders a and b by the raw bytes of their components.
// The result is deterministic but carries no geometric meaning.
func compareRaw[T scalar.Real](a, b []T) int {
	return bytes.Compare(rawBytes(nil, a), rawBytes(nil, b))
}

func format[T scalar.Real](a []T) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range a {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", float64(v))
	}
	sb.WriteByte(')')

	return sb.String()
}
