// SPDX-License-Identifier: MIT

package matrix

// Test bridge for unexported kernels and the options snapshot.
//
// Purpose:
//   - Expose the pieces matrix_test needs for white-box checks without
//     widening the production API.
//   - Lives in a _test.go file, so it compiles only into the test binary.

// PanicMaxIterationsInvalid_TestOnly is the stable WithMaxIterations panic text.
const PanicMaxIterationsInvalid_TestOnly = panicMaxIterationsInvalid

// OptionsSnapshot is a read-only view of the effective Options.
type OptionsSnapshot struct {
	MaxIterations int
}

// GatherOptionsSnapshot_TestOnly applies opts over the defaults and returns the result.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{MaxIterations: o.maxIterations}
}

// RowReduce_TestOnly runs the in-place reduction on a column-major slice.
func RowReduce_TestOnly(e []float64, n int, reduced bool) int {
	return rowReduce(e, n, reduced)
}
