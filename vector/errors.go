// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

// Sentinel errors of the vector package. Match with errors.Is; wrapped
// errors carry an operation prefix such as "At: vector: index out of range".
var (
	// ErrOutOfRange indicates a component index outside [0, Dim()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch indicates operands (or a source slice) whose
	// length differs from the receiver's dimension.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")
)

// Operation tags for error wrapping.
const (
	opAt      = "At"
	opSet     = "Set"
	opFrom    = "From"
	opAdd     = "Add"
	opSub     = "Sub"
	opDot     = "Dot"
	opProject = "VectorProjection"
)

// vectorErrorf wraps err with an operation tag, keeping errors.Is intact.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
