// SPDX-License-Identifier: MIT

package scene

import (
	"errors"
	"fmt"
)

// Sentinel errors for scene graph, camera, mesh and config operations.
var (
	// ErrNilNode indicates that a nil *Node was passed where a node is required.
	ErrNilNode = errors.New("scene: nil node")

	// ErrCycle indicates that attaching a child would make a node its own ancestor.
	ErrCycle = errors.New("scene: node would become its own ancestor")

	// ErrNotChild indicates that the node is not a direct child of the receiver.
	ErrNotChild = errors.New("scene: node is not a child")

	// ErrChildOutOfRange indicates a child index outside [0, NumChildren).
	ErrChildOutOfRange = errors.New("scene: child index out of range")

	// ErrDegenerateView indicates that eye, up and look-at do not span a frame.
	ErrDegenerateView = errors.New("scene: degenerate camera view")

	// ErrBadIndex indicates a mesh index list that is not a triangle list over its vertices.
	ErrBadIndex = errors.New("scene: bad mesh index")

	// ErrInvalidConfig indicates a scene description that fails validation.
	ErrInvalidConfig = errors.New("scene: invalid config")

	// ErrUnknownMesh indicates a mesh kind the builder cannot generate.
	ErrUnknownMesh = errors.New("scene: unknown mesh kind")
)

// configErrorf wraps ErrInvalidConfig with the offending path and reason.
func configErrorf(path, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidConfig, path, fmt.Sprintf(format, args...))
}
