// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"

	"github.com/google/uuid"
)

// Node is a scene graph element. Each child's Local transformation is
// relative to its parent's World transformation; UpdateWorld refreshes
// World for a whole subtree.
//
// A Node is not safe for concurrent mutation. Build one scene per goroutine.
type Node struct {
	// ID is unique per node, including clones.
	ID uuid.UUID

	// Name is a free-form label; it need not be unique.
	Name string

	Local Transformation
	World Transformation

	// Mesh is optional geometry drawn with this node's World transformation.
	// Clones share it.
	Mesh *Mesh

	parent   *Node
	children []*Node
}

// NewNode returns a detached node with identity transformations.
func NewNode(name string) *Node {
	return &Node{
		ID:    uuid.New(),
		Name:  name,
		Local: NewTransformation(),
		World: NewTransformation(),
	}
}

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// NumChildren returns the number of direct children.
func (n *Node) NumChildren() int { return len(n.children) }

// Children returns a copy of the direct children in insertion order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)

	return out
}

// AddChild attaches c as the last child of n, detaching it from any
// previous parent first.
//
// Errors:
//   - ErrNilNode when c is nil.
//   - ErrCycle when c is n or one of its ancestors.
func (n *Node) AddChild(c *Node) error {
	if c == nil {
		return ErrNilNode
	}
	for p := n; p != nil; p = p.parent {
		if p == c {
			return fmt.Errorf("AddChild %q: %w", c.Name, ErrCycle)
		}
	}
	if c.parent != nil {
		_, _ = c.parent.DetachChild(c)
	}
	c.parent = n
	n.children = append(n.children, c)

	return nil
}

// Child returns the i-th child.
func (n *Node) Child(i int) (*Node, error) {
	if i < 0 || i >= len(n.children) {
		return nil, fmt.Errorf("Child(%d): %w", i, ErrChildOutOfRange)
	}

	return n.children[i], nil
}

// DetachChild removes c from n's children and returns it as a root.
func (n *Node) DetachChild(c *Node) (*Node, error) {
	for i, ch := range n.children {
		if ch == c {
			return n.DetachChildAt(i)
		}
	}

	return nil, ErrNotChild
}

// DetachChildAt removes the i-th child and returns it as a root.
func (n *Node) DetachChildAt(i int) (*Node, error) {
	if i < 0 || i >= len(n.children) {
		return nil, fmt.Errorf("DetachChildAt(%d): %w", i, ErrChildOutOfRange)
	}
	c := n.children[i]
	n.children = append(n.children[:i], n.children[i+1:]...)
	c.parent = nil

	return c, nil
}

// Walk visits n and its descendants depth-first in pre-order. depth is 0
// for n. The walk stops at the first non-nil error from fn, which is
// returned.
func (n *Node) Walk(fn func(node *Node, depth int) error) error {
	return n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) error, depth int) error {
	if err := fn(n, depth); err != nil {
		return err
	}
	for _, c := range n.children {
		if err := c.walk(fn, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// UpdateWorld recomputes World for n and its subtree:
// World = Combine(parent.World, Local), or Local for a root.
func (n *Node) UpdateWorld() {
	if n.parent != nil {
		n.World = Combine(n.parent.World, n.Local)
	} else {
		n.World = n.Local
	}
	for _, c := range n.children {
		c.UpdateWorld()
	}
}

// Clone returns a deep copy of the subtree rooted at n. Every copy gets a
// fresh ID and the clone root is detached.
func (n *Node) Clone() *Node {
	cp := &Node{
		ID:    uuid.New(),
		Name:  n.Name,
		Local: n.Local,
		World: n.World,
		Mesh:  n.Mesh,
	}
	if len(n.children) > 0 {
		cp.children = make([]*Node, 0, len(n.children))
		for _, c := range n.children {
			cc := c.Clone()
			cc.parent = cp
			cp.children = append(cp.children, cc)
		}
	}

	return cp
}
