// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"

	"github.com/katalvlaran/gldemo/vector"
)

// Vertex is one corner of a mesh face.
type Vertex struct {
	Position vector.Vec3d
	Normal   vector.Vec3d
	TexCoord vector.Vec2d
}

// Edge is an undirected pair of vertex indices with A < B.
type Edge struct {
	A, B uint32
}

// Mesh is an indexed triangle list.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
}

// cube corner positions, indexed by bit pattern zyx.
var cubeCorners = [8]vector.Vec3d{
	{-1, -1, -1}, {1, -1, -1}, {-1, 1, -1}, {1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {-1, 1, 1}, {1, 1, 1},
}

// cubeFaces lists each face's four corners and outward normal. Corners are
// duplicated per face so each face carries its own normal.
var cubeFaces = [6]struct {
	corners [4]int
	normal  vector.Vec3d
}{
	{[4]int{0, 1, 3, 2}, vector.Vec3d{0, 0, -1}},
	{[4]int{1, 5, 7, 3}, vector.Vec3d{1, 0, 0}},
	{[4]int{0, 2, 6, 4}, vector.Vec3d{-1, 0, 0}},
	{[4]int{4, 6, 7, 5}, vector.Vec3d{0, 0, 1}},
	{[4]int{0, 4, 5, 1}, vector.Vec3d{0, -1, 0}},
	{[4]int{3, 7, 6, 2}, vector.Vec3d{0, 1, 0}},
}

// NewCube returns the cube spanning [-1, 1]³: 24 vertices and 36 indices,
// two triangles per face.
func NewCube(name string) *Mesh {
	m := &Mesh{
		Name:     name,
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}
	for f, face := range cubeFaces {
		for _, c := range face.corners {
			m.Vertices = append(m.Vertices, Vertex{Position: cubeCorners[c], Normal: face.normal})
		}
		o := uint32(f * 4)
		m.Indices = append(m.Indices, o, o+2, o+1, o+3, o+2, o)
	}

	return m
}

// Triangles returns the number of triangles in the index list.
func (m *Mesh) Triangles() int { return len(m.Indices) / 3 }

// Validate checks that Indices is a triangle list over Vertices.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("mesh %q: %d indices: %w", m.Name, len(m.Indices), ErrBadIndex)
	}
	for i, ix := range m.Indices {
		if int(ix) >= len(m.Vertices) {
			return fmt.Errorf("mesh %q: index %d = %d: %w", m.Name, i, ix, ErrBadIndex)
		}
	}

	return nil
}

// Edges returns the unique undirected triangle edges in first-seen order.
// Edges are keyed by vertex index, so faces that duplicate a corner
// contribute their own copy of a shared edge.
func (m *Mesh) Edges() []Edge {
	seen := make(map[Edge]struct{}, len(m.Indices))
	out := make([]Edge, 0, len(m.Indices))
	for t := 0; t+2 < len(m.Indices); t += 3 {
		tri := m.Indices[t : t+3]
		for k := 0; k < 3; k++ {
			e := Edge{tri[k], tri[(k+1)%3]}
			if e.A > e.B {
				e.A, e.B = e.B, e.A
			}
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}

	return out
}
