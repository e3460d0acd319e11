// SPDX-License-Identifier: MIT

package scene_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gldemo/scene"
)

func TestNewCube(t *testing.T) {
	t.Parallel()

	m := scene.NewCube("box")
	require.Equal(t, "box", m.Name)
	require.Len(t, m.Vertices, 24)
	require.Len(t, m.Indices, 36)
	require.Equal(t, 12, m.Triangles())
	require.NoError(t, m.Validate())

	for i, v := range m.Vertices {
		require.InDelta(t, 1, v.Normal.Length(), 1e-12, "vertex %d", i)
		require.InDelta(t, 1, v.Position.Dot(v.Normal), 1e-12, "vertex %d lies on its face plane", i)
	}

	// Counter-clockwise seen from outside: (b-a)×(c-a) points along the normal.
	for tri := 0; tri < len(m.Indices); tri += 3 {
		a, b, c := m.Vertices[m.Indices[tri]], m.Vertices[m.Indices[tri+1]], m.Vertices[m.Indices[tri+2]]
		n := b.Position.Sub(a.Position).Cross(c.Position.Sub(a.Position))
		require.Greater(t, n.Dot(a.Normal), 0.0, "triangle %d", tri/3)
	}
}

func TestMeshEdges(t *testing.T) {
	t.Parallel()

	m := scene.NewCube("box")
	edges := m.Edges()
	require.Len(t, edges, 30, "five per face: four sides and the diagonal")

	seen := map[scene.Edge]bool{}
	for _, e := range edges {
		require.Less(t, e.A, e.B)
		require.False(t, seen[e], "duplicate %v", e)
		seen[e] = true
	}
	require.Equal(t, scene.Edge{A: 0, B: 2}, edges[0])

	tri := &scene.Mesh{Vertices: make([]scene.Vertex, 3), Indices: []uint32{0, 1, 2, 2, 1, 0}}
	require.Equal(t, []scene.Edge{{0, 1}, {1, 2}, {0, 2}}, tri.Edges())
}

func TestMeshValidate(t *testing.T) {
	t.Parallel()

	m := &scene.Mesh{Name: "bad", Vertices: make([]scene.Vertex, 3), Indices: []uint32{0, 1}}
	require.ErrorIs(t, m.Validate(), scene.ErrBadIndex)

	m.Indices = []uint32{0, 1, 3}
	require.ErrorIs(t, m.Validate(), scene.ErrBadIndex)

	m.Indices = []uint32{0, 1, 2}
	require.NoError(t, m.Validate())
}
