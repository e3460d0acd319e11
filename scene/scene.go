// SPDX-License-Identifier: MIT

package scene

// Scene ties an object tree to the camera viewing it.
type Scene struct {
	Root   *Node
	Camera *Camera

	// Render carries the output settings of the description it was built from.
	Render RenderConfig

	// OrbitStep is the per-frame camera orbit in degrees.
	OrbitStep float64
}

// New returns a scene with an empty root and the given camera. A nil camera
// is replaced by NewCamera().
func New(cam *Camera) *Scene {
	if cam == nil {
		cam = NewCamera()
	}

	return &Scene{Root: NewNode("root"), Camera: cam, Render: DefaultConfig().Render}
}

// Update refreshes world transformations of the object tree and the camera.
func (s *Scene) Update() {
	s.Root.UpdateWorld()
	s.Camera.UpdateWorld()
}

// Orbit circles the camera around its look-at point by deg degrees.
func (s *Scene) Orbit(deg float64) error { return s.Camera.Orbit(deg) }

// Drawables returns the nodes that carry a mesh, in pre-order.
func (s *Scene) Drawables() []*Node {
	var out []*Node
	_ = s.Root.Walk(func(n *Node, _ int) error {
		if n.Mesh != nil {
			out = append(out, n)
		}
		return nil
	})

	return out
}
