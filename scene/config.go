// SPDX-License-Identifier: MIT

// YAML scene descriptions.
//
// A description names a camera, a tree of objects and render settings:
//
//	camera:
//	  eye: [0, 2, 8]
//	  look_at: [0, 0, 0]
//	  fov: 35
//	objects:
//	  - name: cube
//	    mesh: cube
//	    rotation: {axis: [1, 1, 0], angle: 30}
//	    uniform_scale: 1.5
//	    children:
//	      - name: moon
//	        mesh: cube
//	        translation: [3, 0, 0]
//	        uniform_scale: 0.3
//	render:
//	  width: 640
//	  height: 480
//
// Angles are in degrees. An object may give a row-major 4×4 `matrix`
// instead of translation/rotation/scale; it is decomposed with
// Transformation.FromMatrix.

package scene

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gldemo/matrix"
	"github.com/katalvlaran/gldemo/scalar"
	"github.com/katalvlaran/gldemo/vector"
)

// Mesh kinds understood by Build.
const (
	MeshNone = ""
	MeshCube = "cube"
)

// Config is the root of a scene description.
type Config struct {
	Camera  CameraConfig   `yaml:"camera"`
	Objects []ObjectConfig `yaml:"objects"`
	Render  RenderConfig   `yaml:"render"`
}

// CameraConfig places the camera. OrbitStep is the per-frame orbit in
// degrees used by animated renders.
type CameraConfig struct {
	Eye       []float64 `yaml:"eye"`
	Up        []float64 `yaml:"up"`
	LookAt    []float64 `yaml:"look_at"`
	FOV       float64   `yaml:"fov"`
	Near      float64   `yaml:"near"`
	Far       float64   `yaml:"far"`
	OrbitStep float64   `yaml:"orbit_step"`
}

// RotationConfig is an axis-angle rotation, angle in degrees.
type RotationConfig struct {
	Axis  []float64 `yaml:"axis"`
	Angle float64   `yaml:"angle"`
}

// ObjectConfig describes one node and its subtree.
type ObjectConfig struct {
	Name         string          `yaml:"name"`
	Mesh         string          `yaml:"mesh,omitempty"`
	Translation  []float64       `yaml:"translation,omitempty"`
	Rotation     *RotationConfig `yaml:"rotation,omitempty"`
	Scale        []float64       `yaml:"scale,omitempty"`
	UniformScale *float64        `yaml:"uniform_scale,omitempty"`
	Matrix       []float64       `yaml:"matrix,omitempty"`
	Children     []ObjectConfig  `yaml:"children,omitempty"`
}

// RenderConfig holds output settings. Colors are "#rrggbb" or "#rrggbbaa".
type RenderConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Supersample int     `yaml:"supersample"`
	Background  string  `yaml:"background"`
	Stroke      string  `yaml:"stroke"`
	LineWidth   float64 `yaml:"line_width"`
}

// DefaultConfig returns the settings used for fields a description omits.
func DefaultConfig() Config {
	return Config{
		Camera: CameraConfig{
			Eye:       []float64{0, 0, 5},
			Up:        []float64{0, 1, 0},
			LookAt:    []float64{0, 0, 0},
			FOV:       DefaultFOV,
			Near:      DefaultNear,
			Far:       DefaultFar,
			OrbitStep: 15,
		},
		Render: RenderConfig{
			Width:       640,
			Height:      480,
			Supersample: 2,
			Background:  "#101418",
			Stroke:      "#e8e8e8",
			LineWidth:   1.5,
		},
	}
}

// LoadYAML decodes a description over DefaultConfig. Unknown keys are
// rejected. An empty document yields the defaults.
func LoadYAML(r io.Reader) (*Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("scene: decode yaml: %w", err)
	}

	return &c, nil
}

// LoadFile reads a description from path.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	defer f.Close()

	c, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Validate checks value ranges and field combinations. All failures wrap
// ErrInvalidConfig and name the offending field.
func (c *Config) Validate() error {
	cam := c.Camera
	if err := check3("camera.eye", cam.Eye); err != nil {
		return err
	}
	if err := check3("camera.up", cam.Up); err != nil {
		return err
	}
	if err := check3("camera.look_at", cam.LookAt); err != nil {
		return err
	}
	if cam.FOV <= 0 || cam.FOV >= 180 {
		return configErrorf("camera.fov", "%g not in (0, 180)", cam.FOV)
	}
	if cam.Near <= 0 || cam.Far <= cam.Near {
		return configErrorf("camera.near/far", "need 0 < near < far, got %g, %g", cam.Near, cam.Far)
	}

	r := c.Render
	if r.Width <= 0 || r.Height <= 0 {
		return configErrorf("render", "size %dx%d must be positive", r.Width, r.Height)
	}
	if r.Supersample < 1 {
		return configErrorf("render.supersample", "%d < 1", r.Supersample)
	}
	if r.LineWidth <= 0 {
		return configErrorf("render.line_width", "%g must be positive", r.LineWidth)
	}

	for i := range c.Objects {
		if err := c.Objects[i].validate(fmt.Sprintf("objects[%d]", i)); err != nil {
			return err
		}
	}

	return nil
}

func (o *ObjectConfig) validate(path string) error {
	switch o.Mesh {
	case MeshNone, MeshCube:
	default:
		return fmt.Errorf("%s.mesh %q: %w", path, o.Mesh, ErrUnknownMesh)
	}

	if len(o.Matrix) > 0 {
		if len(o.Matrix) != 16 {
			return configErrorf(path+".matrix", "want 16 entries, got %d", len(o.Matrix))
		}
		if o.Translation != nil || o.Rotation != nil || o.Scale != nil || o.UniformScale != nil {
			return configErrorf(path, "matrix excludes translation, rotation and scale")
		}
	}
	if o.Scale != nil && o.UniformScale != nil {
		return configErrorf(path, "scale and uniform_scale are exclusive")
	}
	if o.Translation != nil {
		if err := check3(path+".translation", o.Translation); err != nil {
			return err
		}
	}
	if o.Scale != nil {
		if err := check3(path+".scale", o.Scale); err != nil {
			return err
		}
	}
	if o.Rotation != nil {
		if err := check3(path+".rotation.axis", o.Rotation.Axis); err != nil {
			return err
		}
		if axis, _ := vector.From3(o.Rotation.Axis); scalar.IsZero(axis.Length()) {
			return configErrorf(path+".rotation.axis", "zero axis")
		}
	}

	for i := range o.Children {
		if err := o.Children[i].validate(fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
			return err
		}
	}

	return nil
}

func check3(path string, v []float64) error {
	if _, err := vector.From3(v); err != nil {
		return configErrorf(path, "want 3 components, got %d", len(v))
	}

	return nil
}

// Build validates c and constructs the scene with world transformations
// up to date. Objects sharing a mesh kind share one *Mesh.
func (c *Config) Build() (*Scene, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	eye, _ := vector.From3(c.Camera.Eye)
	up, _ := vector.From3(c.Camera.Up)
	at, _ := vector.From3(c.Camera.LookAt)
	cam, err := NewCameraAt(eye, up, at)
	if err != nil {
		return nil, fmt.Errorf("scene: camera: %w", err)
	}
	cam.FOV, cam.Near, cam.Far = c.Camera.FOV, c.Camera.Near, c.Camera.Far

	s := New(cam)
	s.Render = c.Render
	s.OrbitStep = c.Camera.OrbitStep

	meshes := make(map[string]*Mesh)
	for i := range c.Objects {
		if err := c.Objects[i].build(s.Root, meshes); err != nil {
			return nil, err
		}
	}
	s.Update()

	return s, nil
}

func (o *ObjectConfig) build(parent *Node, meshes map[string]*Mesh) error {
	n := NewNode(o.Name)
	if o.Mesh == MeshCube {
		if meshes[o.Mesh] == nil {
			meshes[o.Mesh] = NewCube(o.Mesh)
		}
		n.Mesh = meshes[o.Mesh]
	}

	if len(o.Matrix) > 0 {
		m, err := matrix.New4(o.Matrix, true)
		if err != nil {
			return fmt.Errorf("scene: object %q: %w", o.Name, err)
		}
		if err := n.Local.FromMatrix(m); err != nil {
			return fmt.Errorf("scene: object %q: %w", o.Name, err)
		}
	}
	if o.Translation != nil {
		t, _ := vector.From3(o.Translation)
		n.Local.SetTranslation(t)
	}
	if o.Rotation != nil {
		axis, _ := vector.From3(o.Rotation.Axis)
		r, err := matrix.NewRotation3(scalar.Radians(o.Rotation.Angle), axis)
		if err != nil {
			return fmt.Errorf("scene: object %q: %w", o.Name, err)
		}
		n.Local.SetRotation(r)
	}
	switch {
	case o.Scale != nil:
		sc, _ := vector.From3(o.Scale)
		n.Local.SetScale(sc)
	case o.UniformScale != nil:
		n.Local.SetUniformScale(*o.UniformScale)
	}

	if err := parent.AddChild(n); err != nil {
		return err
	}
	for i := range o.Children {
		if err := o.Children[i].build(n, meshes); err != nil {
			return err
		}
	}

	return nil
}
