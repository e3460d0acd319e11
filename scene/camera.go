// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"

	"github.com/katalvlaran/gldemo/matrix"
	"github.com/katalvlaran/gldemo/scalar"
	"github.com/katalvlaran/gldemo/vector"
)

// Camera defaults.
const (
	DefaultNear = 0.01
	DefaultFar  = 1000.0
	DefaultFOV  = 25.0 // degrees, vertical
)

// Camera is a scene node whose local rotation columns are its right, up and
// back (-view) vectors and whose translation is the eye position. The view
// matrix is the inverse of its world matrix.
type Camera struct {
	*Node

	Near, Far float64
	FOV       float64

	lookAt vector.Vec3d
	up     vector.Vec3d
}

// NewCamera returns a camera at (0, 0, 5) looking at the origin with +y up.
func NewCamera() *Camera {
	c, _ := NewCameraAt(vector.New3(0.0, 0, 5), vector.UnitY[float64](), vector.Vec3d{})

	return c
}

// NewCameraAt returns a camera oriented by SetView.
func NewCameraAt(eye, up, lookAt vector.Vec3d) (*Camera, error) {
	c := &Camera{
		Node: NewNode("camera"),
		Near: DefaultNear,
		Far:  DefaultFar,
		FOV:  DefaultFOV,
	}
	if err := c.SetView(eye, up, lookAt); err != nil {
		return nil, err
	}

	return c, nil
}

// SetView orients the camera at eye looking towards lookAt:
//
//	back  = unit(eye - lookAt)
//	right = unit(up × back)
//	up'   = unit(back × right)
//
// Errors:
//   - ErrDegenerateView when eye ≈ lookAt or up is parallel to the view
//     direction. The camera is left unchanged.
func (c *Camera) SetView(eye, up, lookAt vector.Vec3d) error {
	back := eye.Sub(lookAt)
	if back.Normalize() == 0 {
		return fmt.Errorf("SetView: eye equals look-at: %w", ErrDegenerateView)
	}
	right := up.Cross(back)
	if right.Normalize() == 0 {
		return fmt.Errorf("SetView: up parallel to view: %w", ErrDegenerateView)
	}
	camUp := back.UnitCross(right)

	c.Local.SetRotation(matrix.FromColumns3(right, camUp, back))
	c.Local.SetTranslation(eye)
	c.lookAt = lookAt
	c.up = up
	c.UpdateWorld()

	return nil
}

// SetFrame orients the camera from explicit world vectors. The vectors are
// used as given and should be orthonormal. LookAt becomes eye + view.
func (c *Camera) SetFrame(eye, view, up, right vector.Vec3d) {
	c.Local.SetRotation(matrix.FromColumns3(right, up, view.Neg()))
	c.Local.SetTranslation(eye)
	c.lookAt = eye.Add(view)
	c.up = up
	c.UpdateWorld()
}

// LookAt returns the point the camera was last aimed at.
func (c *Camera) LookAt() vector.Vec3d { return c.lookAt }

// Up returns the up hint the camera was last oriented with.
func (c *Camera) Up() vector.Vec3d { return c.up }

// WorldVectors returns the camera's eye position and unit view, up and
// right directions in world space.
func (c *Camera) WorldVectors() (position, view, up, right vector.Vec3d) {
	w := c.World
	position = w.Apply(vector.Vec3d{})
	view = w.Apply(vector.New3(0.0, 0, -1)).Sub(position).UnitVector()
	up = w.Apply(vector.UnitY[float64]()).Sub(position).UnitVector()
	right = w.Apply(vector.UnitX[float64]()).Sub(position).UnitVector()

	return position, view, up, right
}

// ViewMatrix returns the world-to-camera transform.
func (c *Camera) ViewMatrix() (matrix.Mat4d, error) {
	v, err := c.World.Matrix().Inverse()
	if err != nil {
		return v, fmt.Errorf("ViewMatrix: %w", err)
	}

	return v, nil
}

// ProjectionMatrix returns the perspective projection for the given
// width/height aspect ratio.
func (c *Camera) ProjectionMatrix(aspect float64) (matrix.Mat4d, error) {
	return matrix.NewPerspectiveFOV(c.FOV, aspect, c.Near, c.Far)
}

// Orbit moves the eye around the look-at point by deg degrees about the up
// hint, keeping the camera aimed at the same point.
func (c *Camera) Orbit(deg float64) error {
	r, err := matrix.NewRotation3(scalar.Radians(deg), c.up)
	if err != nil {
		return fmt.Errorf("Orbit: %w", err)
	}
	eye := c.Local.Translation()
	eye = c.lookAt.Add(r.MulVec(eye.Sub(c.lookAt)))

	return c.SetView(eye, c.up, c.lookAt)
}

// Clone returns an independent copy of the camera with a fresh node ID.
func (c *Camera) Clone() *Camera {
	cp := *c
	cp.Node = c.Node.Clone()

	return &cp
}
