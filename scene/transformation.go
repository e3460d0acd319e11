// SPDX-License-Identifier: MIT
// Package scene: Transformation, the rotate·scale·translate triple carried
// by every node in place of a general 4×4 matrix.

package scene

import (
	"github.com/katalvlaran/gldemo/matrix"
	"github.com/katalvlaran/gldemo/scalar"
	"github.com/katalvlaran/gldemo/vector"
)

// Transformation is an affine map applied as scale, then rotate, then
// translate. The identity and uniform-scale flags let Apply, ApplyInverse
// and Combine skip work.
//
// The zero value is not the identity; use NewTransformation.
type Transformation struct {
	rotation    matrix.Mat3d
	scale       vector.Vec3d
	translation vector.Vec3d
	identity    bool
	uniform     bool
}

// NewTransformation returns the identity transformation.
func NewTransformation() Transformation {
	return Transformation{
		rotation: matrix.Identity3[float64](),
		scale:    vector.New3(1.0, 1, 1),
		identity: true,
		uniform:  true,
	}
}

// SetRotation replaces the rotation block.
func (t *Transformation) SetRotation(r matrix.Mat3d) { t.rotation = r; t.identity = false }

// Rotation returns the rotation block.
func (t Transformation) Rotation() matrix.Mat3d { return t.rotation }

// SetTranslation replaces the translation.
func (t *Transformation) SetTranslation(v vector.Vec3d) { t.translation = v; t.identity = false }

// Translation returns the translation.
func (t Transformation) Translation() vector.Vec3d { return t.translation }

// SetScale sets a per-axis scale and clears the uniform flag.
func (t *Transformation) SetScale(s vector.Vec3d) {
	t.scale = s
	t.uniform = false
	t.identity = false
}

// Scale returns the per-axis scale.
func (t Transformation) Scale() vector.Vec3d { return t.scale }

// SetUniformScale sets all three scale factors to s.
func (t *Transformation) SetUniformScale(s float64) {
	t.scale = vector.New3(s, s, s)
	t.uniform = true
	t.identity = false
}

// UniformScale returns the x scale factor, which is the scale when
// IsUniformScale reports true.
func (t Transformation) UniformScale() float64 { return t.scale[0] }

// IsIdentity reports whether t is known to be the identity.
func (t Transformation) IsIdentity() bool { return t.identity }

// IsUniformScale reports whether every axis shares one scale factor.
func (t Transformation) IsUniformScale() bool { return t.uniform }

// Apply maps v through the transformation: R·(S·v) + t.
func (t Transformation) Apply(v vector.Vec3d) vector.Vec3d {
	if t.identity {
		return v
	}

	return t.rotation.MulVec(v.Mul(t.scale)).Add(t.translation)
}

// ApplyInverse maps v back through the transformation: S⁻¹·Rᵀ·(v - t).
// R is assumed orthonormal. A zero scale factor yields ±Inf components.
func (t Transformation) ApplyInverse(v vector.Vec3d) vector.Vec3d {
	if t.identity {
		return v
	}
	out := t.rotation.Transpose().MulVec(v.Sub(t.translation))
	if t.uniform {
		return out.Div(t.scale[0])
	}

	s := t.scale
	sxy, syz, sxz := s[0]*s[1], s[1]*s[2], s[0]*s[2]
	invDet := 1 / (sxy * s[2])

	return vector.New3(out[0]*invDet*syz, out[1]*invDet*sxz, out[2]*invDet*sxy)
}

// Combine returns the transformation equivalent to applying local first and
// then parent, i.e. the product parent·local of their matrices:
//
//	r = r1·r2, s = s1⊙s2, t = t1 + r1·(s1⊙t2)
//
// The result is exact when parent has uniform scale; a non-uniform parent
// scale cannot be carried through a rotation-scale-translation triple.
// The result is uniform only when both inputs are.
func Combine(parent, local Transformation) Transformation {
	if parent.identity {
		return local
	}
	if local.identity {
		return parent
	}

	return Transformation{
		rotation:    parent.rotation.Mul(local.rotation),
		scale:       parent.scale.Mul(local.scale),
		translation: parent.translation.Add(parent.rotation.MulVec(local.translation.Mul(parent.scale))),
		uniform:     parent.uniform && local.uniform,
	}
}

// Matrix returns the homogeneous 4×4 form [R·S | t].
func (t Transformation) Matrix() matrix.Mat4d {
	return matrix.Compose4(t.rotation.Mul(matrix.NewScale3(t.scale)), t.translation)
}

// FromMatrix loads t from an affine matrix by polar decomposition. The
// diagonal of the symmetric factor becomes the scale, so shear is dropped.
// On error t is left unchanged.
func (t *Transformation) FromMatrix(m matrix.Mat4d, opts ...matrix.Option) error {
	s, r, tr, err := m.PolarDecomposition(opts...)
	if err != nil {
		return err
	}

	t.rotation = r
	t.translation = tr
	t.scale = vector.New3(s[0], s[4], s[8])
	t.uniform = scalar.FEqual(s[0], s[4]) && scalar.FEqual(s[0], s[8])
	t.identity = false

	return nil
}

// Equal reports whether t and o describe the same map within tolerance.
func (t Transformation) Equal(o Transformation) bool {
	return t.Matrix().Equal(o.Matrix())
}
