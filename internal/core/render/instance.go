package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Instance is a single per-draw transform reused against a shared base mesh.
// Instances have value semantics: they are rebuilt every frame they are
// needed and never mutated in place across frames.
type Instance struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// NewInstance builds an instance from a position and rotation.
func NewInstance(position mgl32.Vec3, rotation mgl32.Quat) Instance {
	return Instance{Position: position, Rotation: rotation}
}

// InstanceUniform is the GPU-facing layout of one instance: a column-major
// model-space matrix.
type InstanceUniform struct {
	Model mgl32.Mat4
}

// Uniform bakes the instance into its model matrix (translation * rotation).
func (i Instance) Uniform() InstanceUniform {
	t := mgl32.Translate3D(i.Position.X(), i.Position.Y(), i.Position.Z())
	return InstanceUniform{Model: t.Mul4(i.Rotation.Mat4())}
}
