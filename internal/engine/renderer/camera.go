package renderer

import (
	"github.com/Faultbox/cloudview/pkg/math"
)

// Uniform names written by UpdateCamera.
const (
	UniformView       = "view"
	UniformProjection = "projection"
)

// UniformTarget is a bound program that accepts matrix uniforms.
// SetMat4 reports false when the program does not declare the uniform.
type UniformTarget interface {
	Bind()
	Uniform(name string) (int32, bool)
	SetMat4(name string, m math.Mat4) bool
}

// Viewer is a camera that can refresh itself and produce a view matrix.
type Viewer interface {
	Update()
	ViewMatrix() math.Mat4
}

// Matrices are the per-frame matrices pushed to the program.
type Matrices struct {
	Projection math.Mat4
	View       math.Mat4
}

// UpdateCamera refreshes cam, recomputes projection and view, and uploads them
// to prog. view is the camera view matrix times transform. Uniforms the
// program does not declare are skipped. Nothing is cached between calls.
func UpdateCamera(cam Viewer, prog UniformTarget, transform math.Mat4, fov, aspect, near, far float32) Matrices {
	cam.Update()
	prog.Bind()

	m := Matrices{
		Projection: math.Perspective(fov, aspect, near, far),
		View:       cam.ViewMatrix().Mul(transform),
	}

	if _, ok := prog.Uniform(UniformView); ok {
		prog.SetMat4(UniformView, m.View)
	}
	if _, ok := prog.Uniform(UniformProjection); ok {
		prog.SetMat4(UniformProjection, m.Projection)
	}
	return m
}
