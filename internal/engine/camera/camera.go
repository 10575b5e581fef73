// Package camera provides the viewer camera.
package camera

import "github.com/Faultbox/cloudview/pkg/math"

var worldUp = math.Vec3{X: 0, Y: 1, Z: 0}

// Camera is a free camera described by a position and an orientation.
// Orientation rotates camera space into world space.
type Camera struct {
	Position    math.Vec3
	Orientation math.Quat

	// Target is the point the camera faces after Update.
	Target math.Vec3
}

// New creates a camera at the origin facing -Z.
func New() *Camera {
	return &Camera{
		Orientation: math.QuatIdentity(),
		Target:      math.Vec3{Z: -1},
	}
}

// Update is the per-frame refresh hook. Beyond renormalizing, it re-aims the
// orientation at Target, so it is not a no-op: a camera built with New and a
// different Target turns on the first call. With Position and Target unchanged
// repeated calls give the same orientation. It never moves the camera. If
// Target coincides with Position, or the view direction is parallel to world
// up, the previous orientation is kept.
func (c *Camera) Update() {
	dir := c.Target.Sub(c.Position)
	if dir.Length() == 0 {
		c.Orientation = c.Orientation.Normalize()
		return
	}
	if dir.Normalize().Cross(worldUp).Length() < 1e-6 {
		c.Orientation = c.Orientation.Normalize()
		return
	}

	look := math.LookAt(c.Position, c.Target, worldUp)
	c.Orientation = math.QuatFromMat4(look).Conjugate()
}

// ViewMatrix returns the world-to-camera transform: the inverse orientation
// applied after translating by -Position.
func (c *Camera) ViewMatrix() math.Mat4 {
	rot := c.Orientation.Conjugate().ToMat4()
	return rot.Mul(math.Translate(c.Position.Negate()))
}

// Forward returns the world-space direction the camera looks along.
func (c *Camera) Forward() math.Vec3 {
	return c.Orientation.ToMat4().TransformDirection(math.Vec3{Z: -1})
}
