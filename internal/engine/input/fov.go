package input

import (
	gomath "math"

	"github.com/Faultbox/cloudview/pkg/math"
)

// FOV is a vertical field of view in radians that zooms with the scroll wheel.
// It always lies in [Min, Max].
type FOV struct {
	value    float32
	min, max float32
	step     float32
}

// NewFOV creates a field of view from degrees. The initial value is clamped
// to the range; step is the change in radians per scroll unit.
func NewFOV(initialDeg, minDeg, maxDeg, step float32) *FOV {
	f := &FOV{
		min:  math.Radians(minDeg),
		max:  math.Radians(maxDeg),
		step: step,
	}
	f.value = math.Clamp(math.Radians(initialDeg), f.min, f.max)
	return f
}

// Scroll applies a wheel delta: fov = clamp(fov + delta*step, min, max).
// Non-finite deltas are ignored. Not reentrant; call it only between frames.
func (f *FOV) Scroll(delta float64) {
	if gomath.IsNaN(delta) || gomath.IsInf(delta, 0) {
		return
	}
	f.value = math.Clamp(f.value+float32(delta)*f.step, f.min, f.max)
}

// Radians returns the current field of view.
func (f *FOV) Radians() float32 {
	return f.value
}

// Bounds returns the clamp range in radians.
func (f *FOV) Bounds() (lo, hi float32) {
	return f.min, f.max
}
