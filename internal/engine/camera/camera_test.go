package camera

import (
	"testing"

	"github.com/Faultbox/cloudview/pkg/math"
)

func near(a, b float32) bool {
	d := a - b
	return d < 1e-4 && d > -1e-4
}

func TestNewFacesNegativeZ(t *testing.T) {
	c := New()
	if c.ViewMatrix() != math.Identity() {
		t.Errorf("camera at origin with identity orientation should give identity view, got %v", c.ViewMatrix())
	}
	if f := c.Forward(); !near(f.Z, -1) {
		t.Errorf("Forward() = %v, want (0, 0, -1)", f)
	}
}

func TestViewTranslationIsRotatedNegatedPosition(t *testing.T) {
	c := New()
	c.Position = math.Vec3{X: 0, Y: 5, Z: -10}
	c.Target = math.Vec3{}
	c.Update()

	view := c.ViewMatrix()
	rot := c.Orientation.Conjugate().ToMat4()
	want := rot.TransformDirection(c.Position.Negate())
	got := view.Translation()

	if !near(got.X, want.X) || !near(got.Y, want.Y) || !near(got.Z, want.Z) {
		t.Errorf("translation = %v, want %v", got, want)
	}
}

func TestIdentityOrientationTranslation(t *testing.T) {
	c := New()
	c.Position = math.Vec3{X: 0, Y: 5, Z: -10}

	if got := c.ViewMatrix().Translation(); got != (math.Vec3{X: 0, Y: -5, Z: 10}) {
		t.Errorf("translation = %v, want (0, -5, 10)", got)
	}
}

func TestUpdateMatchesLookAt(t *testing.T) {
	c := New()
	c.Position = math.Vec3{X: 0, Y: 5, Z: -10}
	c.Target = math.Vec3{}
	c.Update()

	got := c.ViewMatrix()
	want := math.LookAt(c.Position, c.Target, worldUp)
	for i := range got {
		if !near(got[i], want[i]) {
			t.Fatalf("element %d: got %f, want %f", i, got[i], want[i])
		}
	}
}

func TestUpdateIsIdempotent(t *testing.T) {
	c := New()
	c.Position = math.Vec3{X: 3, Y: 2, Z: 7}
	c.Target = math.Vec3{X: -1}
	c.Update()
	first := c.ViewMatrix()
	c.Update()
	if c.ViewMatrix() != first {
		t.Error("repeated Update changed the view matrix")
	}
}

func TestUpdateKeepsOrientationForDegenerateTarget(t *testing.T) {
	c := New()
	c.Position = math.Vec3{Y: 10}
	c.Target = math.Vec3{}
	before := c.Orientation
	c.Update()
	if c.Orientation != before {
		t.Errorf("looking straight down should keep orientation, got %+v", c.Orientation)
	}

	c.Target = c.Position
	c.Update()
	if c.Orientation != before {
		t.Errorf("target at position should keep orientation, got %+v", c.Orientation)
	}
}
