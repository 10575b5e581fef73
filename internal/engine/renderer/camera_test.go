package renderer

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/cloudview/internal/engine/camera"
	"github.com/Faultbox/cloudview/pkg/math"
)

// fakeProgram records uniform uploads instead of calling GL.
type fakeProgram struct {
	declared map[string]bool
	uploads  map[string]math.Mat4
	binds    int
}

func newFakeProgram(names ...string) *fakeProgram {
	p := &fakeProgram{
		declared: make(map[string]bool),
		uploads:  make(map[string]math.Mat4),
	}
	for _, n := range names {
		p.declared[n] = true
	}
	return p
}

func (p *fakeProgram) Bind() { p.binds++ }

func (p *fakeProgram) Uniform(name string) (int32, bool) {
	if p.declared[name] {
		return 0, true
	}
	return -1, false
}

func (p *fakeProgram) SetMat4(name string, m math.Mat4) bool {
	if !p.declared[name] {
		return false
	}
	p.uploads[name] = m
	return true
}

func stockCamera() *camera.Camera {
	c := camera.New()
	c.Position = math.Vec3{X: 0, Y: 5, Z: -10}
	c.Target = math.Vec3{}
	return c
}

func TestUpdateCameraUploadsBoth(t *testing.T) {
	prog := newFakeProgram(UniformView, UniformProjection)
	m := UpdateCamera(stockCamera(), prog, math.Identity(), math.Radians(90), 1, 1, 1000)

	if prog.binds != 1 {
		t.Errorf("program bound %d times, want 1", prog.binds)
	}
	if prog.uploads[UniformView] != m.View {
		t.Error("uploaded view does not match returned view")
	}
	if prog.uploads[UniformProjection] != m.Projection {
		t.Error("uploaded projection does not match returned projection")
	}
}

func TestUpdateCameraIsPure(t *testing.T) {
	cam := stockCamera()
	transform := math.RotateY(math.Radians(30))

	first := UpdateCamera(cam, newFakeProgram(UniformView, UniformProjection), transform, 1.2, 1.5, 1, 1000)
	second := UpdateCamera(cam, newFakeProgram(UniformView, UniformProjection), transform, 1.2, 1.5, 1, 1000)

	if first != second {
		t.Errorf("identical inputs gave different matrices:\n%v\n%v", first, second)
	}
}

func TestUpdateCameraAspectOnlyScalesX(t *testing.T) {
	cam := stockCamera()
	prog := newFakeProgram(UniformView, UniformProjection)

	a := UpdateCamera(cam, prog, math.Identity(), math.Radians(90), 1, 1, 1000).Projection
	b := UpdateCamera(cam, prog, math.Identity(), math.Radians(90), 2, 1, 1000).Projection

	if got, want := b.At(0, 0), a.At(0, 0)/2; gomath.Abs(float64(got-want)) > 1e-6 {
		t.Errorf("(0,0) with aspect 2 = %v, want %v", got, want)
	}
	for i := 1; i < 16; i++ {
		if a[i] != b[i] {
			t.Errorf("element %d changed with aspect: %v -> %v", i, a[i], b[i])
		}
	}
}

func TestUpdateCameraMissingProjection(t *testing.T) {
	prog := newFakeProgram(UniformView)

	m := UpdateCamera(stockCamera(), prog, math.Identity(), math.Radians(90), 1, 1, 1000)

	if _, ok := prog.uploads[UniformProjection]; ok {
		t.Error("projection should not be uploaded when undeclared")
	}
	if prog.uploads[UniformView] != m.View {
		t.Error("view should still be uploaded")
	}
}

func TestUpdateCameraNoUniforms(t *testing.T) {
	prog := newFakeProgram()
	UpdateCamera(stockCamera(), prog, math.Identity(), math.Radians(90), 1, 1, 1000)
	if len(prog.uploads) != 0 {
		t.Errorf("expected no uploads, got %v", prog.uploads)
	}
}

func TestUpdateCameraStockScene(t *testing.T) {
	cam := stockCamera()
	fov := float32(gomath.Pi / 2)
	m := UpdateCamera(cam, newFakeProgram(UniformView, UniformProjection), math.Identity(), fov, 1, 1, 1000)

	// (1,1) is the focal length 1/tan(fov/2), 1 at 90 degrees
	want := float32(1 / gomath.Tan(float64(fov)/2))
	if got := m.Projection.At(1, 1); gomath.Abs(float64(got-want)) > 1e-6 || gomath.Abs(float64(got-1)) > 1e-6 {
		t.Errorf("projection (1,1) = %v, want %v", got, want)
	}

	rot := cam.Orientation.Conjugate().ToMat4()
	wantT := rot.TransformDirection(cam.Position.Negate())
	gotT := m.View.Translation()
	if gotT.Sub(wantT).Length() > 1e-4 {
		t.Errorf("view translation = %v, want %v", gotT, wantT)
	}
}

func TestUpdateCameraComposesTransform(t *testing.T) {
	cam := stockCamera()
	transform := math.Translate(math.Vec3{X: 1, Y: 2, Z: 3})
	m := UpdateCamera(cam, newFakeProgram(UniformView), transform, 1, 1, 1, 1000)

	want := cam.ViewMatrix().Mul(transform)
	if m.View != want {
		t.Errorf("view = %v, want camera view * transform %v", m.View, want)
	}
}
