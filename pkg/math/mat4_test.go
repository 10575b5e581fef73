package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(Vec3{1, 2, 3})
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(Vec3{5, 10, 15})

	if got := m.Translation(); got != (Vec3{5, 10, 15}) {
		t.Errorf("Translate: got %v, want (5, 10, 15)", got)
	}
	if got := m.TransformVec3(Vec3{1, 2, 3}); got != (Vec3{6, 12, 18}) {
		t.Errorf("TransformVec3: got %v, want (6, 12, 18)", got)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2))
	result := m.TransformVec3(Vec3{1, 0, 0})

	// (1,0,0) rotated 90 degrees about +Y lands on -Z
	if abs(result.X) > 0.001 || abs(result.Y) > 0.001 || abs(result.Z+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestRotateAxisMatchesRotateY(t *testing.T) {
	for _, deg := range []float32{0, 22.5, 90, 180, 270, 359} {
		angle := Radians(deg)
		a := RotateAxis(Vec3{0, 1, 0}, angle)
		b := RotateY(angle)
		for i := range a {
			if abs(a[i]-b[i]) > 1e-5 {
				t.Fatalf("deg=%v element %d: RotateAxis %f, RotateY %f", deg, i, a[i], b[i])
			}
		}
	}
}

func TestRotateDoesNotMutateReceiver(t *testing.T) {
	m := Identity()
	r := m.Rotate(Radians(45), Vec3{0, 1, 0})

	if m != Identity() {
		t.Error("Rotate modified its receiver")
	}
	if r == m {
		t.Error("Rotate by 45 degrees should differ from identity")
	}
}

func TestPerspective(t *testing.T) {
	fov := float32(math.Pi / 4)
	m := Perspective(fov, 1.0, 0.1, 100.0)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	// Element [15] should be 0 for perspective projection
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	// Element [11] should be -1 for perspective projection
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestPerspectiveScaleTerms(t *testing.T) {
	fov := float32(math.Pi / 2)
	m := Perspective(fov, 2.0, 1, 1000)

	want := float32(1 / math.Tan(float64(fov)/2))
	if abs(m.At(1, 1)-want) > 1e-6 {
		t.Errorf("(1,1) = %f, want %f", m.At(1, 1), want)
	}
	if abs(m.At(0, 0)-want/2) > 1e-6 {
		t.Errorf("(0,0) = %f, want %f", m.At(0, 0), want/2)
	}
}

func TestAt(t *testing.T) {
	m := Translate(Vec3{7, 8, 9})
	if m.At(0, 3) != 7 || m.At(1, 3) != 8 || m.At(2, 3) != 9 {
		t.Errorf("At(row, 3) should read the translation column, got %v", m)
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Translate(Vec3{10, 20, 30})
	d := m.TransformDirection(Vec3{0, 0, 1})
	if d != (Vec3{0, 0, 1}) {
		t.Errorf("TransformDirection: got %v, want (0, 0, 1)", d)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3{0, 5, -10}
	m := LookAt(eye, Vec3{}, Vec3{0, 1, 0})

	got := m.TransformVec3(eye)
	if got.Length() > 1e-4 {
		t.Errorf("eye should map to the origin, got %v", got)
	}
	// Target should land on the -Z axis in front of the camera
	target := m.TransformVec3(Vec3{})
	if abs(target.X) > 1e-4 || abs(target.Y) > 1e-4 || target.Z >= 0 {
		t.Errorf("target should be on -Z, got %v", target)
	}
}
