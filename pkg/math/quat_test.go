package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := float32(math.Sqrt(float64(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)))
	if math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}

	if (Quat{}).Normalize() != QuatIdentity() {
		t.Error("zero quaternion should normalize to identity")
	}
}

func TestQuatToMat4(t *testing.T) {
	m := QuatIdentity().ToMat4()

	identity := Identity()
	for i := 0; i < 16; i++ {
		if math.Abs(float64(m[i]-identity[i])) > 0.0001 {
			t.Errorf("Identity quat should produce identity matrix, element %d: got %v, want %v", i, m[i], identity[i])
		}
	}
}

func TestQuatToMat4MatchesRotateY(t *testing.T) {
	angle := Radians(30)
	m := QuatFromAxisAngle(Vec3{0, 1, 0}, angle).ToMat4()
	want := RotateY(angle)

	for i := range m {
		if abs(m[i]-want[i]) > 1e-5 {
			t.Fatalf("element %d: got %f, want %f", i, m[i], want[i])
		}
	}
}

func TestQuatConjugateInverts(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{0, 1, 0}, Radians(60))
	r := q.Mul(q.Conjugate())

	if abs(r.W-1) > 1e-5 || abs(r.X) > 1e-5 || abs(r.Y) > 1e-5 || abs(r.Z) > 1e-5 {
		t.Errorf("q * conj(q) should be identity, got %+v", r)
	}
}

func TestQuatFromMat4RoundTrip(t *testing.T) {
	axes := []Vec3{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}, Vec3{1, 1, 0}.Normalize()}
	for _, axis := range axes {
		for _, deg := range []float32{10, 90, 179, 250} {
			m := RotateAxis(axis, Radians(deg))
			got := QuatFromMat4(m).ToMat4()
			for i := range m {
				if abs(got[i]-m[i]) > 1e-4 {
					t.Fatalf("axis %v deg %v element %d: got %f, want %f", axis, deg, i, got[i], m[i])
				}
			}
		}
	}
}
