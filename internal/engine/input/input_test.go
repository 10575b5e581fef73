package input

import (
	gomath "math"
	"math/rand"
	"testing"

	"github.com/Faultbox/cloudview/pkg/math"
)

func TestQueueDrain(t *testing.T) {
	q := NewQueue()
	q.Push(Event{Type: EventScroll, ScrollY: 1})
	q.Push(Event{Type: EventKeyDown, Key: KeyEscape})

	if q.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", q.Len())
	}

	events := q.Drain()
	if len(events) != 2 || events[0].Type != EventScroll || events[1].Key != KeyEscape {
		t.Errorf("unexpected events %+v", events)
	}
	if q.Len() != 0 {
		t.Errorf("queue not empty after Drain: %d", q.Len())
	}
	if len(q.Drain()) != 0 {
		t.Error("second Drain should be empty")
	}
}

func TestFOVInitial(t *testing.T) {
	f := NewFOV(90, 1, 120, 0.05)
	if got, want := f.Radians(), float32(gomath.Pi/2); gomath.Abs(float64(got-want)) > 1e-6 {
		t.Errorf("Radians() = %v, want %v", got, want)
	}

	clamped := NewFOV(170, 1, 120, 0.05)
	if _, hi := clamped.Bounds(); clamped.Radians() != hi {
		t.Errorf("initial value above max should clamp to %v, got %v", hi, clamped.Radians())
	}
}

func TestFOVScrollStep(t *testing.T) {
	f := NewFOV(90, 1, 120, 0.05)
	before := f.Radians()
	f.Scroll(2)
	if got, want := f.Radians(), before+0.1; gomath.Abs(float64(got-want)) > 1e-6 {
		t.Errorf("after Scroll(2): %v, want %v", got, want)
	}
	f.Scroll(-2)
	if got := f.Radians(); gomath.Abs(float64(got-before)) > 1e-6 {
		t.Errorf("after Scroll(-2): %v, want %v", got, before)
	}
}

func TestFOVClampInvariant(t *testing.T) {
	f := NewFOV(90, 1, 120, 0.05)
	lo, hi := f.Bounds()
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 10000; i++ {
		f.Scroll(rng.NormFloat64() * 20)
		if v := f.Radians(); v < lo || v > hi {
			t.Fatalf("step %d: fov %v outside [%v, %v]", i, v, lo, hi)
		}
	}
}

func TestFOVNonFiniteDelta(t *testing.T) {
	tests := []struct {
		name   string
		deltas []float64
	}{
		{"nan", []float64{gomath.NaN()}},
		{"positive inf", []float64{gomath.Inf(1)}},
		{"negative inf", []float64{gomath.Inf(-1)}},
		{"nan then inf", []float64{gomath.NaN(), gomath.Inf(1), -3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFOV(90, 1, 120, 0.05)
			lo, hi := f.Bounds()
			before := f.Radians()
			for _, d := range tt.deltas {
				f.Scroll(d)
				if v := f.Radians(); gomath.IsNaN(float64(v)) || v < lo || v > hi {
					t.Fatalf("Scroll(%v): fov %v outside [%v, %v]", d, v, lo, hi)
				}
			}
			if len(tt.deltas) == 1 && f.Radians() != before {
				t.Errorf("non-finite delta changed fov: %v -> %v", before, f.Radians())
			}
		})
	}
}

func TestFOVBoundaries(t *testing.T) {
	f := NewFOV(90, 1, 120, 0.05)
	lo, hi := f.Bounds()

	for f.Radians() > lo {
		f.Scroll(-100)
	}
	f.Scroll(-1)
	if f.Radians() != lo {
		t.Errorf("negative scroll at min: got %v, want exactly %v", f.Radians(), lo)
	}

	for f.Radians() < hi {
		f.Scroll(100)
	}
	f.Scroll(1)
	if f.Radians() != hi {
		t.Errorf("positive scroll at max: got %v, want exactly %v", f.Radians(), hi)
	}

	if lo != math.Radians(1) || hi != math.Radians(120) {
		t.Errorf("bounds = [%v, %v], want [%v, %v]", lo, hi, math.Radians(1), math.Radians(120))
	}
}
