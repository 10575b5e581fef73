package geometry

import (
	"errors"
	"math"
	"testing"
)

func TestValidate(t *testing.T) {
	tri := []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}

	tests := []struct {
		name      string
		positions []float32
		indices   []uint16
		wantErr   bool
		wantEmpty bool
	}{
		{"valid", tri, []uint16{0, 1, 2}, false, false},
		{"no positions", nil, []uint16{0}, true, true},
		{"no indices", tri, nil, true, true},
		{"ragged positions", tri[:8], []uint16{0, 1}, true, false},
		{"index out of range", tri, []uint16{0, 1, 3}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(tt.positions, tt.indices)
			if (err != nil) != tt.wantErr {
				t.Fatalf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if errors.Is(err, ErrEmpty) != tt.wantEmpty {
				t.Errorf("errors.Is(err, ErrEmpty) = %v, want %v", errors.Is(err, ErrEmpty), tt.wantEmpty)
			}
		})
	}
}

func TestNewRejectsEmptyWithoutGL(t *testing.T) {
	if _, err := New(nil, nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("New(nil, nil) error = %v, want ErrEmpty", err)
	}
}

func TestClip(t *testing.T) {
	tests := []struct {
		first, count, total int32
		wantFirst, wantCnt  int32
	}{
		{0, 9, 9, 0, 9},
		{0, 100, 9, 0, 9},
		{3, -1, 9, 3, 6},
		{-2, 4, 9, 0, 4},
		{12, 3, 9, 9, 0},
		{1, math.MaxInt32, 9, 1, 8},
	}
	for _, tt := range tests {
		f, c := clip(tt.first, tt.count, tt.total)
		if f != tt.wantFirst || c != tt.wantCnt {
			t.Errorf("clip(%d, %d, %d) = (%d, %d), want (%d, %d)",
				tt.first, tt.count, tt.total, f, c, tt.wantFirst, tt.wantCnt)
		}
	}
}
