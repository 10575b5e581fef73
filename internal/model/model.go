// Package model holds the compiled-in point cloud drawn by the viewer.
package model

import "github.com/Faultbox/cloudview/pkg/math"

// Name identifies the built-in model in logs and the window title.
const Name = "TorusKnot"

// VertexCount returns the number of vertices in the model.
func VertexCount() int {
	return len(positions)
}

// CellCount returns the number of index triples in the model.
func CellCount() int {
	return len(cells)
}

// IndexCount returns the number of indices drawn per frame (three per cell).
func IndexCount() int {
	return 3 * len(cells)
}

// FlatPositions returns the vertex positions as a tightly packed xyz slice.
// The result is a fresh copy; the embedded data is never exposed for writing.
func FlatPositions() []float32 {
	out := make([]float32, 0, 3*len(positions))
	for _, p := range positions {
		out = append(out, p[0], p[1], p[2])
	}
	return out
}

// FlatIndices returns the cell indices as a flat uint16 slice.
func FlatIndices() []uint16 {
	out := make([]uint16, 0, 3*len(cells))
	for _, c := range cells {
		out = append(out, c[0], c[1], c[2])
	}
	return out
}

// Bounds returns the axis-aligned bounding box of the model.
func Bounds() (lo, hi math.Vec3) {
	if len(positions) == 0 {
		return math.Vec3{}, math.Vec3{}
	}
	lo = math.Vec3FromArray(positions[0])
	hi = lo
	for _, p := range positions[1:] {
		v := math.Vec3FromArray(p)
		lo = lo.Min(v)
		hi = hi.Max(v)
	}
	return lo, hi
}

// Center returns the midpoint of the bounding box.
func Center() math.Vec3 {
	lo, hi := Bounds()
	return lo.Add(hi).Scale(0.5)
}
