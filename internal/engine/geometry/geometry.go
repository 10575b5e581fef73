// Package geometry uploads indexed vertex data to GPU buffers.
package geometry

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ErrEmpty is returned when there is nothing to upload.
var ErrEmpty = errors.New("empty geometry")

// PositionLocation is the vertex attribute slot for xyz positions.
const PositionLocation = 0

// Points draws each index as an independent point.
const Points uint32 = gl.POINTS

// Buffer owns a VAO with one position VBO and a uint16 element buffer.
type Buffer struct {
	vao, vbo, ebo uint32
	count         int32
}

// validate checks the input before any GL call is made.
func validate(positions []float32, indices []uint16) error {
	if len(positions) == 0 || len(indices) == 0 {
		return ErrEmpty
	}
	if len(positions)%3 != 0 {
		return fmt.Errorf("position data length %d is not a multiple of 3", len(positions))
	}
	vertices := len(positions) / 3
	for i, idx := range indices {
		if int(idx) >= vertices {
			return fmt.Errorf("index %d references vertex %d of %d", i, idx, vertices)
		}
	}
	return nil
}

// New uploads positions (xyz triples) and indices once with STATIC_DRAW.
func New(positions []float32, indices []uint16) (*Buffer, error) {
	if err := validate(positions, indices); err != nil {
		return nil, err
	}

	b := &Buffer{count: int32(len(indices))}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, unsafe.Pointer(&positions[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(PositionLocation, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(PositionLocation)

	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	// The element buffer binding is VAO state, so unbind the VAO first
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return b, nil
}

// Count returns the number of indices in the element buffer.
func (b *Buffer) Count() int32 {
	return b.count
}

// Bind binds the vertex array.
func (b *Buffer) Bind() {
	gl.BindVertexArray(b.vao)
}

// Draw issues an indexed draw of count indices starting at first.
// The range is clipped to the uploaded index count.
func (b *Buffer) Draw(mode uint32, first, count int32) {
	first, count = clip(first, count, b.count)
	if count == 0 {
		return
	}
	gl.DrawElementsWithOffset(mode, count, gl.UNSIGNED_SHORT, uintptr(first)*2)
}

// Unbind clears the vertex array binding.
func (b *Buffer) Unbind() {
	gl.BindVertexArray(0)
}

// Close releases the GPU buffers.
func (b *Buffer) Close() {
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
	b.vao, b.vbo, b.ebo = 0, 0, 0
}

func clip(first, count, total int32) (int32, int32) {
	if first < 0 {
		first = 0
	}
	if first > total {
		first = total
	}
	if count < 0 || count > total-first {
		count = total - first
	}
	return first, count
}
