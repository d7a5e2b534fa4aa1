// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import (
	"encoding/binary"
	"math"

	"golang.org/x/image/math/f32"
)

// Sizes and alignments of the WGSL scalar, vector and matrix types the
// writer knows about.
const (
	sizeScalar = 4
	sizeVec4   = 16
	sizeMat3   = 48 // three vec3 columns, each padded to 16

	alignScalar = 4
	alignVec2   = 8
	alignVec4   = 16 // also vec3, mat3x3f and mat4x4f
)

// Writer is a little-endian byte cursor that follows WGSL layout rules.
//
// Every field method first aligns the cursor to the field's alignment,
// measured from the start of the record being written, then appends the
// field's bytes. Skipped bytes are zero. The underlying buffer grows as
// needed.
type Writer struct {
	buf  []byte
	pos  int
	base int
}

// NewWriter creates a writer with room for sizeHint bytes.
func NewWriter(sizeHint int) *Writer {
	return &Writer{buf: make([]byte, 0, sizeHint)}
}

// Reset empties the writer, keeping its buffer for reuse.
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
	w.pos = 0
	w.base = 0
}

// Bytes returns the bytes written so far, including padding.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes in the buffer.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Offset returns the cursor position relative to the start of the record
// currently being written.
func (w *Writer) Offset() int {
	return w.pos - w.base
}

// Seek moves the cursor to an absolute position, zero-extending the
// buffer if the position lies past its end.
func (w *Writer) Seek(pos int) {
	w.grow(pos)
	w.pos = pos
}

// Align advances the cursor to the next multiple of a within the current
// record. Nested structs use it to start at their own alignment.
func (w *Writer) Align(a uint64) {
	rel := uint64(w.pos - w.base)
	w.Seek(w.base + int(RoundUp(rel, a)))
}

// U32 writes a u32.
func (w *Writer) U32(v uint32) {
	w.Align(alignScalar)
	binary.LittleEndian.PutUint32(w.next(sizeScalar), v)
}

// I32 writes an i32.
func (w *Writer) I32(v int32) {
	w.U32(uint32(v)) //nolint:gosec // bit-preserving reinterpretation
}

// F32 writes an f32.
func (w *Writer) F32(v float32) {
	w.U32(math.Float32bits(v))
}

// Bool writes a WGSL bool-sized u32 (0 or 1).
func (w *Writer) Bool(v bool) {
	if v {
		w.U32(1)
		return
	}
	w.U32(0)
}

// Vec2 writes a vec2<f32>.
func (w *Writer) Vec2(v f32.Vec2) {
	w.Align(alignVec2)
	w.floats(v[:])
}

// Vec3 writes a vec3<f32>. It is 16-byte aligned but only 12 bytes long,
// so a following scalar packs into its last lane.
func (w *Writer) Vec3(v f32.Vec3) {
	w.Align(alignVec4)
	w.floats(v[:])
}

// Vec4 writes a vec4<f32>.
func (w *Writer) Vec4(v f32.Vec4) {
	w.Align(alignVec4)
	w.floats(v[:])
}

// Mat3 writes a mat3x3<f32>. f32.Mat3 is row-major; WGSL matrices are
// column-major with each column padded to a vec4.
func (w *Writer) Mat3(m f32.Mat3) {
	w.Align(alignVec4)
	start := w.pos
	for c := 0; c < 3; c++ {
		w.Seek(start + c*sizeVec4)
		w.floats([]float32{m[c], m[3+c], m[6+c]})
	}
	w.Seek(start + sizeMat3)
}

// Mat4 writes a mat4x4<f32>, transposing the row-major f32.Mat4.
func (w *Writer) Mat4(m f32.Mat4) {
	w.Align(alignVec4)
	for c := 0; c < 4; c++ {
		w.floats([]float32{m[c], m[4+c], m[8+c], m[12+c]})
	}
}

func (w *Writer) floats(vs []float32) {
	for _, v := range vs {
		binary.LittleEndian.PutUint32(w.next(sizeScalar), math.Float32bits(v))
	}
}

// next reserves n bytes at the cursor and advances past them.
func (w *Writer) next(n int) []byte {
	end := w.pos + n
	w.grow(end)
	b := w.buf[w.pos:end]
	w.pos = end
	return b
}

func (w *Writer) grow(n int) {
	if n <= len(w.buf) {
		return
	}
	if n <= cap(w.buf) {
		old := len(w.buf)
		w.buf = w.buf[:n]
		clear(w.buf[old:])
		return
	}
	w.buf = append(w.buf, make([]byte, n-len(w.buf))...)
}
