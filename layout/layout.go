// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import "fmt"

// UniformArrayAlign is the stride multiple WGSL requires for arrays in the
// uniform address space.
const UniformArrayAlign = 16

// ShaderType is implemented by records that can be copied into GPU memory.
//
// Implementations must be usable through their zero value: lists query
// ShaderSize and ShaderAlign on a zero T to size their buffers before any
// element exists.
type ShaderType interface {
	// ShaderSize is the size of the record in bytes under WGSL layout rules,
	// including trailing padding. It must not be zero.
	ShaderSize() uint64

	// ShaderAlign is the alignment of the record under WGSL layout rules.
	// It must be a power of two.
	ShaderAlign() uint64

	// WriteShader serializes the record through w. Fields are written in
	// declaration order; w inserts the padding required by each field.
	WriteShader(w *Writer)
}

// RoundUp returns the smallest multiple of a that is >= v.
// a must be greater than zero.
func RoundUp(v, a uint64) uint64 {
	return ((v + a - 1) / a) * a
}

// Stride returns the distance between consecutive elements of type T in a
// WGSL array in the storage address space.
func Stride[T ShaderType]() uint64 {
	var zero T
	return RoundUp(zero.ShaderSize(), zero.ShaderAlign())
}

// UniformStride returns the array stride of T in the uniform address space,
// which additionally rounds the element stride up to 16 bytes.
func UniformStride[T ShaderType]() uint64 {
	return RoundUp(Stride[T](), UniformArrayAlign)
}

// Encode serializes a single record into a new slice of exactly
// ShaderSize bytes.
func Encode[T ShaderType](v T) []byte {
	w := NewWriter(int(v.ShaderSize()))
	writeRecord(w, v, v.ShaderSize())
	return w.Bytes()
}

// WriteArray serializes items as consecutive array elements spaced stride
// bytes apart, starting at the writer's current position. The space behind
// the last element is padded up to a full stride.
func WriteArray[T ShaderType](w *Writer, items []T, stride uint64) {
	for i := range items {
		writeRecord(w, items[i], stride)
	}
}

// writeRecord writes v as a record starting at the current position and
// leaves the writer exactly span bytes further.
func writeRecord[T ShaderType](w *Writer, v T, span uint64) {
	start := w.pos
	prev := w.base
	w.base = start
	v.WriteShader(w)
	if written := uint64(w.pos - start); written > v.ShaderSize() {
		panic(fmt.Sprintf("layout: %T wrote %d bytes, ShaderSize is %d", v, written, v.ShaderSize()))
	}
	w.base = prev
	w.Seek(start + int(span))
}
