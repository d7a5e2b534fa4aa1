// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package layout describes how host records are laid out in GPU memory.
//
// WGSL fixes the size and alignment of every host-shareable type
// (https://www.w3.org/TR/WGSL/#alignment-and-size). A record that wants to
// live in a GPU list implements [ShaderType]: it reports its size and
// alignment under those rules and serializes itself through a [Writer],
// which inserts the padding the shader expects.
//
// Example record:
//
//	type Tint struct {
//	    Color  f32.Vec4
//	    Weight float32
//	}
//
//	func (Tint) ShaderSize() uint64  { return 32 }
//	func (Tint) ShaderAlign() uint64 { return 16 }
//
//	func (t Tint) WriteShader(w *layout.Writer) {
//	    w.Vec4(t.Color)
//	    w.F32(t.Weight)
//	}
//
// The writer pads the record out to ShaderSize, so trailing struct padding
// never has to be written by hand.
package layout
