// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package instance

import (
	"golang.org/x/image/math/f32"

	"github.com/gogpu/vshapes/layout"
)

// Record alignment shared by every record (mat4x4<f32> and vec4<f32> members).
const recordAlign = 16

// Style is the header every record starts with. It occupies the first 88
// bytes of the WGSL struct.
type Style struct {
	// Transform maps the shape's local space to world space. Row-major on
	// the host, written column-major.
	Transform f32.Mat4
	// Color is linear RGBA.
	Color     f32.Vec4
	Thickness float32
	Flags     Flags
}

func (s *Style) write(w *layout.Writer) {
	w.Mat4(s.Transform)
	w.Vec4(s.Color)
	w.F32(s.Thickness)
	w.U32(s.Flags.Pack())
}

// styleWGSL lists the Style members, indented for a struct body.
const styleWGSL = `    transform: mat4x4<f32>,
    color: vec4<f32>,
    thickness: f32,
    flags: u32,
`

// Identity returns the identity transform.
func Identity() f32.Mat4 {
	return f32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation returns a transform moving shapes by (x, y, z).
func Translation(x, y, z float32) f32.Mat4 {
	return f32.Mat4{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	}
}
