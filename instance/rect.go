// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package instance

import (
	"golang.org/x/image/math/f32"

	"github.com/gogpu/vshapes/layout"
)

// Rect is an axis-aligned rectangle centered on the shape's origin.
type Rect struct {
	Style
	Size f32.Vec2
	// CornerRadii holds the radius of each corner, clockwise from the top
	// left.
	CornerRadii f32.Vec4
}

func (Rect) ShaderSize() uint64  { return 112 }
func (Rect) ShaderAlign() uint64 { return recordAlign }

func (r Rect) WriteShader(w *layout.Writer) {
	r.Style.write(w)
	w.Vec2(r.Size)
	w.Vec4(r.CornerRadii)
}

// WGSL returns the shader declaration of the record.
func (Rect) WGSL() string {
	return "struct Rect {\n" + styleWGSL + `    size: vec2<f32>,
    corner_radii: vec4<f32>,
}
`
}
