// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package instance

import (
	"golang.org/x/image/math/f32"

	"github.com/gogpu/vshapes/layout"
)

// Line is a segment between two points in the shape's local space.
type Line struct {
	Style
	Start f32.Vec3
	End   f32.Vec3
}

func (Line) ShaderSize() uint64  { return 128 }
func (Line) ShaderAlign() uint64 { return recordAlign }

func (l Line) WriteShader(w *layout.Writer) {
	l.Style.write(w)
	w.Vec3(l.Start)
	w.Vec3(l.End)
}

// WGSL returns the shader declaration of the record.
func (Line) WGSL() string {
	return "struct Line {\n" + styleWGSL + `    start: vec3<f32>,
    end: vec3<f32>,
}
`
}
