// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package instance

import "github.com/gogpu/vshapes/layout"

// RegularPolygon is a polygon with Sides equal sides inscribed in a circle
// of Radius.
type RegularPolygon struct {
	Style
	Sides  uint32
	Radius float32
	// Roundness rounds the corners, in the same unit as Radius.
	Roundness float32
}

func (RegularPolygon) ShaderSize() uint64  { return 112 }
func (RegularPolygon) ShaderAlign() uint64 { return recordAlign }

func (p RegularPolygon) WriteShader(w *layout.Writer) {
	p.Style.write(w)
	w.U32(p.Sides)
	w.F32(p.Radius)
	w.F32(p.Roundness)
}

// WGSL returns the shader declaration of the record.
func (RegularPolygon) WGSL() string {
	return "struct RegularPolygon {\n" + styleWGSL + `    sides: u32,
    radius: f32,
    roundness: f32,
}
`
}
