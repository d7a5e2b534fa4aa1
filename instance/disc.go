// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package instance

import "github.com/gogpu/vshapes/layout"

// Disc is a filled or hollow circle, or an arc of one when Flags.Arc is set.
type Disc struct {
	Style
	Radius float32
	// StartAngle and EndAngle bound the arc, in radians.
	StartAngle float32
	EndAngle   float32
}

func (Disc) ShaderSize() uint64  { return 112 }
func (Disc) ShaderAlign() uint64 { return recordAlign }

func (d Disc) WriteShader(w *layout.Writer) {
	d.Style.write(w)
	w.F32(d.Radius)
	w.F32(d.StartAngle)
	w.F32(d.EndAngle)
}

// WGSL returns the shader declaration of the record.
func (Disc) WGSL() string {
	return "struct Disc {\n" + styleWGSL + `    radius: f32,
    start_angle: f32,
    end_angle: f32,
}
`
}
