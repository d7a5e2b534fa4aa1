// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package instance defines the per-shape records pushed into GPU lists.
//
// Every record satisfies layout.ShaderType and mirrors a WGSL struct whose
// source is available from the record's WGSL method, so a shader and the
// host agree on one layout:
//
//	discs, _ := gpulist.New[instance.Disc](device)
//	idx := discs.Push(instance.Disc{
//	    Style: instance.Style{
//	        Transform: instance.Identity(),
//	        Color:     f32.Vec4{1, 0, 0, 1},
//	    },
//	    Radius: 0.5,
//	})
//
// All records start with a Style: a world transform, a linear RGBA color,
// a thickness and packed Flags. Records are 16-byte
// multiples so their uniform and storage strides are equal.
package instance
