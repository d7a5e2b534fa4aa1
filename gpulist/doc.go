// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpulist stores per-frame lists of shape instances in GPU memory.
//
// A [List] hides two storage strategies behind one push/clear/write
// interface:
//
//   - Storage: the whole list lives in one read-only storage buffer and the
//     shader indexes it as array<T>. Used whenever the device exposes
//     storage buffers to the shader stage.
//   - Uniform: a fallback for devices without storage buffers (WebGL-class
//     hardware). Elements are packed into chunks of array<T, N> inside one
//     uniform buffer, each chunk at its own dynamic offset. See
//     [BatchedUniformBuffer].
//
// The strategy is picked once, from the device limits, when the list is
// created and never changes afterwards.
//
// # Frame cycle
//
//	list.Clear()
//	for _, d := range discs {
//	    idx := list.Push(d)          // attach idx to the draw item
//	}
//	err := list.WriteBuffer(device, queue)
//	if b, ok := list.Binding(); ok {
//	    entry := b.Entry(0)          // use in the bind group descriptor
//	}
//
// Each [Index] carries the element's position inside its array and, on the
// uniform strategy, the dynamic offset to pass when binding the group for
// that draw.
//
// # Thread Safety
//
// Lists are not safe for concurrent use. The render preparation stage owns a
// list for the duration of a frame; callers that share one must serialize
// access themselves.
package gpulist
