// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpulist

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Device is the part of a GPU device a list needs: its limits and the
// ability to allocate and free buffers.
//
// Lists read Limits once, when they are created, and only touch buffers
// inside WriteBuffer and Release. They never keep a reference to the Device.
type Device interface {
	// Limits returns the hardware limits of the device.
	Limits() gputypes.Limits

	// CreateBuffer allocates a GPU buffer of size bytes.
	CreateBuffer(label string, size uint64, usage gputypes.BufferUsage) (hal.Buffer, error)

	// DestroyBuffer frees a buffer created by CreateBuffer.
	DestroyBuffer(buffer hal.Buffer)
}

// Queue schedules host-to-GPU copies. Writes are fire-and-forget: the call
// returns before the copy executes.
type Queue interface {
	WriteBuffer(buffer hal.Buffer, offset uint64, data []byte)
}

// Binding describes the buffer range a shader reads a list from.
type Binding struct {
	// Buffer is the GPU buffer holding the list.
	Buffer hal.Buffer

	// Offset is the start of the bound range. Dynamic offsets of the uniform
	// strategy are added on top of it at bind time.
	Offset uint64

	// Size is the length of the bound range in bytes. On the uniform
	// strategy this is the size of one chunk.
	Size uint64
}

// Entry returns the bind group entry binding b at the given slot.
func (b Binding) Entry(slot uint32) gputypes.BindGroupEntry {
	return gputypes.BindGroupEntry{
		Binding: slot,
		Resource: gputypes.BufferBinding{
			Buffer: b.Buffer.NativeHandle(),
			Offset: b.Offset,
			Size:   b.Size,
		},
	}
}
