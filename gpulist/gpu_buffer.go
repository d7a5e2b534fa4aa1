// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpulist

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// gpuBuffer owns the GPU side of a list: one buffer that grows to fit the
// largest upload seen so far and is reused while it is big enough.
type gpuBuffer struct {
	label    string
	usage    gputypes.BufferUsage
	buffer   hal.Buffer
	capacity uint64

	// size is the byte length of the latest upload.
	size uint64
	// uploads counts non-empty uploads.
	uploads uint64
}

// upload copies data into the buffer, reallocating it when it is too small.
// An empty upload leaves the buffer allocated but unbound.
func (b *gpuBuffer) upload(device Device, queue Queue, data []byte) error {
	b.size = 0
	if len(data) == 0 {
		return nil
	}
	need := uint64(len(data))
	if b.buffer == nil || b.capacity < need {
		if b.buffer != nil {
			device.DestroyBuffer(b.buffer)
			b.buffer = nil
			b.capacity = 0
		}
		buf, err := device.CreateBuffer(b.label, need, b.usage)
		if err != nil {
			return fmt.Errorf("gpulist: create %s buffer (%d bytes): %w", b.label, need, err)
		}
		b.buffer = buf
		b.capacity = need
		slogger().Debug("gpulist: allocated buffer", "label", b.label, "size", need)
	}
	queue.WriteBuffer(b.buffer, 0, data)
	b.size = need
	b.uploads++
	return nil
}

// binding returns the bound range of window bytes starting at zero.
func (b *gpuBuffer) binding(window uint64) (Binding, bool) {
	if b.buffer == nil || b.size == 0 {
		return Binding{}, false
	}
	return Binding{Buffer: b.buffer, Offset: 0, Size: window}, true
}

func (b *gpuBuffer) release(device Device) {
	if b.buffer != nil {
		device.DestroyBuffer(b.buffer)
	}
	b.buffer = nil
	b.capacity = 0
	b.size = 0
}
