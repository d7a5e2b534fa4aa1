// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpulist

import (
	"fmt"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/vshapes/layout"
)

// BatchedUniformBuffer packs a stream of elements into chunks of
// array<T, N> inside one uniform buffer, every chunk at its own dynamic
// offset.
//
// N, the batch size, is as large as the device allows, so a shader that
// gets the element index by other means (an instance index, a push
// constant) can draw up to N elements per bind. Without batching every
// element would need its own dynamic offset and rebind.
//
// Dynamic offsets are multiples of the device's
// min_uniform_buffer_offset_alignment: chunk k lives at
// k * RoundUp(Size(), alignment).
type BatchedUniformBuffer[T layout.ShaderType] struct {
	// chunks holds the committed arrays. Entries past len are kept so their
	// backing slices are reused next frame.
	chunks []committedChunk[T]
	// temp accumulates pushes until it is full or the buffer is written.
	temp cappedArray[T]

	currentOffset          uint32
	dynamicOffsetAlignment uint32
	stride                 uint64

	writer *layout.Writer
	gpu    gpuBuffer
	// written is the element count of the latest upload.
	written int
}

// committedChunk is a flushed array and the offset it was assigned.
type committedChunk[T layout.ShaderType] struct {
	offset uint32
	array  cappedArray[T]
}

// UniformBatchSize returns how many elements of T fit in one uniform chunk:
// min(MaxUniformBufferBindingSize, cap) divided by T's uniform array stride,
// where cap is MaxReasonableUniformBindingSize unless overridden with
// WithBindingSizeCap.
//
// For records whose size is a multiple of 16 bytes the stride equals the
// record size. A result of zero means T cannot use the uniform strategy.
func UniformBatchSize[T layout.ShaderType](limits gputypes.Limits, opts ...Option) int {
	return uniformBatchSize[T](limits, newOptions(opts).bindingSizeCap)
}

func uniformBatchSize[T layout.ShaderType](limits gputypes.Limits, bindingSizeCap uint64) int {
	maxBinding := min(uint64(limits.MaxUniformBufferBindingSize), bindingSizeCap)
	return int(maxBinding / layout.UniformStride[T]()) //nolint:gosec // bounded by 1 MiB / 16
}

// NewBatchedUniformBuffer creates an empty buffer sized for the given limits.
//
// It returns ErrZeroBatchSize when a single T is larger than the capped
// binding size and ErrInvalidAlignment when the limits report a zero offset
// alignment.
func NewBatchedUniformBuffer[T layout.ShaderType](limits gputypes.Limits, opts ...Option) (*BatchedUniformBuffer[T], error) {
	o := newOptions(opts)
	return newBatchedUniformBuffer[T](limits, o)
}

func newBatchedUniformBuffer[T layout.ShaderType](limits gputypes.Limits, o options) (*BatchedUniformBuffer[T], error) {
	alignment := uint32(limits.MinUniformBufferOffsetAlignment) //nolint:gosec // WebGPU limits are u32
	if alignment == 0 {
		return nil, ErrInvalidAlignment
	}
	capacity := uniformBatchSize[T](limits, o.bindingSizeCap)
	if capacity == 0 {
		return nil, fmt.Errorf("%w: stride %d, max binding size %d",
			ErrZeroBatchSize, layout.UniformStride[T](),
			min(uint64(limits.MaxUniformBufferBindingSize), o.bindingSizeCap))
	}

	return &BatchedUniformBuffer[T]{
		temp:                   newCappedArray[T](capacity),
		dynamicOffsetAlignment: alignment,
		stride:                 layout.UniformStride[T](),
		writer:                 layout.NewWriter(0),
		gpu: gpuBuffer{
			label: o.label,
			usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
		},
	}, nil
}

// Size returns the GPU size of one chunk. It depends only on the batch
// size, not on how many elements a chunk holds.
func (b *BatchedUniformBuffer[T]) Size() uint64 {
	return b.temp.size(b.stride)
}

// BatchSize returns the capacity of every chunk.
func (b *BatchedUniformBuffer[T]) BatchSize() int {
	return b.temp.capacity
}

// Alignment returns the dynamic offset alignment chunks are placed at.
func (b *BatchedUniformBuffer[T]) Alignment() uint32 {
	return b.dynamicOffsetAlignment
}

// Len returns the number of elements pushed since the last Clear.
func (b *BatchedUniformBuffer[T]) Len() int {
	n := b.temp.count()
	for i := range b.chunks {
		n += b.chunks[i].array.count()
	}
	return n
}

// Chunks returns the number of committed chunks.
func (b *BatchedUniformBuffer[T]) Chunks() int {
	return len(b.chunks)
}

// Clear drops all elements and resets the offset to zero. Allocated
// capacity is kept.
func (b *BatchedUniformBuffer[T]) Clear() {
	for i := range b.chunks {
		b.chunks[i].array.reset()
	}
	b.chunks = b.chunks[:0]
	b.currentOffset = 0
	b.temp.reset()
}

// Push appends v and returns where the shader will find it: the index inside
// its chunk and the chunk's dynamic offset. When the chunk becomes full it is
// flushed, so the next push starts a new chunk.
func (b *BatchedUniformBuffer[T]) Push(v T) Index {
	idx := Index{
		Index:         uint32(b.temp.count()), //nolint:gosec // bounded by batch size
		DynamicOffset: b.currentOffset,
		HasOffset:     true,
	}
	b.temp.push(v)
	if b.temp.full() {
		b.Flush()
	}
	return idx
}

// Flush commits the in-progress chunk at the current offset and moves the
// offset to the next aligned slot. Flushing an empty chunk does nothing.
// It panics if the next offset does not fit in 32 bits.
func (b *BatchedUniformBuffer[T]) Flush() {
	if b.temp.count() == 0 {
		return
	}
	next := uint64(b.currentOffset) + layout.RoundUp(b.Size(), uint64(b.dynamicOffsetAlignment))
	if next > math.MaxUint32 {
		panic(fmt.Sprintf("gpulist: dynamic offset overflow (offset %d, chunk size %d)", b.currentOffset, b.Size()))
	}

	n := len(b.chunks)
	if n < cap(b.chunks) {
		b.chunks = b.chunks[:n+1]
	} else {
		b.chunks = append(b.chunks, committedChunk[T]{})
	}
	c := &b.chunks[n]
	c.offset = b.currentOffset
	c.array.items = append(c.array.items[:0], b.temp.items...)
	c.array.capacity = b.temp.capacity

	b.currentOffset = uint32(next) //nolint:gosec // checked above
	b.temp.reset()
}

// WriteBuffer flushes pending elements and uploads every chunk, each at its
// offset, with one queue write.
func (b *BatchedUniformBuffer[T]) WriteBuffer(device Device, queue Queue) error {
	if b.temp.count() > 0 {
		b.Flush()
	}

	b.writer.Reset()
	for i := range b.chunks {
		c := &b.chunks[i]
		b.writer.Seek(int(c.offset))
		c.array.writeTo(b.writer, b.stride)
	}
	b.writer.Seek(int(b.currentOffset))
	b.written = b.Len()

	return b.gpu.upload(device, queue, b.writer.Bytes())
}

// Binding returns one chunk's worth of the uniform buffer, to be used with
// a dynamic offset. It reports false when the latest write uploaded nothing.
func (b *BatchedUniformBuffer[T]) Binding() (Binding, bool) {
	return b.gpu.binding(b.Size())
}

// Release frees the GPU buffer. The buffer stays usable; the next
// WriteBuffer allocates a new one.
func (b *BatchedUniformBuffer[T]) Release(device Device) {
	b.gpu.release(device)
}

// Offsets returns the dynamic offsets of the committed chunks in order.
func (b *BatchedUniformBuffer[T]) Offsets() []uint32 {
	offsets := make([]uint32, len(b.chunks))
	for i := range b.chunks {
		offsets[i] = b.chunks[i].offset
	}
	return offsets
}
