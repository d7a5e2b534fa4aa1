// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpulist

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/vshapes/layout"
)

// Strategy is the way a List stores its elements on the GPU.
type Strategy uint8

const (
	// StrategyStorage keeps the list in one read-only storage buffer.
	StrategyStorage Strategy = iota
	// StrategyUniform packs the list into dynamically offset uniform chunks.
	StrategyUniform
)

// String returns the string representation of Strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyStorage:
		return "Storage"
	case StrategyUniform:
		return "Uniform"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// Index locates a pushed element for the draw that uses it.
type Index struct {
	// Index is the element's position in the array the shader reads.
	Index uint32

	// DynamicOffset is the byte offset of the element's chunk. Only
	// meaningful when HasOffset is set (uniform strategy).
	DynamicOffset uint32

	// HasOffset reports whether the bind group must be set with
	// DynamicOffset.
	HasOffset bool
}

// Offset returns the dynamic offset and whether there is one.
func (i Index) Offset() (uint32, bool) {
	return i.DynamicOffset, i.HasOffset
}

// DynamicOffsets returns the offsets to pass when setting the list's bind
// group for this element: one offset on the uniform strategy, none on the
// storage strategy.
func (i Index) DynamicOffsets() []uint32 {
	if !i.HasOffset {
		return nil
	}
	return []uint32{i.DynamicOffset}
}

// List is a per-frame list of T readable by shaders as an array.
//
// The storage strategy is used when the device exposes storage buffers to
// shaders, the uniform strategy otherwise (see BatchedUniformBuffer). The
// choice is made by New and never changes.
type List[T layout.ShaderType] struct {
	strategy Strategy
	label    string

	// uniform is set for StrategyUniform.
	uniform *BatchedUniformBuffer[T]

	// staged and storage are used for StrategyStorage.
	staged  []T
	stride  uint64
	writer  *layout.Writer
	storage gpuBuffer
	// written is the element count of the latest storage upload.
	written int
}

// SelectStrategy returns the strategy a List of the given limits uses.
func SelectStrategy(limits gputypes.Limits, opts ...Option) Strategy {
	return selectStrategy(limits, newOptions(opts))
}

func selectStrategy(limits gputypes.Limits, o options) Strategy {
	if !o.forceUniform && uint64(limits.MaxStorageBuffersPerShaderStage) > 0 {
		return StrategyStorage
	}
	return StrategyUniform
}

// New creates an empty list for the device, choosing its strategy from the
// device limits.
//
// On the uniform strategy it fails with ErrZeroBatchSize or
// ErrInvalidAlignment, see NewBatchedUniformBuffer.
func New[T layout.ShaderType](device Device, opts ...Option) (*List[T], error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	o := newOptions(opts)
	limits := device.Limits()

	l := &List[T]{
		strategy: selectStrategy(limits, o),
		label:    o.label,
	}
	switch l.strategy {
	case StrategyUniform:
		ub, err := newBatchedUniformBuffer[T](limits, o)
		if err != nil {
			return nil, err
		}
		l.uniform = ub
		slogger().Debug("gpulist: uniform strategy",
			"label", o.label, "batch_size", ub.BatchSize(), "chunk_size", ub.Size(), "alignment", ub.Alignment())
	case StrategyStorage:
		l.stride = layout.Stride[T]()
		l.writer = layout.NewWriter(0)
		l.storage = gpuBuffer{
			label: o.label,
			usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst,
		}
		slogger().Debug("gpulist: storage strategy", "label", o.label, "stride", l.stride)
	}
	return l, nil
}

// Strategy returns the strategy chosen at creation.
func (l *List[T]) Strategy() Strategy {
	return l.strategy
}

// Len returns the number of elements pushed since the last Clear.
func (l *List[T]) Len() int {
	switch l.strategy {
	case StrategyUniform:
		return l.uniform.Len()
	default:
		return len(l.staged)
	}
}

// Clear empties the list, keeping allocated capacity.
func (l *List[T]) Clear() {
	switch l.strategy {
	case StrategyUniform:
		l.uniform.Clear()
	case StrategyStorage:
		clear(l.staged)
		l.staged = l.staged[:0]
	}
}

// Push appends v and returns its Index.
func (l *List[T]) Push(v T) Index {
	switch l.strategy {
	case StrategyUniform:
		return l.uniform.Push(v)
	default:
		idx := Index{Index: uint32(len(l.staged))} //nolint:gosec // list length fits u32
		l.staged = append(l.staged, v)
		return idx
	}
}

// WriteBuffer uploads the pushed elements. On the storage strategy the
// staged elements are consumed: after the call the list is empty and the
// next Push returns index 0.
func (l *List[T]) WriteBuffer(device Device, queue Queue) error {
	switch l.strategy {
	case StrategyUniform:
		return l.uniform.WriteBuffer(device, queue)
	default:
		l.writer.Reset()
		layout.WriteArray(l.writer, l.staged, l.stride)
		l.written = len(l.staged)
		l.Clear()
		return l.storage.upload(device, queue, l.writer.Bytes())
	}
}

// Binding returns the buffer range to bind, or false when the latest
// WriteBuffer uploaded nothing or none happened yet.
func (l *List[T]) Binding() (Binding, bool) {
	switch l.strategy {
	case StrategyUniform:
		return l.uniform.Binding()
	default:
		return l.storage.binding(l.storage.size)
	}
}

// Release frees the list's GPU buffer.
func (l *List[T]) Release(device Device) {
	switch l.strategy {
	case StrategyUniform:
		l.uniform.Release(device)
	case StrategyStorage:
		l.storage.release(device)
	}
}

// Uniform returns the batched uniform buffer backing the list, or nil on the
// storage strategy.
func (l *List[T]) Uniform() *BatchedUniformBuffer[T] {
	return l.uniform
}

// BindingLayout returns the bind group layout entry a shader needs to read a
// List[T] created on device with the same options.
//
// Storage: read-only storage buffer, no dynamic offset, minimum binding size
// of one element. Uniform: uniform buffer with a dynamic offset and an
// unspecified minimum binding size, which the API then takes from the bound
// range.
func BindingLayout[T layout.ShaderType](
	binding uint32,
	visibility gputypes.ShaderStages,
	device Device,
	opts ...Option,
) gputypes.BindGroupLayoutEntry {
	entry := gputypes.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: visibility,
	}
	switch selectStrategy(device.Limits(), newOptions(opts)) {
	case StrategyUniform:
		entry.Buffer = &gputypes.BufferBindingLayout{
			Type:             gputypes.BufferBindingTypeUniform,
			HasDynamicOffset: true,
		}
	case StrategyStorage:
		entry.Buffer = &gputypes.BufferBindingLayout{
			Type:           gputypes.BufferBindingTypeReadOnlyStorage,
			MinBindingSize: layout.Stride[T](),
		}
	}
	return entry
}

// BatchSize returns the chunk capacity a List[T] on device uses, and false
// when the list would use storage buffers and does no batching.
func BatchSize[T layout.ShaderType](device Device, opts ...Option) (uint32, bool) {
	o := newOptions(opts)
	limits := device.Limits()
	if selectStrategy(limits, o) != StrategyUniform {
		return 0, false
	}
	return uint32(uniformBatchSize[T](limits, o.bindingSizeCap)), true //nolint:gosec // bounded by 1 MiB / 16
}
