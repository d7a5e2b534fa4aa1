// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpulist

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// halDevice adapts a hal.Device to Device.
type halDevice struct {
	device hal.Device
	limits gputypes.Limits
}

// NewHALDevice wraps a HAL device. limits must be the limits the device was
// opened with.
func NewHALDevice(device hal.Device, limits gputypes.Limits) Device {
	return &halDevice{device: device, limits: limits}
}

func (d *halDevice) Limits() gputypes.Limits {
	return d.limits
}

func (d *halDevice) CreateBuffer(label string, size uint64, usage gputypes.BufferUsage) (hal.Buffer, error) {
	return d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  size,
		Usage: usage,
	})
}

func (d *halDevice) DestroyBuffer(buffer hal.Buffer) {
	d.device.DestroyBuffer(buffer)
}

// halQueue adapts a hal.Queue to Queue.
type halQueue struct {
	queue hal.Queue
}

// NewHALQueue wraps a HAL queue.
func NewHALQueue(queue hal.Queue) Queue {
	return halQueue{queue: queue}
}

func (q halQueue) WriteBuffer(buffer hal.Buffer, offset uint64, data []byte) {
	q.queue.WriteBuffer(buffer, offset, data)
}

// FromProvider returns the device and queue shared by a host application.
//
// The provider must also implement HalDevice() any and HalQueue() any
// returning hal.Device and hal.Queue. If it has a Limits() gputypes.Limits
// method its limits are used, otherwise gputypes.DefaultLimits().
func FromProvider(provider gpucontext.DeviceProvider) (Device, Queue, error) {
	if provider == nil {
		return nil, nil, ErrNilProvider
	}
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, nil, ErrNoHAL
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, nil, ErrNoHAL
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, nil, ErrNoHAL
	}

	limits := gputypes.DefaultLimits()
	if lp, ok := provider.(interface{ Limits() gputypes.Limits }); ok {
		limits = lp.Limits()
	}
	return NewHALDevice(device, limits), NewHALQueue(queue), nil
}
