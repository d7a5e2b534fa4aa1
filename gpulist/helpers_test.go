// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpulist

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/vshapes/layout"
)

// vec4Elem is a 16-byte element.
type vec4Elem struct{ V f32.Vec4 }

func (vec4Elem) ShaderSize() uint64             { return 16 }
func (vec4Elem) ShaderAlign() uint64            { return 16 }
func (e vec4Elem) WriteShader(w *layout.Writer) { w.Vec4(e.V) }

// mat4Elem is a 64-byte element.
type mat4Elem struct{ M f32.Mat4 }

func (mat4Elem) ShaderSize() uint64             { return 64 }
func (mat4Elem) ShaderAlign() uint64            { return 16 }
func (e mat4Elem) WriteShader(w *layout.Writer) { w.Mat4(e.M) }

func elem(i int) vec4Elem {
	v := float32(i)
	return vec4Elem{V: f32.Vec4{v, v + 0.25, v + 0.5, v + 0.75}}
}

// createNoopDevice creates a noop device and queue for testing.
// Returns the device, queue, and a cleanup function.
func createNoopDevice(t *testing.T) (hal.Device, hal.Queue, func()) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	cleanup := func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return openDev.Device, openDev.Queue, cleanup
}

// storageLimits describes a desktop-class device.
func storageLimits() gputypes.Limits {
	l := gputypes.DefaultLimits()
	l.MaxStorageBuffersPerShaderStage = 8
	l.MaxUniformBufferBindingSize = 65536
	l.MinUniformBufferOffsetAlignment = 256
	return l
}

// uniformLimits describes a device without storage buffers (WebGL2-class).
func uniformLimits() gputypes.Limits {
	l := storageLimits()
	l.MaxStorageBuffersPerShaderStage = 0
	return l
}

// testDevice wraps a noop HAL device and counts buffer traffic.
type testDevice struct {
	Device
	created   int
	destroyed int
	sizes     []uint64
	failWith  error
}

func newTestDevice(t *testing.T, limits gputypes.Limits) *testDevice {
	t.Helper()
	dev, _, cleanup := createNoopDevice(t)
	t.Cleanup(cleanup)
	return &testDevice{Device: NewHALDevice(dev, limits)}
}

func (d *testDevice) CreateBuffer(label string, size uint64, usage gputypes.BufferUsage) (hal.Buffer, error) {
	if d.failWith != nil {
		return nil, d.failWith
	}
	d.created++
	d.sizes = append(d.sizes, size)
	return d.Device.CreateBuffer(label, size, usage)
}

func (d *testDevice) DestroyBuffer(buffer hal.Buffer) {
	d.destroyed++
	d.Device.DestroyBuffer(buffer)
}

type recordedWrite struct {
	buffer hal.Buffer
	offset uint64
	data   []byte
}

// recordingQueue keeps a copy of every write.
type recordingQueue struct {
	writes []recordedWrite
}

func (q *recordingQueue) WriteBuffer(buffer hal.Buffer, offset uint64, data []byte) {
	q.writes = append(q.writes, recordedWrite{
		buffer: buffer,
		offset: offset,
		data:   append([]byte(nil), data...),
	})
}

func (q *recordingQueue) last(t *testing.T) recordedWrite {
	t.Helper()
	if len(q.writes) == 0 {
		t.Fatal("no queue writes recorded")
	}
	return q.writes[len(q.writes)-1]
}

// vec4At decodes a vec4<f32> at off.
func vec4At(b []byte, off uint64) f32.Vec4 {
	var v f32.Vec4
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[off+uint64(i)*4:]))
	}
	return v
}

var errBoom = errors.New("boom")
