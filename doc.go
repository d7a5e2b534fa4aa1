// Package vshapes is the GPU side of a vector shape renderer for the GoGPU
// ecosystem.
//
// # Overview
//
// Shapes are drawn as instances: every frame the host collects one record
// per shape (see package instance) into a GPU list and uploads it before the
// draws that read it. This package holds the process-wide settings; the work
// is done by its sub-packages.
//
// # Packages
//
//   - layout: WGSL host-shareable layout of records, the byte Writer
//   - gpulist: per-frame lists in a storage buffer, or batched into uniform
//     chunks at dynamic offsets on devices without storage buffers
//   - instance: disc, line, rectangle and regular polygon records
//   - shader: WGSL declarations for list bindings, naga compilation
//   - gpulist/metrics: Prometheus export of list statistics
//
// # Frame cycle
//
//	list, err := gpulist.New[instance.Disc](device)
//	...
//	list.Clear()
//	idx := list.Push(disc)
//	if err := list.WriteBuffer(device, queue); err != nil { ... }
//	binding, ok := list.Binding()
//	// bind with idx.DynamicOffsets(), read element idx.Index in the shader
//
// # Logging
//
// Nothing is logged by default. SetLogger enables structured logging for
// every sub-package.
package vshapes
