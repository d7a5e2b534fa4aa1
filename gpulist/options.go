// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpulist

// MaxReasonableUniformBindingSize caps the uniform binding size used to size
// chunks. Some platforms (macOS) report a maximum far larger than anything
// useful, which would make every chunk, and the buffer holding it, huge.
const MaxReasonableUniformBindingSize = 1 << 20

// Option configures a list or batched uniform buffer during creation.
//
// Example:
//
//	list, err := gpulist.New[instance.Disc](device,
//	    gpulist.WithLabel("discs"),
//	    gpulist.WithForceUniform(true), // exercise the fallback on desktop
//	)
type Option func(*options)

// options holds optional configuration shared by lists and batched buffers.
type options struct {
	label          string
	forceUniform   bool
	bindingSizeCap uint64
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		label:          "gpu_list",
		bindingSizeCap: MaxReasonableUniformBindingSize,
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLabel sets the debug label given to the GPU buffers of the list.
func WithLabel(label string) Option {
	return func(o *options) {
		o.label = label
	}
}

// WithForceUniform selects the uniform strategy even when the device offers
// storage buffers. Useful to test the fallback path on desktop hardware.
func WithForceUniform(force bool) Option {
	return func(o *options) {
		o.forceUniform = force
	}
}

// WithBindingSizeCap replaces MaxReasonableUniformBindingSize as the upper
// bound of a uniform chunk. The device limit still applies when it is lower.
func WithBindingSizeCap(size uint64) Option {
	return func(o *options) {
		o.bindingSizeCap = size
	}
}
