// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpulist

import "errors"

var (
	// ErrZeroBatchSize is returned when not even one element fits in a
	// uniform binding, so the uniform strategy cannot hold anything.
	ErrZeroBatchSize = errors.New("gpulist: element does not fit in a uniform binding")

	// ErrInvalidAlignment is returned when the device reports a zero
	// uniform offset alignment.
	ErrInvalidAlignment = errors.New("gpulist: uniform offset alignment must be non-zero")

	// ErrNilDevice is returned when a list is created without a device.
	ErrNilDevice = errors.New("gpulist: device is nil")

	// ErrNilProvider is returned by FromProvider for a nil provider.
	ErrNilProvider = errors.New("gpulist: nil DeviceProvider")

	// ErrNoHAL is returned by FromProvider when the provider does not expose
	// HAL device and queue handles.
	ErrNoHAL = errors.New("gpulist: provider does not expose HAL types")

	// ErrInvalidConfig is returned when a configuration value is out of range.
	ErrInvalidConfig = errors.New("gpulist: invalid config")
)
