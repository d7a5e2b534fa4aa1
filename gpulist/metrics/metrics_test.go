// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/gogpu/vshapes/gpulist"
)

func uniformStats(uploads uint64) gpulist.Stats {
	return gpulist.Stats{
		Label:          "discs",
		Strategy:       gpulist.StrategyUniform,
		Written:        10,
		BatchSize:      4,
		Chunks:         3,
		UploadedBytes:  768,
		Uploads:        uploads,
		BufferCapacity: 768,
	}
}

func TestObserve(t *testing.T) {
	r := NewRecorder("test")
	r.Observe(uniformStats(1))

	tests := []struct {
		name string
		c    prometheus.Collector
		want float64
	}{
		{"elements", r.elements.WithLabelValues("discs", "Uniform"), 10},
		{"chunks", r.chunks.WithLabelValues("discs", "Uniform"), 3},
		{"batch_size", r.batchSize.WithLabelValues("discs", "Uniform"), 4},
		{"uploaded_bytes", r.uploadedBytes.WithLabelValues("discs", "Uniform"), 768},
		{"buffer_capacity", r.bufferCapacity.WithLabelValues("discs", "Uniform"), 768},
		{"uploads", r.uploads.WithLabelValues("discs", "Uniform"), 1},
	}
	for _, tt := range tests {
		if got := testutil.ToFloat64(tt.c); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestObserveUploadsCounter(t *testing.T) {
	r := NewRecorder("test")
	r.Observe(uniformStats(1))
	r.Observe(uniformStats(1))
	r.Observe(uniformStats(4))

	if got := testutil.ToFloat64(r.uploads.WithLabelValues("discs", "Uniform")); got != 4 {
		t.Errorf("uploads_total = %v, want 4", got)
	}
}

func TestObserveSameLabelDifferentStrategies(t *testing.T) {
	r := NewRecorder("test")
	storage := gpulist.Stats{Label: "discs", Strategy: gpulist.StrategyStorage}

	r.Observe(uniformStats(3))
	storage.Uploads = 1
	r.Observe(storage)
	r.Observe(uniformStats(5))
	storage.Uploads = 2
	r.Observe(storage)

	if got := testutil.ToFloat64(r.uploads.WithLabelValues("discs", "Uniform")); got != 5 {
		t.Errorf("uniform uploads_total = %v, want 5", got)
	}
	if got := testutil.ToFloat64(r.uploads.WithLabelValues("discs", "Storage")); got != 2 {
		t.Errorf("storage uploads_total = %v, want 2", got)
	}

	r.Forget(storage)
	storage.Uploads = 4
	r.Observe(storage)
	if got := testutil.ToFloat64(r.uploads.WithLabelValues("discs", "Storage")); got != 4 {
		t.Errorf("storage uploads_total after Forget = %v, want 4", got)
	}
	if got := testutil.ToFloat64(r.uploads.WithLabelValues("discs", "Uniform")); got != 5 {
		t.Errorf("uniform uploads_total after Forget of storage = %v, want 5", got)
	}
}

func TestRegisterAndGather(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	r := NewRecorder("vshapes")
	if err := r.Register(reg); err != nil {
		t.Fatalf("Register: %v", err)
	}
	r.Observe(gpulist.Stats{Label: "lines", Strategy: gpulist.StrategyStorage, Written: 3, UploadedBytes: 96, Uploads: 1, BufferCapacity: 96})

	want := `
# HELP vshapes_gpulist_uploaded_bytes Size of the latest upload in bytes
# TYPE vshapes_gpulist_uploaded_bytes gauge
vshapes_gpulist_uploaded_bytes{list="lines",strategy="Storage"} 96
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(want), "vshapes_gpulist_uploaded_bytes"); err != nil {
		t.Error(err)
	}

	if err := r.Register(reg); err == nil {
		t.Error("registering twice succeeded")
	}
}

func TestForget(t *testing.T) {
	r := NewRecorder("test")
	s := uniformStats(2)
	r.Observe(s)
	r.Forget(s)

	if n := testutil.CollectAndCount(r.elements); n != 0 {
		t.Errorf("elements series after Forget = %d, want 0", n)
	}
	if n := testutil.CollectAndCount(r.uploads); n != 0 {
		t.Errorf("uploads series after Forget = %d, want 0", n)
	}
}
