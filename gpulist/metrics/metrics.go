// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package metrics exports GPU list statistics to Prometheus.
//
// A Recorder holds one gauge family per statistic, labelled by list label and
// strategy. Call Observe with a list's Stats after each WriteBuffer, from the
// goroutine that owns the list:
//
//	rec := metrics.NewRecorder("vshapes")
//	rec.MustRegister(prometheus.DefaultRegisterer)
//	...
//	if err := discs.WriteBuffer(device, queue); err != nil { ... }
//	rec.Observe(discs.Stats())
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gogpu/vshapes/gpulist"
)

// Recorder publishes gpulist.Stats snapshots as Prometheus metrics.
// Observe and Forget are safe for concurrent use.
type Recorder struct {
	elements       *prometheus.GaugeVec
	chunks         *prometheus.GaugeVec
	batchSize      *prometheus.GaugeVec
	uploadedBytes  *prometheus.GaugeVec
	bufferCapacity *prometheus.GaugeVec
	uploads        *prometheus.CounterVec

	mu sync.Mutex
	// lastUploads remembers the cumulative upload count per series so the
	// counter only moves by the difference.
	lastUploads map[seriesKey]uint64
}

var labelNames = []string{"list", "strategy"}

// seriesKey identifies one labelled series.
type seriesKey struct {
	label    string
	strategy gpulist.Strategy
}

// NewRecorder creates unregistered metrics under the given namespace.
func NewRecorder(namespace string) *Recorder {
	gauge := func(name, help string) *prometheus.GaugeVec {
		return prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "gpulist",
			Name:      name,
			Help:      help,
		}, labelNames)
	}
	return &Recorder{
		elements:       gauge("elements", "Elements in the latest upload"),
		chunks:         gauge("chunks", "Uniform chunks in the latest upload"),
		batchSize:      gauge("batch_size", "Elements per uniform chunk"),
		uploadedBytes:  gauge("uploaded_bytes", "Size of the latest upload in bytes"),
		bufferCapacity: gauge("buffer_capacity_bytes", "Size of the allocated GPU buffer in bytes"),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gpulist",
			Name:      "uploads_total",
			Help:      "Non-empty uploads",
		}, labelNames),
		lastUploads: make(map[seriesKey]uint64),
	}
}

// Collectors returns every metric of the recorder.
func (r *Recorder) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		r.elements,
		r.chunks,
		r.batchSize,
		r.uploadedBytes,
		r.bufferCapacity,
		r.uploads,
	}
}

// Register registers the recorder's metrics with reg.
func (r *Recorder) Register(reg prometheus.Registerer) error {
	for _, c := range r.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// MustRegister registers the recorder's metrics and panics on failure.
func (r *Recorder) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(r.Collectors()...)
}

// Observe records a snapshot. Series are keyed by list label and strategy.
func (r *Recorder) Observe(s gpulist.Stats) {
	labels := prometheus.Labels{"list": s.Label, "strategy": s.Strategy.String()}

	r.elements.With(labels).Set(float64(s.Written))
	r.chunks.With(labels).Set(float64(s.Chunks))
	r.batchSize.With(labels).Set(float64(s.BatchSize))
	r.uploadedBytes.With(labels).Set(float64(s.UploadedBytes))
	r.bufferCapacity.With(labels).Set(float64(s.BufferCapacity))

	r.mu.Lock()
	defer r.mu.Unlock()
	key := seriesKey{s.Label, s.Strategy}
	if last := r.lastUploads[key]; s.Uploads > last {
		r.uploads.With(labels).Add(float64(s.Uploads - last))
	}
	r.lastUploads[key] = s.Uploads
}

// Forget removes a released list's series.
func (r *Recorder) Forget(s gpulist.Stats) {
	labels := prometheus.Labels{"list": s.Label, "strategy": s.Strategy.String()}
	for _, vec := range []*prometheus.GaugeVec{r.elements, r.chunks, r.batchSize, r.uploadedBytes, r.bufferCapacity} {
		vec.Delete(labels)
	}
	r.uploads.Delete(labels)

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.lastUploads, seriesKey{s.Label, s.Strategy})
}
