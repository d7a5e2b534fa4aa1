// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpulist

// Stats is a snapshot of a list's state, for diagnostics and metrics.
type Stats struct {
	Label    string
	Strategy Strategy

	// Len is the number of elements pushed since the last Clear. On the
	// storage strategy WriteBuffer consumes the elements, so Len drops to
	// zero after an upload; Written keeps the uploaded count.
	Len int
	// Written is the number of elements in the latest upload.
	Written int

	// BatchSize and Chunks are zero on the storage strategy.
	BatchSize int
	Chunks    int

	// UploadedBytes is the size of the latest upload.
	UploadedBytes uint64
	// Uploads counts non-empty uploads since the list was created.
	Uploads uint64
	// BufferCapacity is the size of the allocated GPU buffer.
	BufferCapacity uint64
}

// Stats returns a snapshot of the list.
func (l *List[T]) Stats() Stats {
	s := Stats{
		Label:    l.label,
		Strategy: l.strategy,
		Len:      l.Len(),
	}
	switch l.strategy {
	case StrategyUniform:
		ub := l.uniform
		s.BatchSize = ub.BatchSize()
		s.Chunks = ub.Chunks()
		s.Written = ub.written
		s.UploadedBytes = ub.gpu.size
		s.Uploads = ub.gpu.uploads
		s.BufferCapacity = ub.gpu.capacity
	case StrategyStorage:
		s.Written = l.written
		s.UploadedBytes = l.storage.size
		s.Uploads = l.storage.uploads
		s.BufferCapacity = l.storage.capacity
	}
	return s
}
