// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpulist

import (
	"fmt"

	"github.com/gogpu/vshapes/layout"
)

// cappedArray is an array<T, capacity> that may be only partially filled.
//
// Its GPU size is always that of capacity elements (at least one), because a
// uniform binding's size is fixed when the bind group layout is created. Only
// the present items are written; the shader learns the real length out of
// band and must not read past it.
type cappedArray[T layout.ShaderType] struct {
	items    []T
	capacity int
}

func newCappedArray[T layout.ShaderType](capacity int) cappedArray[T] {
	return cappedArray[T]{items: make([]T, 0, capacity), capacity: capacity}
}

// size returns the GPU size of the array for the given element stride.
func (a *cappedArray[T]) size(stride uint64) uint64 {
	return stride * uint64(max(a.capacity, 1))
}

func (a *cappedArray[T]) count() int {
	return len(a.items)
}

func (a *cappedArray[T]) full() bool {
	return len(a.items) >= a.capacity
}

func (a *cappedArray[T]) push(v T) {
	if a.full() {
		panic(fmt.Sprintf("gpulist: capped array overflow (capacity %d)", a.capacity))
	}
	a.items = append(a.items, v)
}

func (a *cappedArray[T]) reset() {
	clear(a.items)
	a.items = a.items[:0]
}

// writeTo serializes the present items at the writer's position.
func (a *cappedArray[T]) writeTo(w *layout.Writer, stride uint64) {
	if len(a.items) > a.capacity {
		panic(fmt.Sprintf("gpulist: capped array holds %d items, capacity %d", len(a.items), a.capacity))
	}
	layout.WriteArray(w, a.items, stride)
}
