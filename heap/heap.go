// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heap provides a binary heap whose ordering is determined by a
// comparator supplied when the heap is created. Elements are added with Add
// and removed, highest priority first, with Next or by ranging over Drain.
//
//	h := heap.NewMin[int]()
//	h.Add(4)
//	h.Add(2)
//	for v := range h.Drain() {
//		fmt.Println(v)
//	}
//
// A Heap is not safe for concurrent use.
package heap

import (
	"cmp"
	"iter"
)

// Heap is a binary heap stored in a slice. The element at index 0 is
// never outranked, as determined by the heap's comparator, by any other
// element.
type Heap[T any] struct {
	items  []T
	higher func(a, b T) bool
	tracer Tracer[T]
}

// New returns a heap that uses higher to order its elements. higher(a, b)
// must return true if a should be extracted before b and must implement
// a strict weak ordering over T; it is not validated.
func New[T any](higher func(a, b T) bool, opts ...Option[T]) *Heap[T] {
	var o options[T]
	for _, fn := range opts {
		fn(&o)
	}
	h := &Heap[T]{
		higher: higher,
		tracer: o.tracer,
	}
	if o.data != nil {
		h.items = o.data
		h.heapify()
		return h
	}
	h.items = make([]T, 0, o.sliceCap)
	return h
}

// NewMin returns a heap that yields its smallest element first.
func NewMin[T cmp.Ordered](opts ...Option[T]) *Heap[T] {
	return New(func(a, b T) bool { return a < b }, opts...)
}

// NewMax returns a heap that yields its largest element first.
func NewMax[T cmp.Ordered](opts ...Option[T]) *Heap[T] {
	return New(func(a, b T) bool { return a > b }, opts...)
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return len(h.items)
}

// IsEmpty returns true if the heap contains no elements.
func (h *Heap[T]) IsEmpty() bool {
	return h.Len() == 0
}

// Add adds v to the heap. v moves towards the root until its parent
// outranks it, so it is placed above any elements of equal priority on
// its path. The complexity is O(log n).
func (h *Heap[T]) Add(v T) {
	h.items = append(h.items, v)
	h.up(len(h.items) - 1)
}

// Next removes and returns the highest priority element. It returns the
// zero value and false, leaving the heap unchanged, if the heap is empty.
// The complexity is O(log n).
func (h *Heap[T]) Next() (T, bool) {
	var zero T
	n := len(h.items) - 1
	if n < 0 {
		return zero, false
	}
	h.swap(0, n)
	v := h.items[n]
	h.items[n] = zero // don't retain a reference to the extracted value.
	h.items = h.items[:n]
	h.down(0)
	return v, true
}

// Drain returns an iterator that removes and yields the heap's elements
// in priority order. Elements not yet yielded when the caller stops
// iterating remain in the heap. Ranging over an empty heap yields nothing,
// so a drained heap may be ranged over again safely. Use iter.Pull for
// the explicit pull form.
func (h *Heap[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := h.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

func (h *Heap[T]) heapify() {
	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.down(i)
	}
}

func (h *Heap[T]) up(j int) {
	for j > 0 {
		i := parent(j)
		if h.outranks(i, j) {
			break
		}
		h.swap(i, j)
		h.trace(SiftUp, i)
		j = i
	}
	h.trace(Settled, j)
}

func (h *Heap[T]) down(i int) {
	n := len(h.items)
	for {
		l, r := left(i), right(i)
		if l >= n || l < 0 { // l < 0 after int overflow
			break
		}
		j := -1
		switch {
		case r >= n:
			if h.outranks(l, i) {
				j = l
			}
		case h.outranks(l, i):
			j = l
			if h.outranks(r, l) {
				j = r
			}
		case h.outranks(r, i):
			j = r
		}
		if j < 0 {
			break
		}
		h.swap(i, j)
		h.trace(SiftDown, j)
		i = j
	}
	h.trace(Settled, i)
}

// outranks returns true if the element at i should sit above the one at j.
func (h *Heap[T]) outranks(i, j int) bool {
	return h.higher(h.items[i], h.items[j])
}

func (h *Heap[T]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

func (h *Heap[T]) trace(step Step, i int) {
	if h.tracer != nil {
		h.tracer(step, i, h.items)
	}
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return (i * 2) + 1 }
func right(i int) int  { return left(i) + 1 }
