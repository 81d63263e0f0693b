// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

type options[T any] struct {
	sliceCap int
	data     []T
	tracer   Tracer[T]
}

// Option represents the options that can be passed to New, NewMin and
// NewMax.
type Option[T any] func(*options[T])

// WithSliceCap sets the initial capacity of the slice used to hold
// the heap's elements.
func WithSliceCap[T any](n int) Option[T] {
	return func(o *options[T]) {
		o.sliceCap = n
	}
}

// WithData sets the initial contents of the heap. The heap takes ownership
// of data and reorders it in place in O(n) time. WithSliceCap is ignored
// when WithData is specified.
func WithData[T any](data []T) Option[T] {
	return func(o *options[T]) {
		o.data = data
	}
}

// WithTracer provides a function that is called as elements are moved
// within the heap, see Tracer.
func WithTracer[T any](fn Tracer[T]) Option[T] {
	return func(o *options[T]) {
		o.tracer = fn
	}
}
