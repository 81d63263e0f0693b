// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"context"
	"log/slog"

	"cloudeng.io/logging/ctxlog"
)

// Step identifies the heap operation being traced.
type Step int

// Values for Step.
const (
	// SiftUp is reported after an added element is swapped with its parent.
	SiftUp Step = iota
	// SiftDown is reported after an element is swapped with one of its
	// children following an extraction.
	SiftDown
	// Settled is reported once an element has reached its final position.
	Settled
)

func (s Step) String() string {
	switch s {
	case SiftUp:
		return "sift-up"
	case SiftDown:
		return "sift-down"
	case Settled:
		return "settled"
	}
	return "unknown"
}

// Tracer is called with the step just taken, the index that the element
// being moved now occupies and the heap's elements. items is only valid
// for the duration of the call and must not be modified.
type Tracer[T any] func(step Step, index int, items []T)

// LogTracer returns a Tracer that logs every step at slog.LevelDebug using
// the logger stored in ctx by ctxlog.
func LogTracer[T any](ctx context.Context) Tracer[T] {
	logger := ctxlog.Logger(ctx)
	return func(step Step, index int, items []T) {
		if !logger.Enabled(ctx, slog.LevelDebug) {
			return
		}
		logger.Debug("heap", "step", step.String(), "index", index, "len", len(items), "items", items)
	}
}
