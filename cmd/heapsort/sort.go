// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"os"

	"cloudeng.io/binheap/heap"
	"cloudeng.io/binheap/internal/values"
	"cloudeng.io/cmdutil"
	"cloudeng.io/logging/ctxlog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func sortCmd(ctx context.Context, flagValues any, args []string) error {
	fv := flagValues.(*sortFlags)
	s, err := fv.settings(defaultTopN)
	if err != nil {
		return err
	}
	s.topN = -1
	return run(ctx, fv.LoggingFlags.LoggingConfig(), s, args)
}

func topCmd(ctx context.Context, flagValues any, args []string) error {
	fv := flagValues.(*topFlags)
	s, err := fv.settings(fv.N)
	if err != nil {
		return err
	}
	return run(ctx, fv.LoggingFlags.LoggingConfig(), s, args)
}

func run(ctx context.Context, lc cmdutil.LoggingConfig, s settings, args []string) error {
	logger, err := lc.NewLogger()
	if err != nil {
		return err
	}
	defer logger.Close()
	logger.LogBuildInfo()
	ctx = ctxlog.WithLogger(ctx, logger.Logger)

	name, rd := "stdin", io.Reader(os.Stdin)
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %q: %w", args[0], err)
		}
		defer f.Close()
		name, rd = args[0], f
	}
	return process(ctx, s, name, rd, stdout)
}

func process(ctx context.Context, s settings, name string, rd io.Reader, out io.Writer) error {
	switch s.kind {
	case values.Int:
		return drain(ctx, s, name, rd, values.ParseInt, out)
	case values.Float:
		return drain(ctx, s, name, rd, values.ParseFloat, out)
	default:
		return drain(ctx, s, name, rd, values.ParseString, out)
	}
}

func newHeap[T cmp.Ordered](ctx context.Context, s settings, size int) *heap.Heap[T] {
	opts := []heap.Option[T]{heap.WithSliceCap[T](size)}
	if s.trace {
		opts = append(opts, heap.WithTracer(heap.LogTracer[T](ctx)))
	}
	if s.max {
		return heap.NewMax(opts...)
	}
	return heap.NewMin(opts...)
}

func drain[T cmp.Ordered](ctx context.Context, s settings, name string, rd io.Reader, parse func(string) (T, error), out io.Writer) error {
	logger := ctxlog.Logger(ctx)
	vals, err := values.Scan(name, rd, parse)
	if err != nil {
		return err
	}
	logger.Info("read values", "input", name, "type", s.kind.String(), "count", len(vals), "max", s.max)
	h := newHeap[T](ctx, s, len(vals))
	for _, v := range vals {
		h.Add(v)
	}
	written := 0
	if s.topN != 0 {
		for v := range h.Drain() {
			if _, err := fmt.Fprintln(out, v); err != nil {
				return err
			}
			if written++; written == s.topN {
				break
			}
		}
	}
	logger.Info("wrote values", "count", written, "remaining", h.Len())
	if s.summary {
		p := message.NewPrinter(language.English) // commas in counts.
		if _, err := p.Fprintf(out, "%v values read, %v written\n", len(vals), written); err != nil {
			return err
		}
	}
	return nil
}
