// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap_test

import (
	"cmp"
	stdheap "container/heap"
	"math/rand"
	"testing"

	"cloudeng.io/binheap/heap"
)

type stdSlice[T cmp.Ordered] []T

func (h stdSlice[T]) Less(i, j int) bool { return h[i] < h[j] }
func (h stdSlice[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h stdSlice[T]) Len() int           { return len(h) }

func (h *stdSlice[T]) Push(v any) {
	*h = append(*h, v.(T))
}

func (h *stdSlice[T]) Pop() (v any) {
	old := *h
	n := len(old)
	v = old[n-1]
	*h = old[:n-1]
	return
}

func uniformRand(seed int64, n int) []int {
	rnd := rand.New(rand.NewSource(seed)) // #nosec: G404
	r := make([]int, n)
	for i := range r {
		r[i] = rnd.Intn(10000)
	}
	return r
}

func zipfRand(seed int64, n int) []uint64 {
	rnd := rand.New(rand.NewSource(seed))                // #nosec: G404
	gen := rand.NewZipf(rnd, 3.0, 1.1, 8*1024*1024*1024) // 8Gib
	r := make([]uint64, n)
	for i := range r {
		r[i] = gen.Uint64()
	}
	return r
}

const benchmarkInputSize = 10000

func benchmarkStdHeap[T cmp.Ordered](b *testing.B, keys []T) {
	h := make(stdSlice[T], 0, len(keys))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, k := range keys {
			stdheap.Push(&h, k)
		}
		for h.Len() > 0 {
			_ = stdheap.Pop(&h).(T)
		}
	}
}

func benchmarkHeap[T cmp.Ordered](b *testing.B, keys []T) {
	h := heap.NewMin(heap.WithSliceCap[T](len(keys)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, k := range keys {
			h.Add(k)
		}
		for range h.Drain() {
		}
	}
}

func BenchmarkStdHeapDup(b *testing.B) {
	b.ReportAllocs()
	benchmarkStdHeap(b, make([]int, benchmarkInputSize))
}

func BenchmarkStdHeapRand(b *testing.B) {
	b.ReportAllocs()
	benchmarkStdHeap(b, uniformRand(0, benchmarkInputSize))
}

func BenchmarkStdHeapZipf(b *testing.B) {
	b.ReportAllocs()
	benchmarkStdHeap(b, zipfRand(0, benchmarkInputSize))
}

func BenchmarkHeapDup(b *testing.B) {
	b.ReportAllocs()
	benchmarkHeap(b, make([]int, benchmarkInputSize))
}

func BenchmarkHeapRand(b *testing.B) {
	b.ReportAllocs()
	benchmarkHeap(b, uniformRand(0, benchmarkInputSize))
}

func BenchmarkHeapZipf(b *testing.B) {
	b.ReportAllocs()
	benchmarkHeap(b, zipfRand(0, benchmarkInputSize))
}

func BenchmarkHeapify(b *testing.B) {
	b.ReportAllocs()
	keys := uniformRand(0, benchmarkInputSize)
	data := make([]int, len(keys))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, keys)
		h := heap.NewMin(heap.WithData(data))
		for range h.Drain() {
		}
	}
}
