// Copyright 2025 go-blocksort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package blocksort

import (
	"cmp"
	"math"
)

// minBlockSize is the smallest block handed to insertion sort. Below this
// size the per-run merge overhead dominates, so small inputs become a single
// block and are fully sorted by phase 1.
const minBlockSize = 32

// Sort sorts data in place in ascending order and returns the same slice
// for chaining. The sort is adaptive: already-sorted and nearly-sorted
// inputs are detected and handled in linear time.
func Sort[T cmp.Ordered](data []T) []T {
	return SortFunc(data, func(a, b T) bool { return a < b })
}

// SortFunc sorts data in place using less as the strict ordering and
// returns the same slice. less must describe a strict total order over the
// elements; if it does not (NaN-bearing floats, non-transitive orders) the
// result order is unspecified, but the call still terminates without
// reading out of bounds.
func SortFunc[T any](data []T, less func(a, b T) bool) []T {
	n := len(data)
	if n <= 1 {
		return data
	}

	bs := blockSize(n)
	for start := 0; start < n; start += bs {
		insertionSort(data, start, min(start+bs, n), less)
	}

	runs := detectRuns(data, less)
	if len(runs) == 1 {
		// Single run covering [0, n): already sorted.
		return data
	}

	mergeRuns(data, runs, less)
	return data
}

// IsSorted reports whether data is in ascending order.
func IsSorted[T cmp.Ordered](data []T) bool {
	return IsSortedFunc(data, func(a, b T) bool { return a < b })
}

// IsSortedFunc reports whether data is ordered according to less.
func IsSortedFunc[T any](data []T, less func(a, b T) bool) bool {
	for i := 1; i < len(data); i++ {
		if less(data[i], data[i-1]) {
			return false
		}
	}
	return true
}

// blockSize balances insertion sort's cost per block against the number of
// merge participants: sqrt(n) blocks of sqrt(n) elements keep the merge
// heap small while each block still fits comfortably in cache.
func blockSize(n int) int {
	return max(minBlockSize, int(math.Sqrt(float64(n))))
}

// insertionSort sorts data[start:end] in place. The shift condition is
// strict, so equal elements within a block keep their input order.
func insertionSort[T any](data []T, start, end int, less func(a, b T) bool) {
	for i := start + 1; i < end; i++ {
		key := data[i]
		j := i - 1
		for j >= start && less(key, data[j]) {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

// run is a maximal ascending index range [start, end) of the block-sorted
// array. Runs are disjoint and cover [0, n).
type run struct {
	start, end int
}

// detectRuns scans once left to right and groups maximal ascending
// stretches. Run boundaries usually coincide with block boundaries, but an
// ordered block boundary joins the neighbors into one longer run.
func detectRuns[T any](data []T, less func(a, b T) bool) []run {
	n := len(data)
	runs := make([]run, 0, 8)
	for i := 0; i < n; {
		start := i
		for i < n-1 && !less(data[i+1], data[i]) {
			i++
		}
		runs = append(runs, run{start: start, end: i + 1})
		i++
	}
	return runs
}

// mergeRuns performs the k-way merge of the detected runs. The heap holds
// at most one pending element per run, ties between equal values resolve
// by run index. Output goes to an auxiliary buffer and is copied back:
// writing merged output into the array while cursors still read from it
// can overwrite unread elements of a slow run, so the in-place variant is
// only sound when the write index provably trails every cursor.
func mergeRuns[T any](data []T, runs []run, less func(a, b T) bool) {
	h := newMergeHeap(len(runs), less)
	cursors := make([]int, len(runs))
	for id, r := range runs {
		cursors[id] = r.start + 1
		h.push(heapItem[T]{value: data[r.start], run: id})
	}

	out := make([]T, len(data))
	for w := 0; h.len() > 0; w++ {
		item := h.pop()
		out[w] = item.value
		if cursors[item.run] < runs[item.run].end {
			h.push(heapItem[T]{value: data[cursors[item.run]], run: item.run})
			cursors[item.run]++
		}
	}
	copy(data, out)
}
