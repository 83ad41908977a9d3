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

// heapItem pairs a pending merge value with the run it was read from.
type heapItem[T any] struct {
	value T
	run   int
}

// mergeHeap is a binary min-heap over (value, run) pairs, ordered by value
// with run index as tiebreaker. A typed heap avoids the interface boxing of
// container/heap on the merge hot path.
type mergeHeap[T any] struct {
	items []heapItem[T]
	less  func(a, b T) bool
}

func newMergeHeap[T any](capacity int, less func(a, b T) bool) *mergeHeap[T] {
	return &mergeHeap[T]{
		items: make([]heapItem[T], 0, capacity),
		less:  less,
	}
}

// itemLess orders lexicographically on (value, run). The run tiebreak makes
// merge output deterministic when different runs hold equal values.
func (h *mergeHeap[T]) itemLess(a, b heapItem[T]) bool {
	if h.less(a.value, b.value) {
		return true
	}
	if h.less(b.value, a.value) {
		return false
	}
	return a.run < b.run
}

func (h *mergeHeap[T]) len() int {
	return len(h.items)
}

func (h *mergeHeap[T]) push(item heapItem[T]) {
	h.items = append(h.items, item)
	h.siftUp(len(h.items) - 1)
}

func (h *mergeHeap[T]) pop() heapItem[T] {
	top := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items = h.items[:last]
	if last > 0 {
		h.siftDown(0)
	}
	return top
}

func (h *mergeHeap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.itemLess(h.items[i], h.items[parent]) {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *mergeHeap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && h.itemLess(h.items[left], h.items[smallest]) {
			smallest = left
		}
		if right < n && h.itemLess(h.items[right], h.items[smallest]) {
			smallest = right
		}

		if smallest == i {
			break
		}

		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}
