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

// Package blocksort provides an adaptive, cache-aware hybrid in-place sort.
//
// The algorithm combines block decomposition, insertion sort, run detection
// and a k-way heap merge:
//
//  1. The input is partitioned into consecutive blocks of roughly sqrt(n)
//     elements and each block is sorted independently with insertion sort,
//     which is fast and cache-friendly at that scale.
//  2. A single left-to-right scan groups the block-sorted array into maximal
//     ascending runs. Adjacent blocks whose boundary happens to be ordered
//     collapse into one run, so partially sorted inputs produce few runs.
//  3. The runs are merged with a min-heap holding one pending element per
//     run, O(n log k) for k runs. If the scan finds a single run the input
//     is already sorted and the merge is skipped entirely, making
//     already-sorted and nearly-sorted inputs O(n).
//
// # Supported Types
//
// Sort and IsSorted work on any slice whose element type satisfies
// cmp.Ordered. SortFunc and IsSortedFunc accept an explicit less function
// and work on any element type.
//
// # Example Usage
//
//	import "github.com/blocksort/go-blocksort/blocksort"
//
//	func ProcessData(data []int64) {
//	    blocksort.Sort(data) // in-place ascending sort
//	}
//
// # Performance
//
// The sort adapts to pre-existing order: already-sorted input is detected
// in a single pass, and inputs with long ascending stretches merge few,
// large runs. Random input degrades gracefully to O(n log n) with about
// sqrt(n) merge participants.
//
// The merge phase uses an auxiliary buffer of n elements; all other phases
// run in constant extra space. Heap ties between runs holding equal values
// resolve by run index, so the merge order is deterministic.
//
// Sorting is not guaranteed stable across runs: equal elements from
// different runs keep a deterministic order, but not necessarily the input
// order.
package blocksort
