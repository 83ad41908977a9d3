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

package bench

import (
	"fmt"
	"math/rand"
	"runtime"
	"slices"
	"time"

	"github.com/blocksort/go-blocksort/blocksort"
)

// Algorithm is one contestant: a display name plus an in-place sort.
type Algorithm struct {
	Name string
	Sort func([]int64)
}

// DefaultAlgorithms returns the standard contestant list, blocksort first.
// StdlibSort is Go's pattern-defeating quicksort, the closest local
// equivalent of a tuned production sort.
func DefaultAlgorithms() []Algorithm {
	return []Algorithm{
		{Name: "AdaptiveBlockSort", Sort: func(d []int64) { blocksort.Sort(d) }},
		{Name: "StdlibSort", Sort: func(d []int64) { slices.Sort(d) }},
		{Name: "Quicksort", Sort: Quicksort[int64]},
		{Name: "Mergesort", Sort: Mergesort[int64]},
		{Name: "InsertionSort", Sort: InsertionSort[int64]},
	}
}

// Config drives a benchmark session.
type Config struct {
	Sizes         []int
	Distributions []Distribution
	Runs          int
	Seed          int64
	Algorithms    []Algorithm

	// OnProgress, if set, is called after every completed
	// (size, distribution, algorithm) task.
	OnProgress func(done, total int)
}

// Result is one row of the report: one algorithm on one input shape.
type Result struct {
	Size         int
	Distribution Distribution
	Algorithm    string
	MeanTime     time.Duration
	MeanAllocMB  float64
	Sorted       bool
}

// TaskCount returns the number of (size, distribution, algorithm) tasks.
func (c Config) TaskCount() int {
	return len(c.Sizes) * len(c.Distributions) * len(c.Algorithms)
}

// Run executes the full benchmark matrix and returns one Result per task.
// Each algorithm runs cfg.Runs times on fresh copies of the same generated
// input; times and allocation volumes are averaged over the runs, then one
// extra run checks the sorted postcondition.
func (c Config) Run() ([]Result, error) {
	if c.Runs <= 0 {
		return nil, fmt.Errorf("runs must be positive, got %d", c.Runs)
	}
	if len(c.Algorithms) == 0 {
		c.Algorithms = DefaultAlgorithms()
	}

	rng := rand.New(rand.NewSource(c.Seed))
	results := make([]Result, 0, c.TaskCount())
	done := 0

	for _, size := range c.Sizes {
		for _, dist := range c.Distributions {
			input, err := Generate(dist, size, rng)
			if err != nil {
				return nil, err
			}

			for _, alg := range c.Algorithms {
				results = append(results, runTask(alg, input, size, dist, c.Runs))
				done++
				if c.OnProgress != nil {
					c.OnProgress(done, c.TaskCount())
				}
			}
		}
	}
	return results, nil
}

func runTask(alg Algorithm, input []int64, size int, dist Distribution, runs int) Result {
	scratch := make([]int64, len(input))
	var totalTime time.Duration
	var totalAlloc uint64

	for r := 0; r < runs; r++ {
		copy(scratch, input)
		allocBefore := allocatedBytes()
		start := time.Now()
		alg.Sort(scratch)
		totalTime += time.Since(start)
		totalAlloc += allocatedBytes() - allocBefore
	}

	copy(scratch, input)
	alg.Sort(scratch)

	return Result{
		Size:         size,
		Distribution: dist,
		Algorithm:    alg.Name,
		MeanTime:     totalTime / time.Duration(runs),
		MeanAllocMB:  float64(totalAlloc) / float64(runs) / (1 << 20),
		Sorted:       blocksort.IsSorted(scratch),
	}
}

// allocatedBytes reads the cumulative heap allocation counter. Deltas of
// this counter measure how much a sort allocated, independent of when the
// garbage collector runs.
func allocatedBytes() uint64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.TotalAlloc
}
