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
	"slices"
)

// Distribution selects the shape of generated benchmark input.
type Distribution string

const (
	// Random is uniform random values in [0, n].
	Random Distribution = "random"
	// NearlySorted is sorted input with roughly 10% of positions swapped.
	NearlySorted Distribution = "nearly_sorted"
	// ReverseSorted is strictly descending input.
	ReverseSorted Distribution = "reverse_sorted"
	// Duplicates is random values restricted to [0, 100], so runs of equal
	// elements dominate.
	Duplicates Distribution = "duplicates"
)

// AllDistributions returns every supported distribution in report order.
func AllDistributions() []Distribution {
	return []Distribution{Random, NearlySorted, ReverseSorted, Duplicates}
}

// ParseDistribution converts a string flag value into a Distribution.
func ParseDistribution(s string) (Distribution, error) {
	switch Distribution(s) {
	case Random, NearlySorted, ReverseSorted, Duplicates:
		return Distribution(s), nil
	}
	return "", fmt.Errorf("unknown distribution %q", s)
}

// Generate produces a fresh input slice of length n with the given shape.
// All randomness comes from rng so runs are reproducible from a seed.
func Generate(kind Distribution, n int, rng *rand.Rand) ([]int64, error) {
	switch kind {
	case Random:
		data := make([]int64, n)
		for i := range data {
			data[i] = rng.Int63n(int64(n) + 1)
		}
		return data, nil
	case NearlySorted:
		data := make([]int64, n)
		for i := range data {
			data[i] = rng.Int63n(int64(n) + 1)
		}
		slices.Sort(data)
		for s := 0; s < n/10; s++ {
			i, j := rng.Intn(n), rng.Intn(n)
			data[i], data[j] = data[j], data[i]
		}
		return data, nil
	case ReverseSorted:
		data := make([]int64, n)
		for i := range data {
			data[i] = int64(n - i)
		}
		return data, nil
	case Duplicates:
		data := make([]int64, n)
		for i := range data {
			data[i] = rng.Int63n(101)
		}
		return data, nil
	}
	return nil, fmt.Errorf("unknown distribution %q", kind)
}
