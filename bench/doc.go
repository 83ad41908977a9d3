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

// Package bench compares blocksort against reference sorting algorithms.
//
// It generates inputs of configurable size and shape (random, nearly
// sorted, reverse sorted, duplicate-heavy), times each algorithm over
// repeated runs on fresh copies, tracks bytes allocated during the call,
// and verifies the sorted postcondition. The package performs no output
// itself; callers receive Result rows and render them however they like
// (the blockbench command prints a table and can export CSV).
package bench
