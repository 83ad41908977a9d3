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

// Command blockbench benchmarks the adaptive block sort against reference
// sorting algorithms over configurable input sizes and shapes, then prints
// a results table and optionally exports CSV.
//
// Usage:
//
//	blockbench --sizes 1000,100000 --runs 5
//	blockbench --distributions random,duplicates --csv results.csv
//	blockbench --config bench.toml
//
// Diagnostics go to stderr; stdout carries only the report, so output can
// be redirected or piped cleanly.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
