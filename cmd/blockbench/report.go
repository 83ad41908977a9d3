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

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/blocksort/go-blocksort/bench"
)

var reportHeader = []string{"Size", "Input Type", "Algorithm", "Avg Time (s)", "Avg Memory (MB)", "Correct"}

func writeHostHeader(w io.Writer, hi *bench.HostInfo) {
	fmt.Fprintf(w, "Host: %s", hi.CPUModel)
	if hi.CPUMaxFreqInMHz > 0 {
		fmt.Fprintf(w, " @ %d MHz", hi.CPUMaxFreqInMHz)
	}
	fmt.Fprintf(w, ", %d logical CPUs, %s RAM, %s\n\n", hi.NumCPU, hi.MemorySize, hi.GoVersion)
}

func renderTable(w io.Writer, results []bench.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(reportHeader)
	table.SetAutoFormatHeaders(false)
	for _, r := range results {
		table.Append(resultRow(r))
	}
	table.Render()
}

func writeCSV(path string, results []bench.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(reportHeader); err != nil {
		return err
	}
	for _, r := range results {
		if err := w.Write(resultRow(r)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func resultRow(r bench.Result) []string {
	correct := "Yes"
	if !r.Sorted {
		correct = "No"
	}
	return []string{
		strconv.Itoa(r.Size),
		string(r.Distribution),
		r.Algorithm,
		fmt.Sprintf("%.6f", r.MeanTime.Seconds()),
		fmt.Sprintf("%.2f", r.MeanAllocMB),
		correct,
	}
}
