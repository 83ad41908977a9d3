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
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// HostInfo describes the machine a benchmark session ran on, for the report
// header. Fields that could not be read carry an "[ERR:...]" marker instead
// of failing the whole report.
type HostInfo struct {
	GoVersion       string
	NumCPU          int
	CPUModel        string
	CPUMaxFreqInMHz int
	MemorySize      string
}

// CollectHostInfo gathers the host parameters relevant to sort benchmarks.
func CollectHostInfo() *HostInfo {
	hi := &HostInfo{
		GoVersion: runtime.Version(),
		NumCPU:    runtime.NumCPU(),
	}
	hi.applyCPUInfo()
	hi.applyMemInfo()
	return hi
}

func (hi *HostInfo) applyCPUInfo() {
	rawCPUInfo, err := cpu.Info()
	if err != nil {
		hi.CPUModel = fmt.Sprintf("[ERR:%s]", err)
		return
	}
	if len(rawCPUInfo) == 0 {
		hi.CPUModel = "[ERR:no logical cpus]"
		return
	}

	hi.CPUModel = rawCPUInfo[0].ModelName
	hi.CPUMaxFreqInMHz = int(rawCPUInfo[0].Mhz)
}

func (hi *HostInfo) applyMemInfo() {
	vms, err := mem.VirtualMemory()
	if err != nil {
		hi.MemorySize = fmt.Sprintf("[ERR:%s]", err)
		return
	}
	hi.MemorySize = formatBytes(vms.Total)
}

func formatBytes(v uint64) string {
	units := []string{"B", "KB", "MB", "GB", "TB"}
	f := float64(v)
	for _, unit := range units {
		if f < 1024 {
			return fmt.Sprintf("%.2f %s", f, unit)
		}
		f /= 1024
	}
	return fmt.Sprintf("%.2f PB", f)
}
