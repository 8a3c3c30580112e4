package hostinfo

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Info describes the machine a benchmark ran on. It is recorded with each
// persisted run so measurements stay comparable across hosts.
type Info struct {
	CPUModel   string `json:"cpu_model"`
	CPUThreads int    `json:"cpu_threads"`
	RAMBytes   uint64 `json:"ram_total_bytes"`
	OS         string `json:"os"`
	Arch       string `json:"arch"`
}

// Collect gathers CPU and memory facts about the current host. Fields that
// cannot be detected stay at their zero value instead of failing the run.
func Collect() Info {
	info := Info{
		CPUThreads: runtime.NumCPU(),
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
	}

	if cpus, err := cpu.Info(); err == nil && len(cpus) > 0 {
		info.CPUModel = cpus[0].ModelName
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		info.RAMBytes = vm.Total
	}

	return info
}
