// internal/model/stats.go
package model

// CoreTicks is one line of CPU tick accounting. Index 0 of a CoreTicks slice
// is the aggregate of all cores.
type CoreTicks struct {
	Total uint64
	Idle  uint64
}

// MemoryTotals holds physical memory in bytes. Used already excludes
// free, buffers, page cache and reclaimable slab.
type MemoryTotals struct {
	Total uint64
	Used  uint64
}

// ProcessCounts holds the number of tasks on the system
type ProcessCounts struct {
	Total   int
	Running int
}

// Identity describes the host. It is read once at startup.
type Identity struct {
	OS     string
	Kernel string
}
