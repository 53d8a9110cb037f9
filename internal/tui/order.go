package tui

import (
	"cmp"
	"slices"

	"github.com/rusenback/sysmon/internal/system"
)

type sortKey int

const (
	sortByCPU sortKey = iota
	sortByMemory
	sortByUptime
)

func (k sortKey) String() string {
	switch k {
	case sortByCPU:
		return "CPU"
	case sortByMemory:
		return "MEMORY"
	case sortByUptime:
		return "UPTIME"
	default:
		return "unknown"
	}
}

// arrow shows the effective direction. Uptime ascends by default.
func (k sortKey) arrow(invert bool) string {
	descending := k != sortByUptime
	if invert {
		descending = !descending
	}
	if descending {
		return "↓"
	}
	return "↑"
}

// compareProcesses orders a before b (negative result) in the key's default
// direction: CPU and memory descending, uptime ascending.
func compareProcesses(a, b system.ProcessRecord, k sortKey) int {
	switch k {
	case sortByCPU:
		return cmp.Compare(b.CPUUtilization(), a.CPUUtilization())
	case sortByMemory:
		return cmp.Compare(b.ResidentMB(), a.ResidentMB())
	case sortByUptime:
		return cmp.Compare(a.ElapsedSeconds(), b.ElapsedSeconds())
	default:
		return 0
	}
}

// orderProcesses stably sorts procs by k. Records are first arranged in
// the previous frame's pid order, so equal keys keep their place between
// refreshes; pids not seen before follow in polling order.
func orderProcesses(procs []system.ProcessRecord, k sortKey, invert bool, previous []int32) []system.ProcessRecord {
	out := slices.Clone(procs)

	if len(previous) > 0 {
		rank := make(map[int32]int, len(previous))
		for i, pid := range previous {
			rank[pid] = i
		}
		slices.SortStableFunc(out, func(a, b system.ProcessRecord) int {
			ra, okA := rank[a.Pid()]
			rb, okB := rank[b.Pid()]
			switch {
			case okA && okB:
				return cmp.Compare(ra, rb)
			case okA:
				return -1
			case okB:
				return 1
			default:
				return 0
			}
		})
	}

	slices.SortStableFunc(out, func(a, b system.ProcessRecord) int {
		c := compareProcesses(a, b, k)
		if invert {
			return -c
		}
		return c
	})
	return out
}

// filterKernelThreads drops records without a command line unless show is set
func filterKernelThreads(procs []system.ProcessRecord, show bool) []system.ProcessRecord {
	if show {
		return procs
	}
	out := make([]system.ProcessRecord, 0, len(procs))
	for _, p := range procs {
		if p.Command() != "" {
			out = append(out, p)
		}
	}
	return out
}

func pidOrder(procs []system.ProcessRecord) []int32 {
	out := make([]int32, len(procs))
	for i, p := range procs {
		out[i] = p.Pid()
	}
	return out
}
