// Package sourcetest provides an in-memory CounterSource for tests.
package sourcetest

import (
	"fmt"
	"slices"

	"github.com/rusenback/sysmon/internal/model"
	"github.com/rusenback/sysmon/internal/source"
)

// Fake is a scriptable CounterSource. Tests mutate the exported fields
// between polls. Processes absent from Infos report source.ErrProcessGone.
type Fake struct {
	Host    model.Identity
	Up      uint64
	Memory  model.MemoryTotals
	Counts  model.ProcessCounts
	Cores   []model.CoreTicks
	Pids    []int32
	Infos   map[int32]model.ProcessInfo
	Hz      uint64
	Err     error // returned by every system-wide query when set
	Queried map[int32]int
}

var _ source.CounterSource = (*Fake)(nil)

// NewFake returns a fake with a 100 Hz clock and no processes
func NewFake() *Fake {
	return &Fake{
		Host:    model.Identity{OS: "Test Linux 1.0", Kernel: "6.1.0-test"},
		Infos:   make(map[int32]model.ProcessInfo),
		Hz:      100,
		Queried: make(map[int32]int),
	}
}

// SetProcesses replaces the live pid set and per-pid info in one step
func (f *Fake) SetProcesses(infos map[int32]model.ProcessInfo) {
	f.Infos = infos
	f.Pids = f.Pids[:0]
	for pid := range infos {
		f.Pids = append(f.Pids, pid)
	}
	slices.Sort(f.Pids)
}

func (f *Fake) Identity() (model.Identity, error) {
	return f.Host, f.Err
}

func (f *Fake) Uptime() (uint64, error) {
	return f.Up, f.Err
}

func (f *Fake) MemoryTotals() (model.MemoryTotals, error) {
	return f.Memory, f.Err
}

func (f *Fake) ProcessCounts() (model.ProcessCounts, error) {
	return f.Counts, f.Err
}

func (f *Fake) CoreTicks() ([]model.CoreTicks, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return append([]model.CoreTicks(nil), f.Cores...), nil
}

func (f *Fake) LivePids() ([]int32, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return append([]int32(nil), f.Pids...), nil
}

func (f *Fake) ProcessInfo(pid int32) (model.ProcessInfo, error) {
	f.Queried[pid]++
	info, ok := f.Infos[pid]
	if !ok {
		return model.ProcessInfo{}, fmt.Errorf("pid %d: %w", pid, source.ErrProcessGone)
	}
	return info, nil
}

func (f *Fake) ClockTicks() uint64 {
	return f.Hz
}
