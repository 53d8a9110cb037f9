package tui

import (
	"testing"
	"time"

	"github.com/rusenback/sysmon/internal/model"
	"github.com/rusenback/sysmon/internal/source/sourcetest"
	"github.com/rusenback/sysmon/internal/system"
)

// newFakeSource returns a two-core fake whose aggregate has run for 1000
// ticks, so a process's first cpu reading is 2*CPUTicks/1000.
func newFakeSource(infos map[int32]model.ProcessInfo) *sourcetest.Fake {
	src := sourcetest.NewFake()
	src.Up = 1000
	src.Memory = model.MemoryTotals{Total: 4000, Used: 1000}
	src.Counts = model.ProcessCounts{Total: len(infos), Running: 1}
	src.Cores = []model.CoreTicks{{Total: 1000, Idle: 500}, {Total: 500, Idle: 250}, {Total: 500, Idle: 250}}
	src.SetProcesses(infos)
	return src
}

func proc(command string, cpuTicks, residentKB, startTick uint64) model.ProcessInfo {
	return model.ProcessInfo{
		Owner:      "alice",
		Command:    command,
		CPUTicks:   cpuTicks,
		ResidentKB: residentKB,
		StartTick:  startTick,
	}
}

// records polls a fresh snapshot once and returns its processes
func records(t *testing.T, infos map[int32]model.ProcessInfo) []system.ProcessRecord {
	t.Helper()
	s := system.NewSnapshot(newFakeSource(infos))
	if err := s.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	return s.Processes()
}

// fakeClock is a settable time source for the refresh deadline
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func pids(procs []system.ProcessRecord) []int32 {
	return pidOrder(procs)
}
