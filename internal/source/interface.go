// internal/source/interface.go
package source

import (
	"errors"

	"github.com/rusenback/sysmon/internal/model"
)

// ErrProcessGone is returned by ProcessInfo when the pid exited between
// enumeration and the detail query.
var ErrProcessGone = errors.New("process no longer exists")

// CounterSource provides point-in-time operating system counters. The
// interface lets tests replace the host with a scripted fake.
type CounterSource interface {
	Identity() (model.Identity, error)
	Uptime() (uint64, error)
	MemoryTotals() (model.MemoryTotals, error)
	ProcessCounts() (model.ProcessCounts, error)
	CoreTicks() ([]model.CoreTicks, error)
	LivePids() ([]int32, error)
	ProcessInfo(pid int32) (model.ProcessInfo, error)
	ClockTicks() uint64
}

// Make sure Source implements the interface
var _ CounterSource = (*Source)(nil)
