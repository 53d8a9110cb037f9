package system

import (
	"github.com/rusenback/sysmon/internal/source"
)

// fallbackClockTicks is used when a source reports no tick rate
const fallbackClockTicks = 100

// ProcessRecord tracks one process across polls. The pid is its only
// identity.
type ProcessRecord struct {
	pid        int32
	owner      string
	command    string
	startTick  uint64
	residentMB uint64
	cpu        float64
	elapsed    uint64

	lastCPUTicks   uint64
	lastTotalTicks uint64
}

// NewProcessRecord returns a record with no history
func NewProcessRecord(pid int32) *ProcessRecord {
	return &ProcessRecord{pid: pid}
}

// Update reads the process from src and derives its cpu share and elapsed
// time. totalTicks is the aggregate core's absolute tick count and
// coreCount the number of logical cores. When the read fails the record is
// left untouched and the error is returned.
func (p *ProcessRecord) Update(src source.CounterSource, uptime, totalTicks uint64, coreCount int) error {
	info, err := src.ProcessInfo(p.pid)
	if err != nil {
		return err
	}

	hz := src.ClockTicks()
	if hz == 0 {
		hz = fallbackClockTicks
	}

	p.owner = info.Owner
	p.command = info.Command
	// A pid keeps its start time; reuse gets a fresh record
	if p.startTick == 0 {
		p.startTick = info.StartTick
	}
	p.elapsed = sub(uptime, p.startTick/hz)
	p.residentMB = info.ResidentKB / 1000

	dProc := sub(info.CPUTicks, p.lastCPUTicks)
	dSystem := sub(totalTicks, p.lastTotalTicks)
	if dSystem > 0 {
		p.cpu = float64(coreCount) * float64(dProc) / float64(dSystem)
	}

	p.lastCPUTicks = info.CPUTicks
	p.lastTotalTicks = totalTicks
	return nil
}

func (p ProcessRecord) Pid() int32 { return p.pid }

func (p ProcessRecord) Owner() string { return p.owner }

// Command is empty for kernel threads
func (p ProcessRecord) Command() string { return p.command }

func (p ProcessRecord) StartTick() uint64 { return p.startTick }

func (p ProcessRecord) ResidentMB() uint64 { return p.residentMB }

// CPUUtilization is the share of one core, so a busy multi-threaded
// process can exceed 1.
func (p ProcessRecord) CPUUtilization() float64 { return p.cpu }

// ElapsedSeconds is the time since the process started
func (p ProcessRecord) ElapsedSeconds() uint64 { return p.elapsed }
