package source

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/rusenback/sysmon/internal/model"
	"github.com/shirou/gopsutil/v3/process"
)

// LivePids returns the pids currently present on the system
func (s *Source) LivePids() ([]int32, error) {
	ctx, cancel := s.withTimeout()
	defer cancel()

	pids, err := process.PidsWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pids: %w", err)
	}
	return pids, nil
}

// ProcessInfo reads owner, command, start time, resident memory and cpu
// ticks of a single process. ErrProcessGone is returned when the process
// disappeared.
func (s *Source) ProcessInfo(pid int32) (model.ProcessInfo, error) {
	ctx, cancel := s.withTimeout()
	defer cancel()

	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return model.ProcessInfo{}, wrapProcessErr(pid, err)
	}

	times, err := p.TimesWithContext(ctx)
	if err != nil {
		return model.ProcessInfo{}, wrapProcessErr(pid, err)
	}
	created, err := p.CreateTimeWithContext(ctx)
	if err != nil {
		return model.ProcessInfo{}, wrapProcessErr(pid, err)
	}
	memInfo, err := p.MemoryInfoWithContext(ctx)
	if err != nil {
		return model.ProcessInfo{}, wrapProcessErr(pid, err)
	}

	// Kernel threads have no command line
	cmdline, _ := p.CmdlineWithContext(ctx)

	return model.ProcessInfo{
		Owner:      s.owner(p),
		Command:    cmdline,
		StartTick:  startTick(created, s.bootTime, s.clk),
		ResidentKB: memInfo.RSS / 1024,
		CPUTicks:   secondsToTicks(times.User, s.clk) + secondsToTicks(times.System, s.clk),
	}, nil
}

// owner resolves the user name, falling back to the numeric real uid
func (s *Source) owner(p *process.Process) string {
	ctx, cancel := s.withTimeout()
	defer cancel()

	if name, err := p.UsernameWithContext(ctx); err == nil && name != "" {
		return name
	}
	uids, err := p.UidsWithContext(ctx)
	if err != nil || len(uids) == 0 {
		return "?"
	}
	return strconv.Itoa(int(uids[0]))
}

func wrapProcessErr(pid int32, err error) error {
	if errors.Is(err, process.ErrorProcessNotRunning) || errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("pid %d: %w", pid, ErrProcessGone)
	}
	return fmt.Errorf("pid %d: %w", pid, err)
}
