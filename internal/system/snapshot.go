// Package system turns raw counters into the system summary and the set of
// tracked processes shown by the monitor.
package system

import (
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/rusenback/sysmon/internal/source"
)

// ErrDegradedSample is reported when a poll returns only the aggregate core
// line. Core metrics keep their previous values for that poll.
var ErrDegradedSample = errors.New("incomplete cpu sample")

// Snapshot is the state of the whole system as of the latest poll. It owns
// its cores and process records; callers only get copies.
type Snapshot struct {
	src source.CounterSource

	os     string
	kernel string

	uptime     uint64
	memoryUtil float64
	total      int
	running    int

	// cores[0] is the aggregate
	cores     []CoreMetric
	processes []*ProcessRecord
}

// NewSnapshot reads the host identity once and prepares an aggregate and a
// single core with no history.
func NewSnapshot(src source.CounterSource) *Snapshot {
	s := &Snapshot{
		src:   src,
		cores: make([]CoreMetric, 2),
	}

	id, err := src.Identity()
	if err != nil {
		log.Printf("host identity unavailable: %v", err)
	}
	s.os = id.OS
	s.kernel = id.Kernel

	return s
}

// Update polls the source. Every step runs even when an earlier one fails;
// failed steps keep their previous values and are reported together.
func (s *Snapshot) Update() error {
	var errs []error

	if counts, err := s.src.ProcessCounts(); err != nil {
		errs = append(errs, err)
	} else {
		s.total = counts.Total
		s.running = counts.Running
	}

	if mem, err := s.src.MemoryTotals(); err != nil {
		errs = append(errs, err)
	} else if mem.Total > 0 {
		s.memoryUtil = float64(mem.Used) / float64(mem.Total)
	}

	if up, err := s.src.Uptime(); err != nil {
		errs = append(errs, err)
	} else {
		s.uptime = up
	}

	if err := s.updateCores(); err != nil {
		errs = append(errs, err)
	}

	if err := s.updateProcesses(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (s *Snapshot) updateCores() error {
	ticks, err := s.src.CoreTicks()
	if err != nil {
		return err
	}
	if len(ticks) < 2 {
		return fmt.Errorf("%w: %d core lines", ErrDegradedSample, len(ticks))
	}

	if len(ticks) > len(s.cores) {
		s.cores = append(s.cores, make([]CoreMetric, len(ticks)-len(s.cores))...)
	}
	s.cores = s.cores[:len(ticks)]

	for i := range ticks {
		s.cores[i].Update(ticks[i])
	}
	return nil
}

func (s *Snapshot) updateProcesses() error {
	live, err := s.src.LivePids()
	if err != nil {
		return err
	}
	s.Reconcile(live)

	totalTicks := s.cores[0].TotalTicks()
	coreCount := len(s.cores) - 1

	var failed int
	var firstErr error
	for _, p := range s.processes {
		err := p.Update(s.src, s.uptime, totalTicks, coreCount)
		if err == nil || errors.Is(err, source.ErrProcessGone) {
			continue
		}
		if firstErr == nil {
			firstErr = err
		}
		failed++
	}

	if failed > 0 {
		return fmt.Errorf("%d process reads failed: %w", failed, firstErr)
	}
	return nil
}

// Reconcile drops records whose pid is not live and then creates records
// for live pids that are not tracked yet, in ascending pid order.
func (s *Snapshot) Reconcile(live []int32) (added, removed int) {
	alive := make(map[int32]struct{}, len(live))
	for _, pid := range live {
		alive[pid] = struct{}{}
	}

	kept := s.processes[:0]
	for _, p := range s.processes {
		if _, ok := alive[p.pid]; ok {
			kept = append(kept, p)
			delete(alive, p.pid)
		} else {
			removed++
		}
	}
	for i := len(kept); i < len(s.processes); i++ {
		s.processes[i] = nil
	}
	s.processes = kept

	fresh := make([]int32, 0, len(alive))
	for pid := range alive {
		fresh = append(fresh, pid)
	}
	slices.Sort(fresh)

	for _, pid := range fresh {
		s.processes = append(s.processes, NewProcessRecord(pid))
	}
	return len(fresh), removed
}

func (s *Snapshot) OperatingSystem() string { return s.os }

func (s *Snapshot) Kernel() string { return s.kernel }

// UptimeSeconds is the system uptime at the latest poll
func (s *Snapshot) UptimeSeconds() uint64 { return s.uptime }

// MemoryUtilization is used memory over total, in [0, 1]
func (s *Snapshot) MemoryUtilization() float64 { return s.memoryUtil }

func (s *Snapshot) TotalProcesses() int { return s.total }

func (s *Snapshot) RunningProcesses() int { return s.running }

// Cores returns a copy of the core metrics, aggregate first
func (s *Snapshot) Cores() []CoreMetric {
	return append([]CoreMetric(nil), s.cores...)
}

// Processes returns copies of the tracked records in polling order
func (s *Snapshot) Processes() []ProcessRecord {
	out := make([]ProcessRecord, len(s.processes))
	for i, p := range s.processes {
		out[i] = *p
	}
	return out
}
