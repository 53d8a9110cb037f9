// internal/source/stats.go
package source

import (
	"fmt"
	"strings"

	"github.com/rusenback/sysmon/internal/model"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
)

// Identity returns the distribution and kernel labels
func (s *Source) Identity() (model.Identity, error) {
	ctx, cancel := s.withTimeout()
	defer cancel()

	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return model.Identity{}, fmt.Errorf("failed to read host info: %w", err)
	}

	return model.Identity{
		OS:     strings.TrimSpace(info.Platform + " " + info.PlatformVersion),
		Kernel: info.KernelVersion,
	}, nil
}

// Uptime returns whole seconds since boot
func (s *Source) Uptime() (uint64, error) {
	ctx, cancel := s.withTimeout()
	defer cancel()

	up, err := host.UptimeWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read uptime: %w", err)
	}
	return up, nil
}

// MemoryTotals returns total and used physical memory
func (s *Source) MemoryTotals() (model.MemoryTotals, error) {
	ctx, cancel := s.withTimeout()
	defer cancel()

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return model.MemoryTotals{}, fmt.Errorf("failed to read memory: %w", err)
	}

	return model.MemoryTotals{
		Total: vm.Total,
		Used:  vm.Used,
	}, nil
}

// ProcessCounts returns the number of tasks and how many of them are runnable
func (s *Source) ProcessCounts() (model.ProcessCounts, error) {
	ctx, cancel := s.withTimeout()
	defer cancel()

	misc, err := load.MiscWithContext(ctx)
	if err != nil {
		return model.ProcessCounts{}, fmt.Errorf("failed to read process counts: %w", err)
	}

	return model.ProcessCounts{
		Total:   misc.ProcsTotal,
		Running: misc.ProcsRunning,
	}, nil
}

// CoreTicks returns the aggregate line followed by one line per logical core
func (s *Source) CoreTicks() ([]model.CoreTicks, error) {
	ctx, cancel := s.withTimeout()
	defer cancel()

	total, err := cpu.TimesWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to read cpu times: %w", err)
	}
	perCore, err := cpu.TimesWithContext(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to read per-cpu times: %w", err)
	}

	result := make([]model.CoreTicks, 0, len(total)+len(perCore))
	for _, t := range total {
		result = append(result, coreTicks(t, s.clk))
	}
	for _, t := range perCore {
		result = append(result, coreTicks(t, s.clk))
	}
	return result, nil
}
