package source

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/tklauser/go-sysconf"
)

// defaultClockTicks is USER_HZ on every mainstream Linux build
const defaultClockTicks = 100

// Config holds the settings of the gopsutil backed source
type Config struct {
	Timeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Timeout: 5 * time.Second,
	}
}

// Source reads counters of the local host through gopsutil
type Source struct {
	ctx      context.Context
	timeout  time.Duration
	clk      uint64
	bootTime uint64
}

// NewSource creates a source and reads the constants it needs for tick
// conversions.
func NewSource(cfg Config) (*Source, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}

	s := &Source{
		ctx:     context.Background(),
		timeout: cfg.Timeout,
		clk:     detectClockTicks(),
	}

	ctx, cancel := s.withTimeout()
	defer cancel()

	boot, err := host.BootTimeWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read boot time: %w", err)
	}
	s.bootTime = boot

	return s, nil
}

// ClockTicks returns the number of clock ticks per second
func (s *Source) ClockTicks() uint64 {
	return s.clk
}

func (s *Source) withTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(s.ctx, s.timeout)
}

func detectClockTicks() uint64 {
	hz, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil || hz <= 0 {
		return defaultClockTicks
	}
	return uint64(hz)
}
