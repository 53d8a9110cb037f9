package source

import (
	"math"

	"github.com/rusenback/sysmon/internal/model"
	"github.com/shirou/gopsutil/v3/cpu"
)

// secondsToTicks converts gopsutil's float seconds back to clock ticks
func secondsToTicks(seconds float64, clk uint64) uint64 {
	if seconds <= 0 || math.IsNaN(seconds) {
		return 0
	}
	return uint64(math.Round(seconds * float64(clk)))
}

// coreTicks folds iowait into idle. Guest time is already part of user.
func coreTicks(t cpu.TimesStat, clk uint64) model.CoreTicks {
	idle := secondsToTicks(t.Idle, clk) + secondsToTicks(t.Iowait, clk)
	busy := secondsToTicks(t.User, clk) +
		secondsToTicks(t.Nice, clk) +
		secondsToTicks(t.System, clk) +
		secondsToTicks(t.Irq, clk) +
		secondsToTicks(t.Softirq, clk) +
		secondsToTicks(t.Steal, clk)

	return model.CoreTicks{
		Total: idle + busy,
		Idle:  idle,
	}
}

// startTick converts a creation timestamp in unix milliseconds to clock
// ticks after boot.
func startTick(createdMs int64, bootTime uint64, clk uint64) uint64 {
	sinceBoot := createdMs - int64(bootTime)*1000
	if sinceBoot <= 0 {
		return 0
	}
	return uint64(sinceBoot) * clk / 1000
}
