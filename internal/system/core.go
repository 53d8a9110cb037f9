package system

import "github.com/rusenback/sysmon/internal/model"

// CoreMetric derives the utilisation of one logical CPU, or of all of them
// for the aggregate entry, from successive tick readings.
type CoreMetric struct {
	lastTotal   uint64
	lastIdle    uint64
	primed      bool
	utilization float64
}

// Update folds in a new reading. The first reading only sets the baseline,
// and a reading without elapsed ticks keeps the previous utilisation.
func (c *CoreMetric) Update(t model.CoreTicks) {
	defer func() {
		c.lastTotal = t.Total
		c.lastIdle = t.Idle
		c.primed = true
	}()

	if !c.primed {
		return
	}

	dTotal := sub(t.Total, c.lastTotal)
	if dTotal == 0 {
		return
	}
	dIdle := sub(t.Idle, c.lastIdle)
	c.utilization = float64(sub(dTotal, dIdle)) / float64(dTotal)
}

// Utilization is in [0, 1]
func (c CoreMetric) Utilization() float64 {
	return c.utilization
}

// TotalTicks returns the absolute total of the latest reading
func (c CoreMetric) TotalTicks() uint64 {
	return c.lastTotal
}

// sub is a saturating subtraction
func sub(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return 0
}
