package tui

import "time"

// deadline marks when the next poll is due. The zero value is expired.
type deadline struct {
	start  time.Time
	length time.Duration
}

func newDeadline(now time.Time, length time.Duration) deadline {
	return deadline{start: now, length: length}
}

// remaining never goes below zero
func (d deadline) remaining(now time.Time) time.Duration {
	elapsed := now.Sub(d.start)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed >= d.length {
		return 0
	}
	return d.length - elapsed
}

func (d deadline) expired(now time.Time) bool {
	return d.remaining(now) == 0
}
