package tui

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// truncate shortens a string to a maximum display width
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	return runewidth.Truncate(s, max, "")
}

// fitWidth clips or pads s to exactly width cells. A non-positive width
// means the terminal size is unknown and s is returned as is.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.FillRight(truncate(s, width), width)
}

// formatElapsed renders seconds as HH:MM:SS; hours may exceed two digits
func formatElapsed(seconds uint64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// formatCPU renders a share of one core as a percentage with one
// truncated decimal
func formatCPU(ratio float64) string {
	tenths := int64(ratio * 1000)
	if tenths < 0 {
		tenths = 0
	}
	return fmt.Sprintf("%d.%d", tenths/10, tenths%10)
}
