package tui

import (
	"fmt"
	"math"
	"strings"
)

// barWidth cells span 0-100 %, so one cell is 2 %
const barWidth = 50

// barCells returns how many of width cells a ratio fills
func barCells(ratio float64, width int) int {
	if math.IsNaN(ratio) || ratio <= 0 {
		return 0
	}
	n := int(ratio * float64(width))
	if n > width {
		n = width
	}
	return n
}

// utilizationBar renders e.g. "0%|||||     ... 50.0/100%"
func utilizationBar(ratio float64) string {
	filled := barCells(ratio, barWidth)
	return "0%" +
		strings.Repeat("|", filled) +
		strings.Repeat(" ", barWidth-filled) +
		" " + formatPercent(ratio) + "/100%"
}

// formatPercent truncates to one decimal below 100 % and to none above,
// right aligned in four cells.
func formatPercent(ratio float64) string {
	if math.IsNaN(ratio) || ratio < 0 {
		ratio = 0
	}
	pct := ratio * 100
	if pct < 100 {
		return fmt.Sprintf("%4.1f", math.Trunc(pct*10)/10)
	}
	return fmt.Sprintf("%4.0f", math.Trunc(pct))
}
