package tui

import (
	"math"
	"strings"
	"testing"
)

func TestUtilizationBar(t *testing.T) {
	tests := []struct {
		ratio  float64
		filled int
		pct    string
	}{
		{0, 0, " 0.0"},
		{0.5, 25, "50.0"},
		{0.125, 6, "12.5"},
		{1, 50, " 100"},
		{1.5, 50, " 150"},
		{-0.2, 0, " 0.0"},
		{math.NaN(), 0, " 0.0"},
	}

	for _, tt := range tests {
		bar := utilizationBar(tt.ratio)
		if got := strings.Count(bar, "|"); got != tt.filled {
			t.Errorf("ratio %v: %d cells filled, want %d", tt.ratio, got, tt.filled)
		}
		if want := "0%" + strings.Repeat("|", tt.filled) + strings.Repeat(" ", barWidth-tt.filled) + " " + tt.pct + "/100%"; bar != want {
			t.Errorf("ratio %v: got %q, want %q", tt.ratio, bar, want)
		}
	}
}

func TestFormatPercentTruncates(t *testing.T) {
	if got := formatPercent(0.0999); got != " 9.9" {
		t.Fatalf("got %q", got)
	}
	if got := formatPercent(0.99999); got != "99.9" {
		t.Fatalf("got %q", got)
	}
}
