package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickCmd wakes the loop after d. Ticks carry the id they were scheduled
// with so superseded ones can be dropped.
func tickCmd(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}
