package tui

import "strings"

// View renders the last composed frame. Nothing is read from the snapshot
// here.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	lines := renderSummary(m.frame.summary)
	lines = append(lines, headerStyle.Render(fitWidth(tableHeader(), m.width)))
	for _, p := range m.frame.rows {
		lines = append(lines, processRow(p, m.width))
	}

	// Pin the status bar and help to the bottom of the viewport
	if m.height > 0 {
		body := m.height - footerHeight
		if len(lines) > body {
			lines = lines[:max(0, body)]
		}
		for len(lines) < body {
			lines = append(lines, "")
		}
	}

	status := statusStyle
	if m.paused {
		status = pausedStyle
	}
	if m.message != "" {
		status = errorStyle
	}
	lines = append(lines,
		status.Render(fitWidth(m.statusLine(), m.width)),
		m.help.View(m.keys),
	)

	return strings.Join(lines, "\n")
}
