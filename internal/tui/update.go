package tui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	render := false

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		render = true

	case tickMsg:
		// Superseded by a forced refresh, or paused
		if msg.id != m.tickID || m.paused {
			return m, nil
		}
		now := m.now()
		if !m.deadline.expired(now) {
			return m, tickCmd(m.tickID, m.deadline.remaining(now))
		}
		cmd = m.refresh()
		render = true

	case tea.KeyMsg:
		cmd, render = m.handleKey(msg)
	}

	if render {
		m.compose()
	}
	return m, cmd
}

// handleKey applies one input transition. It reports whether the frame has
// to be rebuilt.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit, false

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		if m.paused {
			// Drop the pending tick; only manual refreshes from here on
			m.tickID++
			return nil, true
		}
		return m.refresh(), true

	case key.Matches(msg, m.keys.Refresh):
		return m.refresh(), true

	case key.Matches(msg, m.keys.SortCPU):
		return m.sortBy(sortByCPU), true
	case key.Matches(msg, m.keys.SortMemory):
		return m.sortBy(sortByMemory), true
	case key.Matches(msg, m.keys.SortUptime):
		return m.sortBy(sortByUptime), true

	case key.Matches(msg, m.keys.Invert):
		m.view.invert = !m.view.invert
		return nil, true

	case key.Matches(msg, m.keys.Kernel):
		m.view.showKernel = !m.view.showKernel
		return nil, true

	case key.Matches(msg, m.keys.Up):
		m.view.scroll = scrollUp
		return nil, true
	case key.Matches(msg, m.keys.Down):
		m.view.scroll = scrollDown
		return nil, true
	case key.Matches(msg, m.keys.PageUp):
		m.view.scroll = scrollPageUp
		return nil, true
	case key.Matches(msg, m.keys.PageDown):
		m.view.scroll = scrollPageDown
		return nil, true
	case key.Matches(msg, m.keys.Home):
		m.view.scroll = scrollHome
		return nil, true
	case key.Matches(msg, m.keys.End):
		m.view.scroll = scrollEnd
		return nil, true
	}

	return nil, false
}

func (m *Model) sortBy(k sortKey) tea.Cmd {
	m.view.sortKey = k
	m.view.invert = false
	if m.paused {
		return nil
	}
	return m.refresh()
}

// refresh polls the snapshot and restarts the deadline. While paused no
// tick is scheduled and the loop waits for input only.
func (m *Model) refresh() tea.Cmd {
	if err := m.snapshot.Update(); err != nil {
		log.Printf("poll: %v", err)
		m.message = "Poll error: " + strings.ReplaceAll(err.Error(), "\n", "; ")
	} else {
		m.message = ""
	}

	m.deadline = newDeadline(m.now(), m.interval)
	m.tickID++
	if m.paused {
		return nil
	}
	return tickCmd(m.tickID, m.interval)
}

// compose orders, filters and scrolls the process list and captures the
// summary for View. The pending scroll action is consumed here.
func (m *Model) compose() {
	cores := m.snapshot.Cores()
	sum := summary{
		os:      m.snapshot.OperatingSystem(),
		kernel:  m.snapshot.Kernel(),
		memory:  m.snapshot.MemoryUtilization(),
		total:   m.snapshot.TotalProcesses(),
		running: m.snapshot.RunningProcesses(),
		uptime:  m.snapshot.UptimeSeconds(),
	}
	for _, c := range cores[1:] {
		sum.cores = append(sum.cores, c.Utilization())
	}

	ordered := orderProcesses(m.snapshot.Processes(), m.view.sortKey, m.view.invert, m.order)
	m.order = pidOrder(ordered)
	visible := filterKernelThreads(ordered, m.view.showKernel)

	page := pageSize(m.height, len(sum.cores))
	m.view.offset = applyScroll(m.view.offset, m.view.scroll, len(visible), page)
	m.view.scroll = scrollNone

	end := min(m.view.offset+page, len(visible))
	m.frame = frame{
		summary: sum,
		rows:    visible[m.view.offset:end],
		first:   m.view.offset,
		visible: len(visible),
		page:    page,
	}
}

// statusLine describes run state, ordering, filter and position
func (m Model) statusLine() string {
	state := "RUNNING"
	if m.paused {
		state = "PAUSED"
	}

	kernel := "hidden"
	if m.view.showKernel {
		kernel = "shown"
	}

	last := m.frame.first + len(m.frame.rows)
	first := m.frame.first + 1
	if last == 0 {
		first = 0
	}

	s := fmt.Sprintf(" %s | sort: %s %s | kernel threads: %s | every %.1fs | %d-%d/%d",
		state, m.view.sortKey, m.view.sortKey.arrow(m.view.invert), kernel,
		m.interval.Seconds(), first, last, m.frame.visible)
	if m.message != "" {
		s += " | " + m.message
	}
	return s
}
