package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rusenback/sysmon/internal/system"
)

// Model is the interactive monitor. It drives snapshot refreshes on a
// deadline and owns all transient view state.
type Model struct {
	snapshot *system.Snapshot
	interval time.Duration
	now      func() time.Time

	deadline deadline
	tickID   int
	paused   bool
	quitting bool

	view  viewState
	// pid order of the previous sort, used to keep ties in place
	order []int32

	frame   frame
	width   int
	height  int
	message string

	keys keyMap
	help help.Model
}

// viewState is the scrolling, ordering and filtering state
type viewState struct {
	offset     int
	sortKey    sortKey
	invert     bool
	showKernel bool
	scroll     scrollAction
}

// frame is what View draws. It is rebuilt by compose and holds copies only.
type frame struct {
	summary summary
	rows    []system.ProcessRecord
	first   int
	visible int
	page    int
}

type summary struct {
	os      string
	kernel  string
	cores   []float64 // per core, aggregate excluded
	memory  float64
	total   int
	running int
	uptime  uint64
}

// Message types for Bubbletea update loop
type tickMsg struct {
	id int
}

// NewModel creates a monitor that refreshes snapshot every interval
func NewModel(snapshot *system.Snapshot, interval time.Duration) Model {
	return Model{
		snapshot: snapshot,
		interval: interval,
		now:      time.Now,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
}

// Init fires an immediate tick. The zero deadline is already expired, so
// the first poll happens right away.
func (m Model) Init() tea.Cmd {
	id := m.tickID
	return func() tea.Msg {
		return tickMsg{id: id}
	}
}
