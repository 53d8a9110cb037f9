package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	Pause      key.Binding
	Refresh    key.Binding
	SortCPU    key.Binding
	SortMemory key.Binding
	SortUptime key.Binding
	Invert     key.Binding
	Kernel     key.Binding
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Home       key.Binding
	End        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Pause:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "pause")),
		Refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		SortCPU:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "cpu")),
		SortMemory: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mem")),
		SortUptime: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "time")),
		Invert:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "invert")),
		Kernel:     key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "kthreads")),
		Up:         key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:       key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:       key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "top")),
		End:        key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "bottom")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Pause, k.Refresh, k.SortCPU, k.SortMemory, k.SortUptime, k.Invert, k.Kernel}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.ShortHelp(),
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
	}
}
