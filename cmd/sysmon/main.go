// cmd/sysmon/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rusenback/sysmon/internal/config"
	"github.com/rusenback/sysmon/internal/source"
	"github.com/rusenback/sysmon/internal/system"
	"github.com/rusenback/sysmon/internal/tui"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		config.Usage(os.Stderr)
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n\n", err)
		config.Usage(os.Stderr)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// run owns the log file and the terminal; both are released before it
// returns.
func run(cfg config.Config) error {
	// The terminal belongs to the UI, so logs go to a file or nowhere
	if cfg.LogPath != "" {
		f, err := tea.LogToFile(cfg.LogPath, "sysmon")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	log.Printf("starting, refresh every %v", cfg.Interval)

	src, err := source.NewSource(source.DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to read system counters: %w", err)
	}

	snapshot := system.NewSnapshot(src)
	m := tui.NewModel(snapshot, cfg.Interval)

	// Alt screen is restored by the program on every exit path
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Printf("program: %v", err)
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
