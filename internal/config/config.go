// Package config reads the command line of sysmon.
package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultDeciseconds is the refresh interval used when -d is missing or
// not a positive number
const DefaultDeciseconds = 15

// LogEnv names the environment variable consulted when -log is not given
const LogEnv = "SYSMON_LOG"

type Config struct {
	Interval time.Duration
	LogPath  string
}

func DefaultConfig() Config {
	return Config{
		Interval: DefaultDeciseconds * 100 * time.Millisecond,
	}
}

// Parse reads args (without the program name). A bad -d value falls back
// to the default; unknown flags are an error.
func Parse(args []string) (Config, error) {
	return parse(args, io.Discard)
}

func parse(args []string, output io.Writer) (Config, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet("sysmon", flag.ContinueOnError)
	fs.SetOutput(output)
	delay := fs.String("d", "", "refresh interval in tenths of a second")
	logPath := fs.String("log", "", "write debug log to this file (env "+LogEnv+")")
	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("parse flags: %w", err)
	}

	if n, err := strconv.Atoi(strings.TrimSpace(*delay)); err == nil && n > 0 {
		cfg.Interval = time.Duration(n) * 100 * time.Millisecond
	}

	cfg.LogPath = *logPath
	if cfg.LogPath == "" {
		cfg.LogPath = os.Getenv(LogEnv)
	}
	return cfg, nil
}

// Usage writes the flag help to w
func Usage(w io.Writer) {
	_, _ = parse([]string{"-h"}, w)
}
