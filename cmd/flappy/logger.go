package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           lvl,
	}), nil
}

// openLogOutput picks where logs go. With --log-file they are appended to that
// file. Otherwise they go to stderr, unless quiet is set (the terminal front end
// owns the screen and stray output would corrupt it).
func openLogOutput(path string, quiet bool) (io.Writer, func() error, error) {
	noop := func() error { return nil }

	if path == "" {
		if quiet {
			return io.Discard, noop, nil
		}
		return os.Stderr, noop, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, noop, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, noop, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, f.Close, nil
}
