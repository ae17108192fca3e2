// Package logging sets up the structured log used by the editor.
//
// A terminal UI owns stdout, so logs only go to a file when one is named;
// otherwise they are discarded.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Open creates a slog.Logger writing text records to path at level.
// An empty path discards all records. The returned close func is never nil.
func Open(path, version string, level slog.Level) (*slog.Logger, func() error, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}
	f, err := openLogFile(path, version)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f.Close, nil
}

func openLogFile(path, version string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	_, _ = fmt.Fprintf(f, "=== notepad %s started at %s ===\n", version, time.Now().Format(time.RFC3339))
	return f, nil
}
