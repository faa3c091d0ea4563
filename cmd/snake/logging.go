package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// newLogger builds the process logger. --log-file and --log-level override
// the config. Without a file, logs go to fallback, or nowhere if it is nil.
// The returned func closes the log file.
func newLogger(cfg config.LogConfig, fallback io.Writer) (*log.Logger, func(), error) {
	level := cfg.Level
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	file := cfg.File
	if flagLogFile != "" {
		file = flagLogFile
	}

	lvl := log.InfoLevel
	if level != "" {
		var err error
		if lvl, err = log.ParseLevel(level); err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}

	w := fallback
	if w == nil {
		w = io.Discard
	}
	closeFn := func() {}
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           lvl,
	})
	return logger, closeFn, nil
}
