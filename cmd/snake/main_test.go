package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		flagConfig, flagLogLevel, flagLogFile = "", "", ""
		flagDefaults = false
	})
}

func TestConfigCommandPrintsSource(t *testing.T) {
	resetFlags(t)
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("theme:\n  food:\n    glyph: F\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "--config", path})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}

	got := out.String()
	if !strings.HasPrefix(got, "# source: "+path) {
		t.Errorf("output does not name the source:\n%s", got)
	}
	if !strings.Contains(got, "glyph: F") {
		t.Errorf("output does not contain the food glyph:\n%s", got)
	}
}

func TestConfigCommandDefaults(t *testing.T) {
	resetFlags(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "--defaults"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if out.String() != string(config.DefaultYAML()) {
		t.Error("--defaults should print the embedded default file")
	}
}

func TestNewLogger(t *testing.T) {
	resetFlags(t)

	var buf bytes.Buffer
	logger, closeLog, err := newLogger(config.LogConfig{Level: "warn"}, &buf)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	defer closeLog()

	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("unexpected log output: %q", buf.String())
	}

	flagLogLevel = "debug"
	logger, _, err = newLogger(config.LogConfig{Level: "warn"}, &buf)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	if logger.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, expected the flag to win", logger.GetLevel())
	}
}

func TestNewLoggerFile(t *testing.T) {
	resetFlags(t)
	flagLogFile = filepath.Join(t.TempDir(), "snake.log")

	logger, closeLog, err := newLogger(config.LogConfig{}, nil)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Info("round over", "score", 3)
	closeLog()

	data, err := os.ReadFile(flagLogFile)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "round over") {
		t.Errorf("log file = %q", data)
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	resetFlags(t)
	if _, _, err := newLogger(config.LogConfig{Level: "loud"}, nil); err == nil {
		t.Error("expected error for an unknown level")
	}
}

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"localhost:2222": "2222",
		"[::1]:22":       "22",
		"garbage":        "garbage",
	}
	for in, want := range tests {
		if got := portOf(in); got != want {
			t.Errorf("portOf(%q) = %q, expected %q", in, got, want)
		}
	}
}
