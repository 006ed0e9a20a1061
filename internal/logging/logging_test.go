package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNewTerminalHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewTerminalHandler(&buf, slog.LevelInfo))

	logger.Debug("hidden")
	logger.Info("input exhausted", "lines", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record written at info level: %q", out)
	}
	if !strings.Contains(out, "input exhausted") || !strings.Contains(out, "lines=3") {
		t.Errorf("output = %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("colour written to a non-terminal: %q", out)
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("IsTerminal(*bytes.Buffer) = true, want false")
	}
}
