package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelDebug, FormatJSON)

	logger.WithRequest("req-1").With("tab", "weekly").Info("rendered", "mode", "desktop")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	for key, want := range map[string]string{
		"msg":        "rendered",
		"level":      "INFO",
		"request_id": "req-1",
		"tab":        "weekly",
		"mode":       "desktop",
	} {
		if entry[key] != want {
			t.Errorf("%s = %v, want %q", key, entry[key], want)
		}
	}
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, LevelInfo, "text").Warn("fetch failed", "sheet", "动作库")

	line := buf.String()
	if !strings.Contains(line, "level=WARN") || !strings.Contains(line, "sheet=动作库") {
		t.Errorf("unexpected text log line: %q", line)
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		level string
		want  int
	}{
		{LevelDebug, 4},
		{"info", 3},
		{LevelWarn, 2},
		{LevelError, 1},
		{"bogus", 3},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		logger := New(&buf, tt.level, FormatJSON)
		logger.Debug("d")
		logger.Info("i")
		logger.Warn("w")
		logger.Error("e")

		got := len(strings.Split(strings.TrimSpace(buf.String()), "\n"))
		if got != tt.want {
			t.Errorf("level %q: got %d lines, want %d", tt.level, got, tt.want)
		}
	}
}

func TestWith_NoArgsReturnsSameLogger(t *testing.T) {
	l := NopLogger()
	if l.With() != l {
		t.Error("With() without args should return the receiver")
	}
	if l.Slog() == nil {
		t.Error("Slog() returned nil")
	}
}
