package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	if ParseLevel("debug") != LevelDebug {
		t.Error("debug should parse to LevelDebug")
	}
	if ParseLevel("warning") != LevelWarn {
		t.Error("warning should parse to LevelWarn")
	}
	if ParseLevel("nonsense") != LevelInfo {
		t.Error("unknown level should fall back to LevelInfo")
	}
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn, &buf)

	l.Info("hidden %d", 1)
	l.Warn("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message should be filtered, got %q", out)
	}
	if !strings.Contains(out, "shown 2") {
		t.Errorf("warn message missing, got %q", out)
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelDebug, &buf).With("session", "abc")

	l.Debug("hello")

	out := buf.String()
	if !strings.Contains(out, "session=abc") {
		t.Errorf("expected session field in %q", out)
	}
}

func TestSetOutputAndLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(LevelError)
	defer SetLevel(LevelInfo)

	Info("quiet")
	Error("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("info should be filtered at error level, got %q", out)
	}
	if !strings.Contains(out, "loud") {
		t.Errorf("error message missing, got %q", out)
	}
}
