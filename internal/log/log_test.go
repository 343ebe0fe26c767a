package log

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
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoggerOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelDebug, Output: &buf, Prefix: "test"})

	l.Info("hello %s", "world")

	out := buf.String()
	if !strings.Contains(out, "[INFO]") {
		t.Errorf("output missing level: %q", out)
	}
	if !strings.Contains(out, "test:") {
		t.Errorf("output missing prefix: %q", out)
	}
	if !strings.Contains(out, "hello world") {
		t.Errorf("output missing message: %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Errorf("output missing trailing newline: %q", out)
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelWarn, Output: &buf})

	l.Debug("nope")
	l.Info("nope")
	l.Warn("yes warn")
	l.Error("yes error")

	out := buf.String()
	if strings.Contains(out, "nope") {
		t.Errorf("filtered levels leaked: %q", out)
	}
	if !strings.Contains(out, "yes warn") || !strings.Contains(out, "yes error") {
		t.Errorf("enabled levels missing: %q", out)
	}
}

func TestLoggerWithField(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelDebug, Output: &buf})

	l.WithField("b", 2).WithField("a", 1).Info("msg")

	out := buf.String()
	// Fields render sorted by key.
	if !strings.Contains(out, "{a=1, b=2}") {
		t.Errorf("output fields = %q, want {a=1, b=2}", out)
	}

	// The base logger is unchanged.
	buf.Reset()
	l.Info("plain")
	if strings.Contains(buf.String(), "a=1") {
		t.Errorf("base logger gained fields: %q", buf.String())
	}
}

func TestLoggerWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelDebug, Output: &buf})

	l.WithComponent("script").Error("bad")

	if !strings.Contains(buf.String(), "component=script") {
		t.Errorf("output missing component field: %q", buf.String())
	}
}

func TestNullLogger(t *testing.T) {
	// NullLogger must be safe to use and emit nothing.
	NullLogger.Error("discarded")
	NullLogger.WithComponent("x").Info("discarded")
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelError, Output: &buf})

	l.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("unexpected output: %q", buf.String())
	}

	l.SetLevel(LevelInfo)
	l.Info("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("output missing message after SetLevel: %q", buf.String())
	}
}
