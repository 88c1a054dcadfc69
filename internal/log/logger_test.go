package log

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
)

var invocationID = regexp.MustCompile(`invocation=[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[0-9a-f]{4}-[0-9a-f]{12}`)

func newTestLogger(buf *bytes.Buffer) *Logger {
	return New(buf, Options{NoColor: true, Invocation: "test-run"})
}

func TestLogger_DefaultsToErrorsOnly(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warning message")
	logger.Error("error %s", "message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") || strings.Contains(out, "warning message") {
		t.Errorf("expected only errors, got %q", out)
	}
	if !strings.Contains(out, "ERR error message") {
		t.Errorf("error record missing: %q", out)
	}
	if !strings.Contains(out, "invocation=test-run") {
		t.Errorf("invocation attribute missing: %q", out)
	}
}

func TestLogger_SetThreshold(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)
	logger.SetThreshold(LevelDebug, false)

	logger.Debug("debug message")
	logger.Warn("warning message")
	logger.Deprecated("old flag")

	out := buf.String()
	if !strings.Contains(out, "DBG debug message") {
		t.Errorf("debug record missing: %q", out)
	}
	if !strings.Contains(out, "WRN warning message") {
		t.Errorf("warn record missing: %q", out)
	}
	if strings.Contains(out, "old flag") {
		t.Errorf("deprecation should be hidden: %q", out)
	}
}

func TestLogger_Deprecations(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)
	logger.SetThreshold(LevelDebug, true)

	logger.Deprecated("the %s option is deprecated", "--foo")

	out := buf.String()
	if !strings.Contains(out, "the --foo option is deprecated") {
		t.Errorf("deprecation missing: %q", out)
	}
	if !strings.Contains(out, "kind=deprecation") {
		t.Errorf("deprecation kind missing: %q", out)
	}
}

func TestLogger_Off(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)
	logger.SetThreshold(LevelOff, true)

	logger.Error("error message")
	logger.Deprecated("old flag")

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
	level, deprecations := logger.Threshold()
	if level != LevelOff || deprecations {
		t.Errorf("Threshold() = %v, %v", level, deprecations)
	}
}

func TestLogger_GeneratesInvocation(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{NoColor: true})
	logger.Error("boom")

	if !invocationID.MatchString(buf.String()) {
		t.Errorf("expected a uuid invocation attribute, got %q", buf.String())
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LevelOff, "OFF"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.expected)
		}
	}
}

func TestLogger_NilSafe(t *testing.T) {
	var logger *Logger
	logger.Error("ignored")
	logger.Deprecated("ignored")
	logger.SetThreshold(LevelDebug, true)
	if err := logger.Close(); err != nil {
		t.Errorf("Close() on nil logger = %v", err)
	}
}
