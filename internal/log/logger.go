// Package log provides the diagnostics logger used outside of normal
// command output. Records go to stderr through a tint handler and every
// record carries the invocation id of the process run.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"

	"github.com/footprint-tools/platform-cli/internal/domain"
)

// Level is the severity threshold of the logger.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	// LevelOff discards every record.
	LevelOff
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelError + 4
	}
}

// Options configures a Logger.
type Options struct {
	// NoColor disables ANSI colours in records.
	NoColor bool
	// Invocation identifies the process run. A random id is generated when
	// empty.
	Invocation string
	// TimeFormat defaults to time.Kitchen.
	TimeFormat string
}

// Logger writes diagnostics through slog. The threshold can be changed
// after construction, which the environment resolver does once the
// verbosity is known.
type Logger struct {
	mu           sync.Mutex
	slog         *slog.Logger
	level        *slog.LevelVar
	off          bool
	deprecations bool
}

// New creates a logger writing to w. It starts at LevelError with
// deprecations hidden.
func New(w io.Writer, opts Options) *Logger {
	level := new(slog.LevelVar)
	level.Set(slog.LevelError)

	invocation := opts.Invocation
	if invocation == "" {
		invocation = uuid.NewString()
	}
	timeFormat := opts.TimeFormat
	if timeFormat == "" {
		timeFormat = time.Kitchen
	}

	handler := tint.NewHandler(w, &tint.Options{
		Level:      level,
		NoColor:    opts.NoColor,
		TimeFormat: timeFormat,
	})

	return &Logger{
		slog:  slog.New(handler).With("invocation", invocation),
		level: level,
	}
}

// SetThreshold changes the minimum level and whether deprecation notices
// are reported.
func (l *Logger) SetThreshold(level Level, deprecations bool) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.off = level >= LevelOff
	l.deprecations = deprecations && !l.off
	l.level.Set(level.slogLevel())
}

// Threshold returns the current minimum level and deprecation switch.
func (l *Logger) Threshold() (Level, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.off {
		return LevelOff, false
	}
	switch l.level.Level() {
	case slog.LevelDebug:
		return LevelDebug, l.deprecations
	case slog.LevelInfo:
		return LevelInfo, l.deprecations
	case slog.LevelWarn:
		return LevelWarn, l.deprecations
	default:
		return LevelError, l.deprecations
	}
}

func (l *Logger) log(level slog.Level, msg string, attrs ...any) {
	if l == nil {
		return
	}
	l.mu.Lock()
	off := l.off
	l.mu.Unlock()
	if off {
		return
	}
	l.slog.Log(context.Background(), level, msg, attrs...)
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...any) {
	l.log(slog.LevelDebug, fmt.Sprintf(format, args...))
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...any) {
	l.log(slog.LevelInfo, fmt.Sprintf(format, args...))
}

// Warn logs a warning.
func (l *Logger) Warn(format string, args ...any) {
	l.log(slog.LevelWarn, fmt.Sprintf(format, args...))
}

// Error logs an error.
func (l *Logger) Error(format string, args ...any) {
	l.log(slog.LevelError, fmt.Sprintf(format, args...))
}

// Deprecated logs a deprecation notice as a warning, but only when
// deprecation reporting is switched on.
func (l *Logger) Deprecated(format string, args ...any) {
	if l == nil {
		return
	}
	l.mu.Lock()
	report := l.deprecations
	l.mu.Unlock()
	if !report {
		return
	}
	l.log(slog.LevelWarn, fmt.Sprintf(format, args...), "kind", "deprecation")
}

// Close is a no-op; the logger does not own its writer.
func (l *Logger) Close() error { return nil }

// NopLogger is a logger that discards all messages.
// Useful for testing or when logging is disabled.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any)      {}
func (NopLogger) Info(_ string, _ ...any)       {}
func (NopLogger) Warn(_ string, _ ...any)       {}
func (NopLogger) Error(_ string, _ ...any)      {}
func (NopLogger) Deprecated(_ string, _ ...any) {}
func (NopLogger) Close() error                  { return nil }

// Verify Logger implements domain.Logger
var _ domain.Logger = (*Logger)(nil)
var _ domain.Logger = NopLogger{}
