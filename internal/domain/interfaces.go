package domain

import (
	"context"
	"io"
)

// Logger defines diagnostics logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Deprecated logs a deprecation notice. It is dropped unless
	// deprecation reporting was requested at debug verbosity.
	Deprecated(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// Formatter turns inline markup such as <info>text</info> into terminal
// output.
type Formatter interface {
	// Enabled reports whether ANSI decoration is emitted.
	Enabled() bool

	// Format renders markup, or strips it when decoration is off.
	Format(text string) string

	// Width returns the visible cell width of already formatted text.
	Width(formatted string) int
}

// Output is the terminal stream abstraction used by the runtime core.
type Output interface {
	io.Writer

	// Decorated reports whether ANSI decoration is on.
	Decorated() bool

	// SetDecorated switches decoration on or off.
	SetDecorated(decorated bool)

	// Verbosity returns the current verbosity.
	Verbosity() Verbosity

	// SetVerbosity changes the verbosity threshold.
	SetVerbosity(v Verbosity)

	// Writeln formats markup in msg and writes it followed by a newline when
	// the output verbosity is at least min.
	Writeln(msg string, min Verbosity)

	// WritelnRaw writes msg verbatim when the verbosity is at least min.
	WritelnRaw(msg string, min Verbosity)

	// Width returns the terminal width in columns.
	Width() int

	// Formatter returns the markup formatter bound to this output.
	Formatter() Formatter
}

// APIRequest describes one catalog command invocation handed to the API
// client.
type APIRequest struct {
	Command string
	Args    []string
	// Flags are normalized to their long form, e.g. "--project=abc".
	Flags       []string
	Interactive bool
	// ViaMulti is set when the command runs as one of several in a multi
	// invocation.
	ViaMulti bool
}

// APIClient is the external platform API collaborator that catalog
// commands delegate to.
type APIClient interface {
	// Invoke runs the request and returns its exit code.
	Invoke(ctx context.Context, req APIRequest) (int, error)
}
