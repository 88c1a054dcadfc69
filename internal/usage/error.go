package usage

import (
	"errors"

	"github.com/footprint-tools/platform-cli/internal/errtrace"
)

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidArgument
	ErrInvalidOption
	ErrCommandNotFound
	ErrRuntime
	ErrConfig
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidArgument:
		return "InvalidArgument"
	case ErrInvalidOption:
		return "InvalidOption"
	case ErrCommandNotFound:
		return "CommandNotFound"
	case ErrRuntime:
		return "RuntimeError"
	case ErrConfig:
		return "ConfigError"
	default:
		return "Error"
	}
}

// Exit codes:
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Unknown command
//	  - Runtime usage errors (argument count)
//	  - Configuration errors
//
//	Exit 2: User input errors
//	  - Invalid option
//	  - Invalid argument
var exitCodes = map[ErrorKind]int{
	ErrUnknown:         1,
	ErrInvalidArgument: 2,
	ErrInvalidOption:   2,
	ErrCommandNotFound: 1,
	ErrRuntime:         1,
	ErrConfig:          1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind     ErrorKind
	Message  string
	ExitCode int // computed from Kind if zero
	Cause    error

	trace *errtrace.Error
}

func newError(kind ErrorKind, msg string, cause error) *Error {
	return &Error{
		Kind:    kind,
		Message: msg,
		Cause:   cause,
		trace:   errtrace.Capture(msg, nil, 2),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Label is the short kind name shown in rendered error blocks.
func (e *Error) Label() string {
	return e.Kind.String()
}

// Origin returns where the error was constructed.
func (e *Error) Origin() (string, int) {
	if e.trace == nil {
		return "", 0
	}
	return e.trace.Origin()
}

// Frames returns the call stack captured at construction.
func (e *Error) Frames() []errtrace.Frame {
	if e.trace == nil {
		return nil
	}
	return e.trace.Frames()
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// ShowsUsage reports whether the error is about how the command was
// invoked, so the command's usage line is worth printing after it.
func (e *Error) ShowsUsage() bool {
	switch e.Kind {
	case ErrInvalidArgument, ErrInvalidOption, ErrCommandNotFound, ErrRuntime:
		return true
	default:
		return false
	}
}

// IsUsage reports whether err itself is a usage error of a kind that
// warrants a usage hint. Errors it wraps are not considered.
func IsUsage(err error) bool {
	ue, ok := err.(*Error)
	return ok && ue.ShowsUsage()
}

// ExitCodeOf returns the process exit code for err: 0 for nil, the code
// carried by the error when it has one, and 1 otherwise.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var coder interface{ GetExitCode() int }
	if errors.As(err, &coder) {
		if code := coder.GetExitCode(); code != 0 {
			return code
		}
	}
	return 1
}

// Verify Error implements the error and tracer interfaces.
var (
	_ error           = (*Error)(nil)
	_ errtrace.Tracer = (*Error)(nil)
)
