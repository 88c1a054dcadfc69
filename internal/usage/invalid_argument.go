package usage

import (
	"fmt"
	"strings"
)

// InvalidArgument is returned when an argument value is not acceptable.
func InvalidArgument(format string, args ...any) *Error {
	return newError(ErrInvalidArgument, fmt.Sprintf(format, args...), nil)
}

// MissingArguments is returned when required arguments are not provided.
func MissingArguments(names ...string) *Error {
	return newError(ErrRuntime, fmt.Sprintf("Not enough arguments (missing: %s).", quoteList(names)), nil)
}

// TooManyArguments is returned when more positional arguments are given
// than the command accepts. got is the first surplus argument.
func TooManyArguments(got string, expected ...string) *Error {
	if len(expected) == 0 {
		return newError(ErrRuntime, fmt.Sprintf("No arguments expected, got %q.", got), nil)
	}
	return newError(ErrRuntime, fmt.Sprintf("Too many arguments, expected arguments %s.", quoteList(expected)), nil)
}

// Runtime is a general failure in how a command was run.
func Runtime(format string, args ...any) *Error {
	return newError(ErrRuntime, fmt.Sprintf(format, args...), nil)
}

func quoteList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return strings.Join(quoted, ", ")
}
