// Package errtrace provides errors that remember where they were created.
//
// The runtime's exception renderer prints these locations at debug
// verbosity. Errors from other packages carry no location and are shown as
// "n/a" instead.
package errtrace

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

const maxDepth = 32

// Frame is one entry of a captured call stack.
type Frame struct {
	// Class is the package (and receiver, for methods) of the function.
	Class string
	// CallType joins Class and Function, empty when Class is empty.
	CallType string
	Function string
	File     string
	Line     int
}

// Error is an error with an origin and a captured call stack.
type Error struct {
	msg    string
	cause  error
	file   string
	line   int
	frames []Frame
}

// New returns an error with the given message, recording the caller.
func New(msg string) *Error {
	return newError(msg, nil, 3)
}

// Errorf formats a message like fmt.Errorf. A %w verb sets the cause.
func Errorf(format string, args ...any) *Error {
	wrapped := fmt.Errorf(format, args...)
	return newError(wrapped.Error(), errors.Unwrap(wrapped), 3)
}

// Wrap returns an error with msg as its message and cause as its
// predecessor. Unlike fmt.Errorf with %w, the cause message is not repeated.
func Wrap(cause error, msg string) *Error {
	return newError(msg, cause, 3)
}

// Capture is used by other error types that want to carry a trace. skip
// is the number of frames above the caller of Capture to leave out, so a
// constructor helper can attribute the error to its own caller.
func Capture(msg string, cause error, skip int) *Error {
	return newError(msg, cause, 3+skip)
}

func newError(msg string, cause error, skip int) *Error {
	e := &Error{msg: msg, cause: cause}
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(skip, pcs)
	if n == 0 {
		return e
	}
	frames := runtime.CallersFrames(pcs[:n])
	first := true
	for {
		f, more := frames.Next()
		if first {
			e.file, e.line = f.File, f.Line
			first = false
		}
		e.frames = append(e.frames, splitFrame(f))
		if !more {
			break
		}
	}
	return e
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.cause }

// Origin returns the file and line where the error was created.
func (e *Error) Origin() (string, int) { return e.file, e.line }

// Frames returns the call stack captured at creation, innermost first.
func (e *Error) Frames() []Frame { return e.frames }

// Tracer is implemented by errors that carry location information.
type Tracer interface {
	Origin() (file string, line int)
	Frames() []Frame
}

// OriginOf returns the origin of err itself, without walking its chain.
// ok is false when err carries no location.
func OriginOf(err error) (file string, line int, ok bool) {
	t, isTracer := err.(Tracer)
	if !isTracer {
		return "", 0, false
	}
	file, line = t.Origin()
	return file, line, file != ""
}

// FramesOf returns the frames recorded by err itself, or nil.
func FramesOf(err error) []Frame {
	if t, ok := err.(Tracer); ok {
		return t.Frames()
	}
	return nil
}

// splitFrame turns "github.com/x/y/pkg.(*T).Method" into class "pkg.(*T)",
// call type "." and function "Method".
func splitFrame(f runtime.Frame) Frame {
	name := f.Function
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	out := Frame{Function: name, File: f.File, Line: f.Line}
	if i := strings.LastIndex(name, "."); i >= 0 {
		out.Class = name[:i]
		out.CallType = "."
		out.Function = name[i+1:]
	}
	return out
}
