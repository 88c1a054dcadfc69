// Package ui provides the terminal output stream used by the runtime:
// verbosity-gated and raw writes, decoration, width and paging.
package ui

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"

	"github.com/footprint-tools/platform-cli/internal/domain"
	"github.com/footprint-tools/platform-cli/internal/ui/style"
)

const defaultWidth = 80

// Output implements domain.Output for one stream (stdout or stderr).
type Output struct {
	out           io.Writer
	formatter     *style.Formatter
	verbosity     domain.Verbosity
	palette       style.Palette
	pagerDisabled bool
	envGetter     func(string) string
	pagerRunner   func(name string, args []string, content string) error
}

// OutputOption configures an Output.
type OutputOption func(*Output)

// WithPalette sets the markup palette.
func WithPalette(p style.Palette) OutputOption {
	return func(o *Output) {
		o.palette = p
	}
}

// WithPagerDisabled disables the pager.
func WithPagerDisabled() OutputOption {
	return func(o *Output) {
		o.pagerDisabled = true
	}
}

// WithEnvGetter sets the environment variable getter function.
func WithEnvGetter(fn func(string) string) OutputOption {
	return func(o *Output) {
		o.envGetter = fn
	}
}

// NewOutput creates an Output writing to out. Decoration starts off
// until ApplyAnsi is called.
func NewOutput(out io.Writer, opts ...OutputOption) *Output {
	o := &Output{
		out:       out,
		envGetter: os.Getenv,
	}
	o.pagerRunner = o.runPager
	for _, opt := range opts {
		opt(o)
	}
	o.formatter = style.NewFormatter(out, false, o.palette)
	return o
}

// ApplyAnsi settles decoration from the resolved tri-state option. In auto
// mode the stream's own colour detection decides.
func (o *Output) ApplyAnsi(mode domain.AnsiMode) {
	switch mode {
	case domain.AnsiOn:
		o.formatter.ForceColors()
		o.formatter.SetEnabled(true)
	case domain.AnsiOff:
		o.formatter.SetEnabled(false)
	default:
		o.formatter.SetEnabled(o.formatter.DetectsColor())
	}
}

// Write implements io.Writer.
func (o *Output) Write(p []byte) (n int, err error) {
	return o.out.Write(p)
}

// Decorated returns whether ANSI decoration is on.
func (o *Output) Decorated() bool {
	return o.formatter.Enabled()
}

// SetDecorated switches decoration on or off.
func (o *Output) SetDecorated(decorated bool) {
	o.formatter.SetEnabled(decorated)
}

// Verbosity returns the output verbosity.
func (o *Output) Verbosity() domain.Verbosity {
	return o.verbosity
}

// SetVerbosity sets the output verbosity.
func (o *Output) SetVerbosity(v domain.Verbosity) {
	o.verbosity = v
}

// Writeln formats msg and writes it when the verbosity allows.
func (o *Output) Writeln(msg string, min domain.Verbosity) {
	if o.verbosity < min {
		return
	}
	_, _ = fmt.Fprintln(o.out, o.formatter.Format(msg))
}

// WritelnRaw writes msg verbatim when the verbosity allows.
func (o *Output) WritelnRaw(msg string, min domain.Verbosity) {
	if o.verbosity < min {
		return
	}
	_, _ = fmt.Fprintln(o.out, msg)
}

// Width returns the terminal width. It asks the terminal when the stream
// is one, then falls back to $COLUMNS and finally to 80 columns.
func (o *Output) Width() int {
	if f, ok := o.out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	if o.envGetter != nil {
		if cols, err := strconv.Atoi(o.envGetter("COLUMNS")); err == nil && cols > 0 {
			return cols
		}
	}
	return defaultWidth
}

// Formatter returns the formatter bound to this stream.
func (o *Output) Formatter() domain.Formatter {
	return o.formatter
}

// Verify Output implements domain.Output
var _ domain.Output = (*Output)(nil)
