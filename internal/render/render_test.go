package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/platform-cli/internal/domain"
	"github.com/footprint-tools/platform-cli/internal/errtrace"
	"github.com/footprint-tools/platform-cli/internal/ui"
	"github.com/footprint-tools/platform-cli/internal/ui/style"
	"github.com/footprint-tools/platform-cli/internal/usage"
)

type chainErr struct {
	msg  string
	next error
}

func (e *chainErr) Error() string { return e.msg }
func (e *chainErr) Unwrap() error { return e.next }

func plainFormatter() *style.Formatter {
	return style.NewFormatter(io.Discard, false, nil)
}

func colorFormatter() *style.Formatter {
	f := style.NewFormatter(io.Discard, true, nil)
	f.ForceColors()
	return f
}

func texts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

func countContaining(lines []Line, sub string) int {
	n := 0
	for _, l := range lines {
		if strings.Contains(l.Text, sub) {
			n++
		}
	}
	return n
}

var normal = domain.GlobalOptions{Verbosity: domain.VerbosityNormal}

func TestRender_SingleBlock(t *testing.T) {
	r := &Renderer{Executable: "platform"}

	lines := r.Render(errors.New("boom"), normal, nil, 80, plainFormatter())

	pad := strings.Repeat(" ", 17)
	require.Equal(t, []string{
		"",
		pad,
		"  [errorString]  ",
		"  boom  " + strings.Repeat(" ", 9),
		pad,
		"",
	}, texts(lines))
	for _, l := range lines {
		require.True(t, l.Raw)
	}
}

func TestRender_Nil(t *testing.T) {
	r := &Renderer{}
	require.Nil(t, r.Render(nil, normal, nil, 80, plainFormatter()))
}

func TestRender_LoopGuard(t *testing.T) {
	c := &chainErr{msg: "same message"}
	b := &chainErr{msg: "same message", next: c}
	a := &chainErr{msg: "outer message", next: b}
	r := &Renderer{Executable: "platform"}

	lines := r.Render(a, normal, nil, 80, plainFormatter())

	require.Equal(t, 2, countContaining(lines, "[chainErr]"))
	require.Equal(t, 1, countContaining(lines, "outer message"))
	require.Equal(t, 1, countContaining(lines, "same message"))
}

func TestRender_LoopGuardComparesMessagesOnly(t *testing.T) {
	inner := errors.New("disk full")
	outer := &chainErr{msg: "disk full", next: inner}
	r := &Renderer{}

	lines := r.Render(outer, normal, nil, 80, plainFormatter())

	require.Equal(t, 1, countContaining(lines, "disk full"))
	require.Zero(t, countContaining(lines, "[errorString]"))
}

func TestRender_OuterFirst(t *testing.T) {
	err := errtrace.Wrap(errtrace.New("inner failure"), "outer failure")
	r := &Renderer{}

	lines := texts(r.Render(err, normal, nil, 80, plainFormatter()))

	outer, inner := -1, -1
	for i, l := range lines {
		if strings.Contains(l, "outer failure") {
			outer = i
		}
		if strings.Contains(l, "inner failure") {
			inner = i
		}
	}
	require.NotEqual(t, -1, outer)
	require.NotEqual(t, -1, inner)
	require.Less(t, outer, inner)
}

func TestRender_WrapsToWidth(t *testing.T) {
	tests := []struct {
		name      string
		formatter *style.Formatter
	}{
		{"plain", plainFormatter()},
		{"colored", colorFormatter()},
	}

	msg := strings.Repeat("abcdefghij", 30)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Renderer{}
			width := 40

			lines := r.Render(errors.New(msg), normal, nil, width, tt.formatter)

			// leading blank, pad, title, 9 message lines, pad, separator
			require.Len(t, lines, 1+1+1+9+1+1)
			block := lines[1 : len(lines)-1]
			blockWidth := tt.formatter.Width(block[0].Text)
			require.Equal(t, width-1, blockWidth)
			for _, l := range block {
				require.Equal(t, blockWidth, tt.formatter.Width(l.Text), "line %q", l.Text)
			}
			require.Contains(t, block[2].Text, msg[:35])
		})
	}
}

func TestRender_MultilineMessage(t *testing.T) {
	r := &Renderer{}

	lines := r.Render(errors.New("first\r\nsecond\nthird line is longer"), normal, nil, 80, plainFormatter())

	got := texts(lines)
	require.Equal(t, fmt.Sprintf("%-24s", "  first"), got[3])
	require.Equal(t, fmt.Sprintf("%-24s", "  second"), got[4])
	require.Equal(t, "  third line is longer  ", got[5])
}

func TestRender_MarkupInMessageCountsVisibleWidth(t *testing.T) {
	r := &Renderer{}
	f := colorFormatter()

	lines := r.Render(errors.New("run <info>platform login</info> first"), normal, nil, 80, f)

	w := f.Width(lines[1].Text)
	for _, l := range lines[1 : len(lines)-1] {
		require.Equal(t, w, f.Width(l.Text))
	}
	require.Equal(t, len("  run platform login first  "), w)
}

func TestRender_DebugTrace(t *testing.T) {
	r := &Renderer{}
	debug := domain.GlobalOptions{Verbosity: domain.VerbosityDebug}

	lines := texts(r.Render(errtrace.New("traced"), debug, nil, 80, plainFormatter()))

	require.Contains(t, lines, "<comment>Exception trace:</comment>")
	joined := strings.Join(lines, "\n")
	require.Contains(t, joined, " () at <info>")
	require.Contains(t, joined, "render_test.go:")
	require.Contains(t, joined, " render.TestRender_DebugTrace() at <info>")
}

func TestRender_DebugTraceWithoutLocation(t *testing.T) {
	r := &Renderer{}
	debug := domain.GlobalOptions{Verbosity: domain.VerbosityDebug}

	lines := texts(r.Render(errors.New("plain"), debug, nil, 80, plainFormatter()))

	require.Contains(t, lines, " () at <info>n/a:n/a</info>")
}

func TestRender_NoTraceBelowDebug(t *testing.T) {
	r := &Renderer{}
	verbose := domain.GlobalOptions{Verbosity: domain.VerbosityVeryVerbose}

	lines := r.Render(errtrace.New("traced"), verbose, nil, 80, plainFormatter())

	require.Zero(t, countContaining(lines, "Exception trace"))
}

func TestRender_UsageHint(t *testing.T) {
	current := &Current{Name: "project:list", Synopsis: "project:list [--pipe]"}

	tests := []struct {
		name     string
		err      error
		current  *Current
		wantHint bool
	}{
		{"invalid option", usage.InvalidOption("--nope"), current, true},
		{"invalid argument", usage.InvalidArgument("bad id"), current, true},
		{"runtime usage", usage.MissingArguments("id"), current, true},
		{"usage error wrapped by plain error", fmt.Errorf("while listing: %w", usage.InvalidOption("--nope")), current, false},
		{"usage error wrapped by traced error", errtrace.Wrap(usage.InvalidArgument("bad id"), "API request failed"), current, false},
		{"plain failure", errors.New("connection refused"), current, false},
		{"config error", usage.ConfigError(nil, "broken"), current, false},
		{"no current command", usage.InvalidOption("--nope"), nil, false},
		{"default command", usage.InvalidOption("--nope"), &Current{Name: "welcome", Synopsis: "welcome"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Renderer{Executable: "platform"}

			lines := texts(r.Render(tt.err, normal, tt.current, 80, plainFormatter()))

			hint := []string{
				"Usage: <info>project:list [--pipe]</info>",
				"",
				"For more information, type: <info>platform help project:list</info>",
				"",
			}
			if tt.wantHint {
				require.Equal(t, hint, lines[len(lines)-4:])
			} else {
				require.NotContains(t, strings.Join(lines, "\n"), "For more information")
			}
		})
	}
}

func TestRender_UnknownCommandHasNoHint(t *testing.T) {
	r := &Renderer{Executable: "platform"}

	lines := r.Render(usage.CommandNotFound("deploy-everything"), normal, nil, 80, plainFormatter())

	require.Equal(t, 1, countContaining(lines, "[CommandNotFound]"))
	require.Equal(t, 1, countContaining(lines, `Command "deploy-everything" is not defined.`))
	require.Zero(t, countContaining(lines, "Usage:"))
}

func TestLabel(t *testing.T) {
	require.Equal(t, "InvalidOption", Label(usage.InvalidOption("--x")))
	require.Equal(t, "errorString", Label(errors.New("x")))
	require.Equal(t, "chainErr", Label(&chainErr{msg: "x"}))
	require.Equal(t, "Error", Label(errtrace.New("x")))
}

func TestWrite_IgnoresQuiet(t *testing.T) {
	var buf bytes.Buffer
	out := ui.NewOutput(&buf)
	out.ApplyAnsi(domain.AnsiOff)
	out.SetVerbosity(domain.VerbosityQuiet)

	Write(out, []Line{{Text: "raw <info>kept</info>", Raw: true}, {Text: "<info>formatted</info>"}})

	require.Equal(t, "raw <info>kept</info>\nformatted\n", buf.String())
}
