// Package render turns a failed command's error chain into the bracketed
// error blocks printed on stderr.
package render

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/footprint-tools/platform-cli/internal/domain"
	"github.com/footprint-tools/platform-cli/internal/errtrace"
	"github.com/footprint-tools/platform-cli/internal/usage"
)

// DefaultWidth is used when the terminal width is unknown.
const DefaultWidth = 80

// defaultCommand never gets a usage hint.
const defaultCommand = "welcome"

var newlines = regexp.MustCompile(`\r?\n`)

// Line is one line of rendered output. Raw lines are already formatted and
// must be written verbatim.
type Line struct {
	Text string
	Raw  bool
}

// Current identifies the command that was running when the error
// happened.
type Current struct {
	Name     string
	Synopsis string
}

// Renderer formats error chains. Executable is used in the help hint.
type Renderer struct {
	Executable string
}

// Labeler is implemented by errors that name their own kind.
type Labeler interface {
	Label() string
}

// Render produces the output for err. current may be nil when no command
// had started.
func (r *Renderer) Render(err error, opts domain.GlobalOptions, current *Current, width int, f domain.Formatter) []Line {
	if err == nil {
		return nil
	}
	if width <= 0 {
		width = DefaultWidth
	}

	lines := []Line{{Raw: true}}
	for e := err; e != nil; {
		lines = append(lines, block(e, width, f)...)
		if opts.IsDebug() {
			lines = append(lines, trace(e)...)
		}

		next := errors.Unwrap(e)
		if next == nil || next.Error() == e.Error() {
			break
		}
		e = next
	}

	if current != nil && current.Name != defaultCommand && usage.IsUsage(err) {
		lines = append(lines,
			Line{Text: fmt.Sprintf("Usage: <info>%s</info>", current.Synopsis)},
			Line{},
			Line{Text: fmt.Sprintf("For more information, type: <info>%s help %s</info>", r.Executable, current.Name)},
			Line{},
		)
	}
	return lines
}

// Write sends lines to out at quiet priority, so they show even with
// --quiet.
func Write(out domain.Output, lines []Line) {
	for _, l := range lines {
		if l.Raw {
			out.WritelnRaw(l.Text, domain.VerbosityQuiet)
		} else {
			out.Writeln(l.Text, domain.VerbosityQuiet)
		}
	}
}

type chunk struct {
	text  string
	width int
}

// block draws the coloured box for one error: padding line, title,
// message lines, padding line and a separator.
func block(e error, width int, f domain.Formatter) []Line {
	title := fmt.Sprintf("  [%s]  ", Label(e))
	blockWidth := len([]rune(title))

	var chunks []chunk
	for _, line := range newlines.Split(e.Error(), -1) {
		for _, c := range splitRunes(line, width-1-4) {
			w := f.Width(f.Format(c)) + 4
			chunks = append(chunks, chunk{text: c, width: w})
			blockWidth = max(blockWidth, w)
		}
	}

	empty := f.Format(fmt.Sprintf("<error>%s</error>", strings.Repeat(" ", blockWidth)))
	out := []Line{
		{Text: empty, Raw: true},
		{Text: f.Format(fmt.Sprintf("<error>%s%s</error>", title, strings.Repeat(" ", max(0, blockWidth-len([]rune(title)))))), Raw: true},
	}
	for _, c := range chunks {
		out = append(out, Line{
			Text: f.Format(fmt.Sprintf("<error>  %s  %s</error>", c.text, strings.Repeat(" ", blockWidth-c.width))),
			Raw:  true,
		})
	}
	out = append(out, Line{Text: empty, Raw: true}, Line{Raw: true})
	return out
}

// splitRunes cuts s into pieces of at most size runes. An empty string
// yields one empty piece.
func splitRunes(s string, size int) []string {
	if size < 1 {
		size = 1
	}
	runes := []rune(s)
	if len(runes) == 0 {
		return []string{""}
	}
	var out []string
	for len(runes) > size {
		out = append(out, string(runes[:size]))
		runes = runes[size:]
	}
	return append(out, string(runes))
}

func trace(e error) []Line {
	file, line := "n/a", "n/a"
	if f, l, ok := errtrace.OriginOf(e); ok {
		file, line = f, fmt.Sprint(l)
	}

	lines := []Line{
		{Text: "<comment>Exception trace:</comment>"},
		{Text: fmt.Sprintf(" () at <info>%s:%s</info>", file, line)},
	}
	for _, fr := range errtrace.FramesOf(e) {
		frameFile, frameLine := "n/a", "n/a"
		if fr.File != "" {
			frameFile, frameLine = fr.File, fmt.Sprint(fr.Line)
		}
		lines = append(lines, Line{
			Text: fmt.Sprintf(" %s%s%s() at <info>%s:%s</info>", fr.Class, fr.CallType, fr.Function, frameFile, frameLine),
		})
	}
	return append(lines, Line{})
}

// Label returns the short kind name of e: its own label when it has one,
// otherwise its type name without package or pointer marker.
func Label(e error) string {
	if l, ok := e.(Labeler); ok {
		if label := l.Label(); label != "" {
			return label
		}
	}
	name := strings.TrimLeft(fmt.Sprintf("%T", e), "*")
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
