// Package style renders inline markup such as <info>text</info> using
// lipgloss.
//
// This package is the only place where lipgloss is imported. Tags are
// semantic (info, comment, error, question) or inline specs
// (<fg=red;options=bold>). When decoration is disabled every tag is
// stripped and no ANSI codes are produced.
package style

import (
	"io"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/footprint-tools/platform-cli/internal/domain"
)

var tagPattern = regexp.MustCompile(`(?i)<(/?)([a-z][^\\<>]*)?>`)

// Formatter implements domain.Formatter for one output stream.
type Formatter struct {
	renderer *lipgloss.Renderer
	enabled  bool
	palette  Palette
	styles   map[string]lipgloss.Style
}

// NewFormatter creates a formatter writing for w. The renderer's colour
// profile is detected from w; ForceColors overrides it.
func NewFormatter(w io.Writer, enabled bool, palette Palette) *Formatter {
	if palette == nil {
		palette = DefaultPalette()
	}
	f := &Formatter{
		renderer: lipgloss.NewRenderer(w),
		enabled:  enabled,
		palette:  palette,
	}
	f.initStyles()
	return f
}

// ForceColors makes the renderer emit ANSI256 colours regardless of TTY
// detection. Used when decoration is forced on.
func (f *Formatter) ForceColors() {
	f.renderer.SetColorProfile(termenv.ANSI256)
	f.initStyles()
}

// DetectsColor reports whether the renderer found a colour capable
// terminal on its own.
func (f *Formatter) DetectsColor() bool {
	return f.renderer.ColorProfile() != termenv.Ascii
}

// initStyles creates the lipgloss styles for the palette tags.
func (f *Formatter) initStyles() {
	f.styles = make(map[string]lipgloss.Style, len(f.palette))
	for name, spec := range f.palette {
		if st, ok := f.parseSpec(spec); ok {
			f.styles[name] = st
		}
	}
}

// SetEnabled switches decoration on or off.
func (f *Formatter) SetEnabled(enabled bool) {
	f.enabled = enabled
}

// Enabled returns whether decoration is currently enabled.
func (f *Formatter) Enabled() bool {
	return f.enabled
}

// Format renders the markup in text. Unknown tags are left untouched and
// "\<" escapes a literal "<".
func (f *Formatter) Format(text string) string {
	var out strings.Builder
	var stack []lipgloss.Style
	offset := 0

	for _, m := range tagPattern.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[0], m[1]
		if start > 0 && text[start-1] == '\\' {
			continue
		}
		closing := m[3] > m[2]
		spec := ""
		if m[4] >= 0 {
			spec = text[m[4]:m[5]]
		}

		if closing {
			if len(stack) == 0 {
				continue
			}
			out.WriteString(f.apply(stack, text[offset:start]))
			stack = stack[:len(stack)-1]
		} else {
			st, ok := f.lookup(spec)
			if !ok {
				continue
			}
			out.WriteString(f.apply(stack, text[offset:start]))
			stack = append(stack, st)
		}
		offset = end
	}
	out.WriteString(f.apply(stack, text[offset:]))

	return strings.ReplaceAll(out.String(), `\<`, "<")
}

// Width returns the visible cell width of formatted text, ignoring ANSI
// sequences. For multi-line text the widest line counts.
func (f *Formatter) Width(formatted string) int {
	return lipgloss.Width(formatted)
}

func (f *Formatter) apply(stack []lipgloss.Style, s string) string {
	if s == "" || !f.enabled || len(stack) == 0 {
		return s
	}
	st := stack[len(stack)-1]
	// Render per line: lipgloss pads multi-line blocks to equal width.
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = st.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

func (f *Formatter) lookup(spec string) (lipgloss.Style, bool) {
	if st, ok := f.styles[strings.ToLower(spec)]; ok {
		return st, true
	}
	if !strings.Contains(spec, "=") {
		return lipgloss.Style{}, false
	}
	return f.parseSpec(spec)
}

// parseSpec converts "fg=red;bg=blue;options=bold,reverse" into a style.
func (f *Formatter) parseSpec(spec string) (lipgloss.Style, bool) {
	st := f.renderer.NewStyle()
	matched := false
	for _, part := range strings.Split(spec, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			return lipgloss.Style{}, false
		}
		value = strings.ToLower(strings.TrimSpace(value))
		switch strings.ToLower(key) {
		case "fg":
			if c, ok := resolveColor(value); ok {
				st = st.Foreground(c)
			}
		case "bg":
			if c, ok := resolveColor(value); ok {
				st = st.Background(c)
			}
		case "options":
			for _, opt := range strings.Split(value, ",") {
				switch strings.TrimSpace(opt) {
				case "bold":
					st = st.Bold(true)
				case "underscore":
					st = st.Underline(true)
				case "blink":
					st = st.Blink(true)
				case "reverse":
					st = st.Reverse(true)
				}
			}
		default:
			return lipgloss.Style{}, false
		}
		matched = true
	}
	return st, matched
}

func resolveColor(value string) (lipgloss.TerminalColor, bool) {
	if value == "" || value == "default" {
		return lipgloss.NoColor{}, false
	}
	if n, ok := colorNames[value]; ok {
		return lipgloss.Color(n), true
	}
	return lipgloss.Color(value), true
}

// Verify Formatter implements domain.Formatter
var _ domain.Formatter = (*Formatter)(nil)
