// Package help composes the version banner, the global options listing and
// per-command help text.
package help

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/footprint-tools/platform-cli/internal/dispatchers"
)

// shortcutAnnotation overrides the shortcut shown in listings, for
// options whose shortcut can be repeated.
const shortcutAnnotation = "platform_shortcut"

// hiddenAnnotation marks options that are accepted but not advertised in
// command synopses.
const hiddenAnnotation = "platform_hidden"

// GlobalFlagSet defines the options accepted by every command, in the
// order they are listed.
func GlobalFlagSet(envPrefix string) *pflag.FlagSet {
	fs := pflag.NewFlagSet("global", pflag.ContinueOnError)
	fs.SortFlags = false

	fs.BoolP("help", "h", false, "Display this help message")
	fs.BoolP("version", "V", false, "Display this application version")
	fs.CountP("verbose", "v", "Increase the verbosity of messages")
	fs.BoolP("quiet", "q", false, "Only print necessary output; suppress other messages and errors. This implies --no-interaction. It is ignored in verbose mode.")
	fs.BoolP("yes", "y", false, `Answer "yes" to confirmation questions; accept the default value for other questions; disable interaction`)
	fs.Bool("no-interaction", false, "Do not ask any interactive questions; accept default values. "+
		fmt.Sprintf("Equivalent to using the environment variable: <comment>%sNO_INTERACTION=1</comment>", envPrefix))
	fs.Bool("ansi", false, "Force ANSI output")
	fs.Bool("no-ansi", false, "Disable ANSI output")
	fs.BoolP("no", "n", false, `Answer "no" to confirmation questions; accept the default value for other questions; disable interaction`)

	_ = fs.SetAnnotation("verbose", shortcutAnnotation, []string{"v|vv|vvv"})
	for _, name := range []string{"ansi", "no-ansi", "no"} {
		_ = fs.SetAnnotation(name, hiddenAnnotation, []string{"true"})
	}
	return fs
}

// OptionRow is one global option as listed in help.
type OptionRow struct {
	Name        string
	Shortcut    string
	Description string
	Hidden      bool
}

// Rows lists the options of fs in declaration order.
func Rows(fs *pflag.FlagSet) []OptionRow {
	var rows []OptionRow
	fs.VisitAll(func(f *pflag.Flag) {
		row := OptionRow{
			Name:        f.Name,
			Shortcut:    f.Shorthand,
			Description: f.Usage,
		}
		if s, ok := f.Annotations[shortcutAnnotation]; ok && len(s) > 0 {
			row.Shortcut = s[0]
		}
		if _, ok := f.Annotations[hiddenAnnotation]; ok {
			row.Hidden = true
		}
		rows = append(rows, row)
	})
	return rows
}

// FlagDescriptors converts the global options for the dispatcher's option
// validation.
func FlagDescriptors(fs *pflag.FlagSet) []dispatchers.FlagDescriptor {
	var out []dispatchers.FlagDescriptor
	for _, row := range Rows(fs) {
		names := []string{"--" + row.Name}
		if row.Shortcut != "" {
			names = append(names, "-"+strings.SplitN(row.Shortcut, "|", 2)[0])
		}
		out = append(out, dispatchers.FlagDescriptor{
			Names:       names,
			Description: row.Description,
			Hidden:      row.Hidden,
		})
	}
	return out
}
