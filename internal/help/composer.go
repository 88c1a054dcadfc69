package help

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// AppInfo is the part of the runtime configuration the composer reads.
type AppInfo interface {
	Name() string
	Version() string
	IsWrapped() bool
	MarkUnwrappedLegacy() bool
}

// Composer formats the application banner and global option listing.
type Composer struct {
	info  AppInfo
	flags *pflag.FlagSet
}

func NewComposer(info AppInfo, flags *pflag.FlagSet) *Composer {
	return &Composer{info: info, flags: flags}
}

// LongVersion is "<name> <version>", with "(legacy)" after the name when
// an unwrapped binary is configured to say so.
func (c *Composer) LongVersion() string {
	if !c.info.IsWrapped() && c.info.MarkUnwrappedLegacy() {
		return fmt.Sprintf("%s (legacy) <info>%s</info>", c.info.Name(), c.info.Version())
	}
	return fmt.Sprintf("%s <info>%s</info>", c.info.Name(), c.info.Version())
}

// GlobalOptionsHelp lists the global options in declaration order.
func (c *Composer) GlobalOptionsHelp() []OptionRow {
	return Rows(c.flags)
}

// Help is the banner followed by the global options.
func (c *Composer) Help() string {
	lines := []string{
		c.LongVersion(),
		"",
		"<comment>Global options:</comment>",
	}
	lines = append(lines, optionLines(c.GlobalOptionsHelp())...)
	return strings.Join(lines, "\n")
}

func optionLines(rows []OptionRow) []string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		shortcut := "  "
		if row.Shortcut != "" {
			shortcut = "<info>-" + row.Shortcut + "</info>"
		}
		lines = append(lines, fmt.Sprintf("  %-29s %s %s", "<info>--"+row.Name+"</info>", shortcut, row.Description))
	}
	return lines
}
