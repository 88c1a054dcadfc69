package help

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/platform-cli/internal/dispatchers"
)

// CommandHelp renders the help page of one command. Global options that
// are not hidden are listed after the command's own.
func CommandHelp(d *dispatchers.Descriptor, executable string, globals []OptionRow) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<comment>Command:</comment> %s\n", d.Name)
	if len(d.Aliases) > 0 {
		fmt.Fprintf(&b, "<comment>Aliases:</comment> %s\n", strings.Join(d.Aliases, ", "))
	}
	fmt.Fprintf(&b, "<comment>Description:</comment> %s\n\n", d.Summary)

	b.WriteString("<comment>Usage:</comment>\n")
	fmt.Fprintf(&b, " %s %s\n", executable, d.Synopsis())

	if len(d.Args) > 0 {
		b.WriteString("\n<comment>Arguments:</comment>\n")
		width := 0
		for _, a := range d.Args {
			width = max(width, len(a.Name))
		}
		for _, a := range d.Args {
			desc := a.Description
			if a.Required {
				desc += " (required)"
			}
			fmt.Fprintf(&b, "  <info>%-*s</info>  %s\n", width, a.Name, strings.TrimSpace(desc))
		}
	}

	var optionRows [][2]string
	for _, f := range d.Flags {
		if f.Hidden {
			continue
		}
		optionRows = append(optionRows, [2]string{optionLabel(f), f.Description})
	}
	for _, g := range globals {
		if g.Hidden {
			continue
		}
		label := "--" + g.Name
		if g.Shortcut != "" {
			label = "-" + g.Shortcut + ", " + label
		}
		optionRows = append(optionRows, [2]string{label, g.Description})
	}
	if len(optionRows) > 0 {
		b.WriteString("\n<comment>Options:</comment>\n")
		width := 0
		for _, r := range optionRows {
			width = max(width, len(r[0]))
		}
		for _, r := range optionRows {
			fmt.Fprintf(&b, "  <info>%-*s</info>  %s\n", width, r[0], r[1])
		}
	}

	if d.Description != "" {
		b.WriteString("\n<comment>Help:</comment>\n")
		for _, line := range strings.Split(d.Description, "\n") {
			b.WriteString("  " + line + "\n")
		}
	}

	return b.String()
}

// optionLabel renders "-e, --environment=ENVIRONMENT".
func optionLabel(f dispatchers.FlagDescriptor) string {
	var short, long []string
	for _, n := range f.Names {
		if strings.HasPrefix(n, "--") {
			long = append(long, n)
		} else {
			short = append(short, n)
		}
	}
	label := strings.Join(append(short, long...), ", ")
	if f.TakesValue() {
		label += "=" + strings.ToUpper(f.ValueHint)
	}
	return label
}
