package completions

import (
	"fmt"
	"strings"
)

// GenerateFish returns a fish completion script.
func GenerateFish(bin string, commands []CommandInfo, globals []FlagInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s fish completion script\n", bin)
	fmt.Fprintf(&b, "complete -c %s -f\n\n", bin)

	for _, c := range commands {
		for _, w := range c.words() {
			fmt.Fprintf(&b, "complete -c %s -n '__fish_use_subcommand' -a '%s' -d '%s'\n", bin, w, fishQuote(c.Summary))
		}
	}
	b.WriteString("\n")
	for _, c := range commands {
		cond := fmt.Sprintf("__fish_seen_subcommand_from %s", strings.Join(c.words(), " "))
		for _, f := range c.Flags {
			writeFishFlag(&b, bin, cond, f)
		}
	}
	for _, f := range globals {
		writeFishFlag(&b, bin, "", f)
	}
	return b.String()
}

func writeFishFlag(b *strings.Builder, bin, cond string, f FlagInfo) {
	fmt.Fprintf(b, "complete -c %s", bin)
	if cond != "" {
		fmt.Fprintf(b, " -n '%s'", cond)
	}
	if long := f.Long(); long != "" {
		fmt.Fprintf(b, " -l %s", long)
	}
	if short := f.Short(); short != "" {
		fmt.Fprintf(b, " -s %s", short)
	}
	if f.HasValue {
		b.WriteString(" -r")
	}
	fmt.Fprintf(b, " -d '%s'\n", fishQuote(f.Description))
}

func fishQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "'", `\'`)
}
