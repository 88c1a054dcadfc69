package completions

import (
	"fmt"
	"strings"
)

// GenerateBash returns a bash completion script for bin.
func GenerateBash(bin string, commands []CommandInfo, globals []FlagInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s bash completion script\n", bin)
	writeBashBody(&b, bin, commands, globals)
	return b.String()
}

func writeBashBody(b *strings.Builder, bin string, commands []CommandInfo, globals []FlagInfo) {
	fn := "_" + funcName(bin) + "_completions"

	var names []string
	for _, c := range commands {
		names = append(names, c.words()...)
	}

	// Command names contain colons, which bash splits words on by default.
	b.WriteString("COMP_WORDBREAKS=${COMP_WORDBREAKS//:}\n\n")
	fmt.Fprintf(b, "%s()\n{\n", fn)
	b.WriteString("    local cur cmd i opts\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    cmd=\"\"\n")
	b.WriteString("    for ((i = 1; i < COMP_CWORD; i++)); do\n")
	b.WriteString("        case \"${COMP_WORDS[i]}\" in\n")
	b.WriteString("            -*) ;;\n")
	b.WriteString("            *) cmd=\"${COMP_WORDS[i]}\"; break ;;\n")
	b.WriteString("        esac\n")
	b.WriteString("    done\n\n")
	fmt.Fprintf(b, "    opts=\"%s\"\n", strings.Join(flagWords(globals), " "))
	b.WriteString("    case \"$cmd\" in\n")
	for _, c := range commands {
		if len(c.Flags) == 0 {
			continue
		}
		fmt.Fprintf(b, "        %s)\n", strings.Join(c.words(), "|"))
		fmt.Fprintf(b, "            opts=\"$opts %s\"\n", strings.Join(flagWords(c.Flags), " "))
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n\n")
	b.WriteString("    if [[ \"$cur\" == -* ]]; then\n")
	b.WriteString("        COMPREPLY=($(compgen -W \"$opts\" -- \"$cur\"))\n")
	b.WriteString("        return 0\n")
	b.WriteString("    fi\n")
	b.WriteString("    if [[ -z \"$cmd\" ]]; then\n")
	fmt.Fprintf(b, "        COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(names, " "))
	b.WriteString("    fi\n")
	b.WriteString("    return 0\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(b, "complete -F %s %s\n", fn, bin)
}

func funcName(bin string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, bin)
}
