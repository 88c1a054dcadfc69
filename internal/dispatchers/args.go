package dispatchers

import (
	"strings"

	"github.com/footprint-tools/platform-cli/internal/usage"
)

type flagIndex map[string]FlagDescriptor

func indexFlags(sets ...[]FlagDescriptor) flagIndex {
	idx := make(flagIndex)
	for _, set := range sets {
		for _, f := range set {
			for _, name := range f.Names {
				if _, taken := idx[name]; !taken {
					idx[name] = f
				}
			}
		}
	}
	return idx
}

// splitArgs separates positional arguments from options. Options are
// checked against the command's own flags and the global flags, and come
// back under their long name. Everything after "--" is positional.
func splitArgs(tokens []string, local, global []FlagDescriptor) ([]string, []string, error) {
	idx := indexFlags(local, global)
	var positional, flags []string

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch {
		case tok == "--":
			positional = append(positional, tokens[i+1:]...)
			return positional, flags, nil
		case tok == "-" || !strings.HasPrefix(tok, "-"):
			positional = append(positional, tok)
		case strings.HasPrefix(tok, "--"):
			name, value, hasValue := strings.Cut(tok, "=")
			f, ok := idx[name]
			if !ok {
				return nil, nil, usage.InvalidOption(name)
			}
			if !f.TakesValue() {
				if hasValue {
					return nil, nil, usage.OptionTakesNoValue(name)
				}
				flags = append(flags, f.Names[0])
				continue
			}
			if !hasValue {
				if i+1 >= len(tokens) || strings.HasPrefix(tokens[i+1], "-") {
					return nil, nil, usage.OptionRequiresValue(f.Names[0])
				}
				i++
				value = tokens[i]
			}
			flags = append(flags, f.Names[0]+"="+value)
		default:
			consumedNext, err := splitShort(tok, tokens[i+1:], idx, &flags)
			if err != nil {
				return nil, nil, err
			}
			if consumedNext {
				i++
			}
		}
	}
	return positional, flags, nil
}

// splitShort handles "-x", "-xyz" (stacked switches) and "-evalue".
func splitShort(tok string, rest []string, idx flagIndex, flags *[]string) (bool, error) {
	if f, ok := idx[tok]; ok && !f.TakesValue() {
		*flags = append(*flags, f.Names[0])
		return false, nil
	}
	chars := tok[1:]
	for j := 0; j < len(chars); j++ {
		name := "-" + string(chars[j])
		f, ok := idx[name]
		if !ok {
			return false, usage.InvalidOption(name)
		}
		if !f.TakesValue() {
			*flags = append(*flags, f.Names[0])
			continue
		}
		if value := strings.TrimPrefix(chars[j+1:], "="); value != "" {
			*flags = append(*flags, f.Names[0]+"="+value)
			return false, nil
		}
		if len(rest) == 0 || strings.HasPrefix(rest[0], "-") {
			return false, usage.OptionRequiresValue(f.Names[0])
		}
		*flags = append(*flags, f.Names[0]+"="+rest[0])
		return true, nil
	}
	return false, nil
}

func validateArgs(spec []ArgSpec, args []string) error {
	var missing []string
	for i, a := range spec {
		if a.Required && i >= len(args) {
			missing = append(missing, a.Name)
		}
	}
	if len(missing) > 0 {
		return usage.MissingArguments(missing...)
	}

	if len(spec) > 0 && spec[len(spec)-1].Array {
		return nil
	}
	if len(args) > len(spec) {
		names := make([]string, len(spec))
		for i, a := range spec {
			names[i] = a.Name
		}
		return usage.TooManyArguments(args[len(spec)], names...)
	}
	return nil
}
