package environment

import "strings"

// argScan answers presence questions about raw arguments without parsing
// them. Tokens after "--" are operands and never count.
type argScan []string

func scanArgs(args []string) argScan {
	for i, a := range args {
		if a == "--" {
			return argScan(args[:i])
		}
	}
	return argScan(args)
}

// has reports whether any of the flags is present. A long flag matches
// exactly or with an attached "=value". A short flag matches as a prefix so
// that "-vvv" also satisfies "-v" and "-q1" satisfies "-q".
func (s argScan) has(flags ...string) bool {
	for _, token := range s {
		for _, flag := range flags {
			if token == flag {
				return true
			}
			if strings.HasPrefix(flag, "--") {
				if strings.HasPrefix(token, flag+"=") {
					return true
				}
				continue
			}
			if !strings.HasPrefix(token, "--") && strings.HasPrefix(token, flag) {
				return true
			}
		}
	}
	return false
}

// HasFlag reports whether any of flags appears in args before "--", with
// the same matching rules the resolver uses.
func HasFlag(args []string, flags ...string) bool {
	return scanArgs(args).has(flags...)
}
