package dispatchers

import "strings"

// ParsedFlags provides typed access to command-line flags. Flags are stored
// under their long name, as "--name" or "--name=value".
type ParsedFlags struct {
	raw []string
}

// NewParsedFlags creates a ParsedFlags from a slice of flag strings.
func NewParsedFlags(flags []string) *ParsedFlags {
	return &ParsedFlags{raw: flags}
}

// Raw returns the underlying flag strings.
func (f *ParsedFlags) Raw() []string {
	if f == nil {
		return nil
	}
	return f.raw
}

// Has returns true if the flag is present (for boolean flags).
func (f *ParsedFlags) Has(name string) bool {
	for _, flag := range f.Raw() {
		if flag == name {
			return true
		}
	}
	return false
}

// String returns the last value of a flag, or defaultVal if not present.
func (f *ParsedFlags) String(name, defaultVal string) string {
	values := f.Values(name)
	if len(values) == 0 {
		return defaultVal
	}
	return values[len(values)-1]
}

// Values returns every value given for a repeatable flag, in order.
func (f *ParsedFlags) Values(name string) []string {
	prefix := name + "="
	var values []string
	for _, flag := range f.Raw() {
		if strings.HasPrefix(flag, prefix) {
			values = append(values, strings.TrimPrefix(flag, prefix))
		}
	}
	return values
}
