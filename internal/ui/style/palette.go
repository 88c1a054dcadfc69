package style

// Palette maps markup tag names to style specs. A spec has the same syntax
// as an inline tag: "fg=<color>;bg=<color>;options=<opt>,<opt>".
//
// Colors can be names (black, red, green, yellow, blue, magenta, cyan,
// white, gray, bright-*), ANSI numbers (0-255) or hex values (#rrggbb).
type Palette map[string]string

// DefaultPalette contains the built-in tags.
func DefaultPalette() Palette {
	return Palette{
		"info":     "fg=green",
		"comment":  "fg=yellow",
		"question": "fg=black;bg=cyan",
		"error":    "fg=white;bg=red",
		"muted":    "fg=gray",
		"header":   "options=bold",
	}
}

// Merge returns a copy of p with overrides applied. Empty override values
// are ignored.
func (p Palette) Merge(overrides map[string]string) Palette {
	out := make(Palette, len(p)+len(overrides))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range overrides {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

var colorNames = map[string]string{
	"black":          "0",
	"red":            "1",
	"green":          "2",
	"yellow":         "3",
	"blue":           "4",
	"magenta":        "5",
	"cyan":           "6",
	"white":          "7",
	"gray":           "8",
	"bright-black":   "8",
	"bright-red":     "9",
	"bright-green":   "10",
	"bright-yellow":  "11",
	"bright-blue":    "12",
	"bright-magenta": "13",
	"bright-cyan":    "14",
	"bright-white":   "15",
}
