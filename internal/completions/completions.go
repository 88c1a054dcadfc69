package completions

import (
	"strings"

	"github.com/footprint-tools/platform-cli/internal/dispatchers"
)

// CommandInfo represents a command extracted from the registry
type CommandInfo struct {
	Name    string
	Aliases []string
	Summary string
	Flags   []FlagInfo
}

// FlagInfo represents a flag for a command
type FlagInfo struct {
	Names       []string
	Description string
	HasValue    bool
}

// Long returns the flag's long name without dashes.
func (f FlagInfo) Long() string {
	for _, n := range f.Names {
		if strings.HasPrefix(n, "--") {
			return strings.TrimPrefix(n, "--")
		}
	}
	return ""
}

// Short returns the flag's one-letter shortcut without the dash, if any.
func (f FlagInfo) Short() string {
	for _, n := range f.Names {
		if !strings.HasPrefix(n, "--") && len(n) == 2 {
			return n[1:]
		}
	}
	return ""
}

// ExtractCommands lists the visible commands of the registry in
// registration order.
func ExtractCommands(reg *dispatchers.Registry) []CommandInfo {
	var commands []CommandInfo
	for _, d := range reg.All() {
		if d.Hidden {
			continue
		}
		commands = append(commands, CommandInfo{
			Name:    d.Name,
			Aliases: d.Aliases,
			Summary: d.Summary,
			Flags:   ExtractFlags(d.Flags),
		})
	}
	return commands
}

// ExtractFlags converts descriptors, leaving out hidden ones.
func ExtractFlags(descriptors []dispatchers.FlagDescriptor) []FlagInfo {
	var flags []FlagInfo
	for _, f := range descriptors {
		if f.Hidden {
			continue
		}
		flags = append(flags, FlagInfo{
			Names:       f.Names,
			Description: f.Description,
			HasValue:    f.TakesValue(),
		})
	}
	return flags
}

// FindCommand finds a command by name or alias
func FindCommand(commands []CommandInfo, name string) *CommandInfo {
	for i := range commands {
		if commands[i].Name == name {
			return &commands[i]
		}
	}
	for i := range commands {
		for _, alias := range commands[i].Aliases {
			if alias == name {
				return &commands[i]
			}
		}
	}
	return nil
}

func (c CommandInfo) words() []string {
	return append([]string{c.Name}, c.Aliases...)
}

func flagWords(flags []FlagInfo) []string {
	var words []string
	for _, f := range flags {
		words = append(words, f.Names...)
	}
	return words
}
