package cli

import "github.com/footprint-tools/platform-cli/internal/dispatchers"

var (
	CommandNameArg = []dispatchers.ArgSpec{
		{
			Name:        "command_name",
			Description: "The command name",
		},
	}

	NamespaceArg = []dispatchers.ArgSpec{
		{
			Name:        "namespace",
			Description: "The namespace name",
		},
	}

	CommandLinesArg = []dispatchers.ArgSpec{
		{
			Name:        "cmd",
			Description: "The command lines to execute, one per argument",
			Required:    true,
			Array:       true,
		},
	}

	ShellArg = []dispatchers.ArgSpec{
		{
			Name:        "shell",
			Description: "The shell: bash, zsh or fish (detected from $SHELL by default)",
		},
	}
)

func required(name, description string) []dispatchers.ArgSpec {
	return []dispatchers.ArgSpec{{Name: name, Description: description, Required: true}}
}

func optional(name, description string) []dispatchers.ArgSpec {
	return []dispatchers.ArgSpec{{Name: name, Description: description}}
}

func rest(name, description string) []dispatchers.ArgSpec {
	return []dispatchers.ArgSpec{{Name: name, Description: description, Array: true}}
}
