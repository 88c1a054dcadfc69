// Package cli builds the command registry: the built-in commands and the
// catalog of API commands, in their registration order.
package cli

import (
	"github.com/footprint-tools/platform-cli/internal/actions"
	"github.com/footprint-tools/platform-cli/internal/dispatchers"
)

// BuildRegistry registers every command. A name or alias collision is a
// configuration error.
func BuildRegistry(deps actions.Deps) (*dispatchers.Registry, error) {
	reg := dispatchers.NewRegistry()

	var all []*dispatchers.Descriptor
	all = append(all,
		&dispatchers.Descriptor{
			Name:        "help",
			Summary:     "Displays help for a command",
			Description: "The help command displays help for a given command, or the global options when no command is given.",
			Args:        CommandNameArg,
			Command:     actions.Help(deps),
		},
		&dispatchers.Descriptor{
			Name:    "list",
			Summary: "Lists commands",
			Args:    NamespaceArg,
			Flags:   ListFlags,
			Command: actions.List(deps),
		},
	)
	all = append(all, remoteDescriptors(apiHead, deps)...)
	all = append(all,
		&dispatchers.Descriptor{
			Name:    "clear-cache",
			Aliases: []string{"cc"},
			Summary: "Clear the CLI cache",
			Command: actions.ClearCache(deps),
		},
		&dispatchers.Descriptor{
			Name:    "completion",
			Summary: "Print a shell completion script",
			Description: "Load the script in your shell to complete command names and options, e.g.:\n" +
				"  eval \"$(" + deps.Executable + " completion bash)\"",
			Args:    ShellArg,
			Flags:   CompletionFlags,
			Command: actions.Completion(deps),
		},
	)
	all = append(all, remoteDescriptors(apiDecodeDocs, deps)...)
	all = append(all,
		&dispatchers.Descriptor{
			Name:    "multi",
			Summary: "Execute several commands in one process",
			Description: "Each argument is one command line. Commands run in order and the exit code is the highest one seen.\n" +
				"Unless --continue is given, the first failing command stops the run.",
			Args:    CommandLinesArg,
			Flags:   MultiFlags,
			Command: actions.Multi(deps),
		},
	)
	all = append(all, remoteDescriptors(apiCatalog, deps)...)
	all = append(all,
		&dispatchers.Descriptor{
			Name:    dispatchers.DefaultCommand,
			Summary: "Welcome to " + deps.AppName,
			Hidden:  true,
			Command: actions.Welcome(deps),
		},
	)
	all = append(all, remoteDescriptors(apiTail, deps)...)

	for _, d := range all {
		if err := reg.Register(d); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func remoteDescriptors(commands []apiCommand, deps actions.Deps) []*dispatchers.Descriptor {
	out := make([]*dispatchers.Descriptor, 0, len(commands))
	for _, c := range commands {
		out = append(out, &dispatchers.Descriptor{
			Name:    c.name,
			Aliases: c.aliases,
			Summary: c.summary,
			Hidden:  c.hidden,
			Args:    c.args,
			Flags:   c.flags,
			Command: actions.NewRemote(deps.API),
		})
	}
	return out
}
