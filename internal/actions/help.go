package actions

import (
	"context"

	"github.com/footprint-tools/platform-cli/internal/dispatchers"
	"github.com/footprint-tools/platform-cli/internal/help"
	"github.com/footprint-tools/platform-cli/internal/usage"
)

// Help shows the help page of one command, or the global help when no
// command is named.
func Help(deps Deps) dispatchers.CommandFunc {
	return func(_ context.Context, inv *dispatchers.Invocation) (int, error) {
		return showHelp(inv, deps)
	}
}

func showHelp(inv *dispatchers.Invocation, deps Deps) (int, error) {
	if len(inv.Args) == 0 {
		writeLong(inv.Stdout, deps.Composer.Help()+"\n")
		return 0, nil
	}

	name := inv.Args[0]
	d, ok := inv.Registry.Lookup(name)
	if !ok {
		suggestions := dispatchers.FindSimilarCommands(name, inv.Registry.Names(), 3)
		return 1, usage.CommandNotFound(name, suggestions...)
	}
	writeLong(inv.Stdout, help.CommandHelp(d, deps.Executable, deps.Composer.GlobalOptionsHelp()))
	return 0, nil
}
