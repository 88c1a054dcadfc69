package actions

import (
	"context"
	"fmt"

	"github.com/footprint-tools/platform-cli/internal/dispatchers"
	"github.com/footprint-tools/platform-cli/internal/domain"
)

// Welcome greets the user. It runs when no command name is given.
func Welcome(deps Deps) dispatchers.CommandFunc {
	return func(_ context.Context, inv *dispatchers.Invocation) (int, error) {
		return welcome(inv, deps)
	}
}

func welcome(inv *dispatchers.Invocation, deps Deps) (int, error) {
	out := inv.Stderr
	out.Writeln(fmt.Sprintf("Welcome to %s!", deps.AppName), domain.VerbosityNormal)
	out.Writeln("", domain.VerbosityNormal)
	out.Writeln(deps.Composer.LongVersion(), domain.VerbosityNormal)
	out.Writeln("", domain.VerbosityNormal)
	out.Writeln(fmt.Sprintf("To list all commands, run: <info>%s list</info>", deps.Executable), domain.VerbosityNormal)
	out.Writeln(fmt.Sprintf("To get help for a command, run: <info>%s help COMMAND</info>", deps.Executable), domain.VerbosityNormal)
	return 0, nil
}
