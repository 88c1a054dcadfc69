package actions

import (
	"context"
	"fmt"

	"github.com/footprint-tools/platform-cli/internal/completions"
	"github.com/footprint-tools/platform-cli/internal/dispatchers"
	"github.com/footprint-tools/platform-cli/internal/domain"
	"github.com/footprint-tools/platform-cli/internal/usage"
)

// Completion prints a shell completion script built from the registry.
// With --instructions it explains how to install it instead.
func Completion(deps Deps) dispatchers.CommandFunc {
	return func(_ context.Context, inv *dispatchers.Invocation) (int, error) {
		return completion(inv, deps)
	}
}

func completion(inv *dispatchers.Invocation, deps Deps) (int, error) {
	shell := completions.RunningShell(deps.Getenv)
	if len(inv.Args) > 0 {
		parsed, err := completions.ParseShell(inv.Args[0])
		if err != nil {
			return 2, usage.InvalidArgument("Unsupported shell %q (use bash, zsh, or fish).", inv.Args[0])
		}
		shell = parsed
	}

	if inv.Flags.Has("--instructions") {
		printInstructions(inv.Stdout, shell, deps)
		return 0, nil
	}

	commands := completions.ExtractCommands(inv.Registry)
	globals := completions.ExtractFlags(deps.GlobalFlags)
	if err := completions.PrintCompletions(inv.Stdout, shell, deps.Executable, commands, globals); err != nil {
		return 1, err
	}
	return 0, nil
}

func printInstructions(out domain.Output, shell completions.Shell, deps Deps) {
	home, _ := deps.UserHomeDir()
	evalLine := completions.SourceInstructions(shell, deps.Executable)
	rcFile := completions.RcFile(shell)
	autoPath := completions.AutoInstallPath(shell, home, deps.Executable)

	out.Writeln("To enable completions, choose one of the following:", domain.VerbosityNormal)
	out.Writeln("", domain.VerbosityNormal)

	optionNum := 1
	if autoPath != "" {
		out.Writeln(fmt.Sprintf("%d. Write to auto-load directory:", optionNum), domain.VerbosityNormal)
		out.Writeln(fmt.Sprintf("   <info>%s completion %s > %s</info>", deps.Executable, shell, autoPath), domain.VerbosityNormal)
		out.Writeln("", domain.VerbosityNormal)
		optionNum++
	}

	out.Writeln(fmt.Sprintf("%d. Add to %s:", optionNum, rcFile), domain.VerbosityNormal)
	out.Writeln(fmt.Sprintf("   <info>%s</info>", evalLine), domain.VerbosityNormal)
	out.Writeln("", domain.VerbosityNormal)
	out.Writeln("Then restart your shell or run: exec $SHELL", domain.VerbosityNormal)
}
