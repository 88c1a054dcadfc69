package actions

import (
	"context"
	"fmt"
	"strings"

	"github.com/footprint-tools/platform-cli/internal/dispatchers"
	"github.com/footprint-tools/platform-cli/internal/domain"
	"github.com/footprint-tools/platform-cli/internal/usage"
)

// Multi runs several command lines in one process. Each argument is one
// command line, e.g. "environment:list -p abc". The exit code is the
// highest one seen.
func Multi(deps Deps) dispatchers.CommandFunc {
	return func(ctx context.Context, inv *dispatchers.Invocation) (int, error) {
		return runMulti(ctx, inv, deps)
	}
}

func runMulti(ctx context.Context, inv *dispatchers.Invocation, deps Deps) (int, error) {
	lines := make([][]string, 0, len(inv.Args))
	for _, arg := range inv.Args {
		fields := strings.Fields(arg)
		if len(fields) == 0 {
			return 1, usage.InvalidArgument("Empty command line given to %s.", inv.Name)
		}
		if fields[0] == inv.Name {
			return 1, usage.InvalidArgument("The %s command cannot run itself.", inv.Name)
		}
		lines = append(lines, fields)
	}

	keepGoing := inv.Flags.Has("--continue")
	inv.Runner.SetRunningViaMulti(true)
	defer inv.Runner.SetRunningViaMulti(false)

	highest := 0
	for _, fields := range lines {
		if err := ctx.Err(); err != nil {
			return max(highest, 1), err
		}
		inv.Stderr.Writeln(fmt.Sprintf("<comment>Running: %s %s</comment>", deps.Executable, strings.Join(fields, " ")), domain.VerbosityVerbose)

		code := inv.Runner.Run(ctx, fields[0], fields[1:], inv.Options)
		highest = max(highest, code)
		if code != 0 && !keepGoing {
			break
		}
	}
	return highest, nil
}
