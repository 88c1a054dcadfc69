package actions

import (
	"context"
	"fmt"
	"strings"

	"github.com/footprint-tools/platform-cli/internal/dispatchers"
	"github.com/footprint-tools/platform-cli/internal/domain"
	"github.com/footprint-tools/platform-cli/internal/usage"
)

// List prints the registered commands grouped by namespace, keeping
// registration order within each group.
func List(deps Deps) dispatchers.CommandFunc {
	return func(_ context.Context, inv *dispatchers.Invocation) (int, error) {
		return listCommands(inv, deps)
	}
}

type namespace struct {
	name     string
	commands []*dispatchers.Descriptor
}

func listCommands(inv *dispatchers.Invocation, deps Deps) (int, error) {
	showAll := inv.Flags.Has("--all")
	filter := ""
	if len(inv.Args) > 0 {
		filter = inv.Args[0]
	}

	visible := filterCommands(inv.Registry.All(), showAll, filter)
	if filter != "" && len(visible) == 0 {
		return 1, usage.InvalidArgument("There are no commands defined in the %q namespace.", filter)
	}

	if inv.Flags.Has("--raw") {
		for _, d := range visible {
			inv.Stdout.WritelnRaw(d.Name, domain.VerbosityQuiet)
		}
		return 0, nil
	}

	groups := groupCommands(visible)

	var b strings.Builder
	b.WriteString(deps.Composer.Help())
	b.WriteString("\n\n<comment>Available commands:</comment>\n")

	width := 0
	for _, g := range groups {
		for _, d := range g.commands {
			width = max(width, len(commandLabel(d)))
		}
	}
	for _, g := range groups {
		if g.name != "" {
			fmt.Fprintf(&b, "<comment>%s</comment>\n", g.name)
		}
		for _, d := range g.commands {
			fmt.Fprintf(&b, "  <info>%-*s</info> %s\n", width, commandLabel(d), d.Summary)
		}
	}
	writeLong(inv.Stdout, b.String())
	return 0, nil
}

func filterCommands(all []*dispatchers.Descriptor, showAll bool, filter string) []*dispatchers.Descriptor {
	var out []*dispatchers.Descriptor
	for _, d := range all {
		if d.Hidden && !showAll {
			continue
		}
		if filter != "" && namespaceOf(d.Name) != filter {
			continue
		}
		out = append(out, d)
	}
	return out
}

func namespaceOf(name string) string {
	ns, _, found := strings.Cut(name, ":")
	if !found {
		return ""
	}
	return ns
}

// groupCommands splits commands by the part of their name before the first
// colon. Commands without a namespace come first.
func groupCommands(commands []*dispatchers.Descriptor) []namespace {
	root := namespace{}
	var named []namespace
	index := map[string]int{}

	for _, d := range commands {
		ns := namespaceOf(d.Name)
		if ns == "" {
			root.commands = append(root.commands, d)
			continue
		}
		i, ok := index[ns]
		if !ok {
			i = len(named)
			index[ns] = i
			named = append(named, namespace{name: ns})
		}
		named[i].commands = append(named[i].commands, d)
	}

	if len(root.commands) == 0 {
		return named
	}
	return append([]namespace{root}, named...)
}

func commandLabel(d *dispatchers.Descriptor) string {
	if len(d.Aliases) == 0 {
		return d.Name
	}
	return d.Name + " (" + strings.Join(d.Aliases, ", ") + ")"
}
