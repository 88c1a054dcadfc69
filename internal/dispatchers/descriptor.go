package dispatchers

import (
	"context"
	"strings"

	"github.com/footprint-tools/platform-cli/internal/domain"
)

// Command is the entry point of a registered command.
type Command interface {
	Run(ctx context.Context, inv *Invocation) (int, error)
}

// CommandFunc adapts a function to Command.
type CommandFunc func(ctx context.Context, inv *Invocation) (int, error)

func (f CommandFunc) Run(ctx context.Context, inv *Invocation) (int, error) {
	return f(ctx, inv)
}

// MultiAware is implemented by commands that behave differently when run
// as one of several commands in a single process.
type MultiAware interface {
	SetRunningViaMulti(bool)
}

// Runner dispatches a command by name. The Dispatcher implements it and
// passes itself to commands that run other commands.
type Runner interface {
	Run(ctx context.Context, name string, args []string, opts domain.GlobalOptions) int
	SetRunningViaMulti(bool)
}

// Invocation is everything a command receives for one run.
type Invocation struct {
	Name     string
	Args     []string
	Flags    *ParsedFlags
	Options  domain.GlobalOptions
	Stdout   domain.Output
	Stderr   domain.Output
	Logger   domain.Logger
	Registry *Registry
	Runner   Runner
}

type ArgSpec struct {
	Name        string
	Description string
	Required    bool
	// Array marks a final argument that takes all remaining values.
	Array bool
}

type FlagDescriptor struct {
	// Names holds the long name first, then any shortcut.
	Names []string
	// ValueHint is non-empty for options that take a value.
	ValueHint   string
	Description string
	Hidden      bool
}

// TakesValue reports whether the option requires a value.
func (f FlagDescriptor) TakesValue() bool {
	return f.ValueHint != ""
}

// Descriptor is the static metadata of one command.
type Descriptor struct {
	Name        string
	Aliases     []string
	Summary     string
	Description string
	Hidden      bool
	Args        []ArgSpec
	Flags       []FlagDescriptor
	Command     Command

	synopsis string
}

// Synopsis returns the usage line built from the command's own arguments
// and options. It is computed once and reused.
func (d *Descriptor) Synopsis() string {
	if d.synopsis != "" {
		return d.synopsis
	}
	var b strings.Builder
	b.WriteString(d.Name)
	for _, f := range d.Flags {
		if f.Hidden {
			continue
		}
		b.WriteString(" [")
		b.WriteString(strings.Join(shortFirst(f.Names), "|"))
		if f.TakesValue() {
			b.WriteString(" ")
			b.WriteString(strings.ToUpper(f.ValueHint))
		}
		b.WriteString("]")
	}
	if len(d.Args) > 0 {
		b.WriteString(" [--]")
	}
	for _, a := range d.Args {
		arg := "<" + a.Name + ">"
		if a.Array {
			arg += "..."
		}
		if !a.Required {
			arg = "[" + arg + "]"
		}
		b.WriteString(" ")
		b.WriteString(arg)
	}
	d.synopsis = b.String()
	return d.synopsis
}

// shortFirst orders "-e" before "--environment" the way usage lines show
// them.
func shortFirst(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !strings.HasPrefix(n, "--") {
			out = append(out, n)
		}
	}
	for _, n := range names {
		if strings.HasPrefix(n, "--") {
			out = append(out, n)
		}
	}
	return out
}
