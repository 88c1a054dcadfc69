package dispatchers

import (
	"context"

	"github.com/footprint-tools/platform-cli/internal/domain"
	"github.com/footprint-tools/platform-cli/internal/log"
	"github.com/footprint-tools/platform-cli/internal/render"
	"github.com/footprint-tools/platform-cli/internal/usage"
)

const defaultSuggestionsCount = 3

// Config holds the collaborators of a Dispatcher.
type Config struct {
	Registry    *Registry
	GlobalFlags []FlagDescriptor
	Executable  string
	Stdout      domain.Output
	Stderr      domain.Output
	Logger      domain.Logger
}

// Dispatcher resolves a command, runs it and reports its failure. It keeps
// the command being run so errors can be attributed to it.
type Dispatcher struct {
	registry        *Registry
	globalFlags     []FlagDescriptor
	renderer        *render.Renderer
	stdout          domain.Output
	stderr          domain.Output
	logger          domain.Logger
	current         *Descriptor
	runningViaMulti bool
}

func New(cfg Config) *Dispatcher {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NopLogger{}
	}
	return &Dispatcher{
		registry:    cfg.Registry,
		globalFlags: cfg.GlobalFlags,
		renderer:    &render.Renderer{Executable: cfg.Executable},
		stdout:      cfg.Stdout,
		stderr:      cfg.Stderr,
		logger:      logger,
	}
}

// Current returns the command of the latest dispatch, or nil when it never
// got past lookup.
func (d *Dispatcher) Current() *Descriptor {
	return d.current
}

// SetRunningViaMulti records that commands are being run as a batch.
func (d *Dispatcher) SetRunningViaMulti(v bool) {
	d.runningViaMulti = v
}

// Run executes the named command with args, which are everything after
// the command name. It returns the process exit code.
func (d *Dispatcher) Run(ctx context.Context, name string, args []string, opts domain.GlobalOptions) int {
	d.current = nil

	desc, ok := d.registry.Lookup(name)
	if !ok {
		suggestions := FindSimilarCommands(name, d.registry.Names(), defaultSuggestionsCount)
		return d.Fail(usage.CommandNotFound(name, suggestions...), opts)
	}
	d.current = desc
	d.logger.Debug("dispatching %s", desc.Name)

	if m, ok := desc.Command.(MultiAware); ok {
		m.SetRunningViaMulti(d.runningViaMulti)
	}
	desc.Synopsis()

	positional, flags, err := splitArgs(args, desc.Flags, d.globalFlags)
	if err != nil {
		return d.Fail(err, opts)
	}
	if err := validateArgs(desc.Args, positional); err != nil {
		return d.Fail(err, opts)
	}

	code, err := desc.Command.Run(ctx, &Invocation{
		Name:     desc.Name,
		Args:     positional,
		Flags:    NewParsedFlags(flags),
		Options:  opts,
		Stdout:   d.stdout,
		Stderr:   d.stderr,
		Logger:   d.logger,
		Registry: d.registry,
		Runner:   d,
	})
	if err != nil {
		return d.Fail(err, opts)
	}
	return code
}

// Fail renders err on stderr, attributed to the current command, and
// returns the exit code it maps to.
func (d *Dispatcher) Fail(err error, opts domain.GlobalOptions) int {
	var current *render.Current
	if d.current != nil {
		current = &render.Current{Name: d.current.Name, Synopsis: d.current.Synopsis()}
	}
	lines := d.renderer.Render(err, opts, current, d.stderr.Width(), d.stderr.Formatter())
	render.Write(d.stderr, lines)
	d.logger.Debug("command failed: %v", err)
	return usage.ExitCodeOf(err)
}

// Verify Dispatcher implements Runner
var _ Runner = (*Dispatcher)(nil)
