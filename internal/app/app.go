// Package app wires the runtime together: configuration, global options,
// outputs, diagnostics, the command registry and the dispatcher.
package app

import (
	"context"
	"io"
	"os"

	"github.com/footprint-tools/platform-cli/internal/actions"
	"github.com/footprint-tools/platform-cli/internal/cli"
	"github.com/footprint-tools/platform-cli/internal/config"
	"github.com/footprint-tools/platform-cli/internal/dispatchers"
	"github.com/footprint-tools/platform-cli/internal/domain"
	"github.com/footprint-tools/platform-cli/internal/environment"
	"github.com/footprint-tools/platform-cli/internal/help"
	"github.com/footprint-tools/platform-cli/internal/log"
	"github.com/footprint-tools/platform-cli/internal/paths"
	"github.com/footprint-tools/platform-cli/internal/render"
	"github.com/footprint-tools/platform-cli/internal/ui"
	"github.com/footprint-tools/platform-cli/internal/ui/style"
	"github.com/footprint-tools/platform-cli/internal/usage"
)

// Options configures the application factory. Zero values mean the real
// process: os.Getenv, os.Stdout and so on.
type Options struct {
	// Args are the command-line arguments without the program name.
	Args []string

	Getenv          func(string) string
	Setenv          func(key, value string) error
	StdinIsTerminal func() bool
	Stdout          io.Writer
	Stderr          io.Writer

	// Source overrides where configuration is read from.
	Source *config.Source

	// API is the platform API client. Catalog commands fail without one.
	API domain.APIClient

	// Invocation is the diagnostics id of this run; generated when empty.
	Invocation string
}

func (o Options) withDefaults() Options {
	if o.Getenv == nil {
		o.Getenv = os.Getenv
	}
	if o.Setenv == nil {
		o.Setenv = os.Setenv
	}
	if o.StdinIsTerminal == nil {
		o.StdinIsTerminal = environment.StdinIsTerminal
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	return o
}

// Application is one configured run of the CLI.
type Application struct {
	Config     *config.RuntimeConfig
	Options    domain.GlobalOptions
	Stdout     *ui.Output
	Stderr     *ui.Output
	Logger     *log.Logger
	Composer   *help.Composer
	Registry   *dispatchers.Registry
	Dispatcher *dispatchers.Dispatcher

	args []string
}

// New loads the configuration, resolves the global options and builds the
// registry. The returned error is a configuration error; see
// ReportStartupError.
func New(opts Options) (*Application, error) {
	opts = opts.withDefaults()

	src := config.OSSource()
	if opts.Source != nil {
		src = *opts.Source
	}
	src.Getenv = opts.Getenv
	cfg, err := config.Load(src)
	if err != nil {
		return nil, err
	}

	resolver := &environment.Resolver{
		Prefix:          cfg.EnvPrefix(),
		Getenv:          opts.Getenv,
		Setenv:          opts.Setenv,
		StdinIsTerminal: opts.StdinIsTerminal,
	}
	globalOpts := resolver.Resolve(opts.Args)

	palette := style.DefaultPalette().Merge(cfg.Styles)
	stdout := ui.NewOutput(opts.Stdout, ui.WithPalette(palette), ui.WithEnvGetter(opts.Getenv))
	stderr := ui.NewOutput(opts.Stderr, ui.WithPalette(palette), ui.WithEnvGetter(opts.Getenv))
	for _, out := range []*ui.Output{stdout, stderr} {
		out.ApplyAnsi(globalOpts.Ansi)
		out.SetVerbosity(globalOpts.Verbosity)
		if !globalOpts.Interactive {
			out.DisablePager()
		}
	}

	logger := log.New(opts.Stderr, log.Options{
		NoColor:    !stderr.Decorated(),
		Invocation: opts.Invocation,
	})
	resolver.Apply(globalOpts, logger)
	if level, deprecations := logger.Threshold(); level != log.LevelOff {
		logger.Debug("diagnostics threshold %s, deprecations reported: %t", level, deprecations)
	}
	for _, notice := range globalOpts.Notices {
		stderr.Writeln(notice, domain.VerbosityQuiet)
	}

	if err := config.ApplyTimezone(cfg.Timezone()); err != nil {
		logger.Warn("keeping the system timezone: %v", err)
	}

	globals := help.GlobalFlagSet(cfg.EnvPrefix())
	composer := help.NewComposer(cfg, globals)
	globalFlags := help.FlagDescriptors(globals)

	api := opts.API
	if api == nil {
		api = actions.UnavailableAPI{BaseURL: cfg.API.BaseURL}
	}
	registry, err := cli.BuildRegistry(actions.Deps{
		Composer:    composer,
		AppName:     cfg.Name(),
		Executable:  cfg.Executable(),
		GlobalFlags: globalFlags,
		API:         api,
		CacheDir:    paths.CacheDir(cfg.Application.Slug),
		Getenv:      opts.Getenv,
	}.WithDefaults())
	if err != nil {
		return nil, err
	}

	logger.Debug("starting %s %s", cfg.Name(), cfg.Version())
	return &Application{
		Config:   cfg,
		Options:  globalOpts,
		Stdout:   stdout,
		Stderr:   stderr,
		Logger:   logger,
		Composer: composer,
		Registry: registry,
		Dispatcher: dispatchers.New(dispatchers.Config{
			Registry:    registry,
			GlobalFlags: globalFlags,
			Executable:  cfg.Executable(),
			Stdout:      stdout,
			Stderr:      stderr,
			Logger:      logger,
		}),
		args: opts.Args,
	}, nil
}

// Run dispatches the command named in the arguments and returns the exit
// code. --version prints the banner and --help shows the command's help
// instead of running it; without a command that is the default command.
func (a *Application) Run(ctx context.Context) int {
	if environment.HasFlag(a.args, "--version", "-V") {
		a.Stdout.Writeln(a.Composer.LongVersion(), domain.VerbosityNormal)
		return 0
	}

	name, rest := splitCommand(a.args)
	if environment.HasFlag(a.args, "--help", "-h") {
		if name == "" {
			name = dispatchers.DefaultCommand
		}
		name, rest = "help", []string{name}
	}
	return a.Dispatcher.Run(ctx, name, rest, a.Options)
}

// Close releases the diagnostics logger.
func (a *Application) Close() error {
	return a.Logger.Close()
}

// splitCommand takes the first argument that is not an option as the
// command name. Everything else is kept in order.
func splitCommand(args []string) (string, []string) {
	for i, a := range args {
		if a == "--" {
			break
		}
		if len(a) > 0 && a[0] == '-' {
			continue
		}
		rest := make([]string, 0, len(args)-1)
		rest = append(rest, args[:i]...)
		return a, append(rest, args[i+1:]...)
	}
	return "", args
}

// ReportStartupError prints an error that happened before the runtime was
// configured, such as a broken configuration file, and returns its exit
// code.
func ReportStartupError(w io.Writer, getenv func(string) string, err error) int {
	out := ui.NewOutput(w, ui.WithEnvGetter(getenv))
	out.ApplyAnsi(domain.AnsiAuto)
	r := &render.Renderer{}
	render.Write(out, r.Render(err, domain.GlobalOptions{}, nil, out.Width(), out.Formatter()))
	return usage.ExitCodeOf(err)
}
