// Package environment derives the global options of one invocation from
// the raw argument list, the process environment and the terminal.
package environment

import (
	"os"
	"strconv"

	"github.com/mattn/go-isatty"

	"github.com/footprint-tools/platform-cli/internal/domain"
	"github.com/footprint-tools/platform-cli/internal/log"
)

// Variables outside the application prefix.
const (
	EnvCliColorForce        = "CLICOLOR_FORCE"
	EnvNoColor              = "NO_COLOR"
	EnvTerm                 = "TERM"
	EnvShellVerbosity       = "SHELL_VERBOSITY"
	EnvShellInteractive     = "SHELL_INTERACTIVE"
	EnvCliDebug             = "CLI_DEBUG"
	EnvCliReportDeprecation = "CLI_REPORT_DEPRECATIONS"
)

// Resolver computes GlobalOptions. It never fails: unreadable or odd
// inputs fall back to the conservative default.
type Resolver struct {
	// Prefix is the application's environment prefix, e.g. "PLATFORMSH_CLI_".
	Prefix string
	Getenv func(string) string
	Setenv func(key, value string) error
	// StdinIsTerminal answers whether stdin is a terminal. A nil probe means
	// the question cannot be asked and stdin is assumed interactive.
	StdinIsTerminal func() bool
}

// NewResolver returns a resolver bound to the real process.
func NewResolver(prefix string) *Resolver {
	return &Resolver{
		Prefix:          prefix,
		Getenv:          os.Getenv,
		Setenv:          os.Setenv,
		StdinIsTerminal: StdinIsTerminal,
	}
}

// StdinIsTerminal reports whether os.Stdin is a terminal.
func StdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (r *Resolver) getenv(key string) string {
	if r.Getenv == nil {
		return ""
	}
	return r.Getenv(key)
}

// Resolve computes the options for args, which must not include the
// program name.
func (r *Resolver) Resolve(args []string) domain.GlobalOptions {
	in := scanArgs(args)
	opts := domain.GlobalOptions{
		Ansi:        r.resolveAnsi(in),
		Interactive: true,
	}

	if in.has("--yes", "-y", "--no-interaction", "--no") || r.getenv(r.Prefix+"NO_INTERACTION") != "" {
		opts.Interactive = false
	}
	if notice, ok := deprecatedNoShortcut(in); ok {
		opts.Interactive = false
		opts.Notices = append(opts.Notices, notice)
	}
	if opts.Interactive && r.StdinIsTerminal != nil && !r.StdinIsTerminal() && r.getenv(EnvShellInteractive) == "" {
		opts.Interactive = false
	}

	var quietFlag bool
	opts.Verbosity, quietFlag = r.resolveVerbosity(in)
	if quietFlag {
		opts.Interactive = false
	}

	opts.ReportDeprecations = r.getenv(EnvCliReportDeprecation) != "" || r.getenv(r.Prefix+"REPORT_DEPRECATIONS") != ""
	return opts
}

// resolveAnsi applies the colour rules in order; the first that matches
// decides.
func (r *Resolver) resolveAnsi(in argScan) domain.AnsiMode {
	switch {
	case r.getenv(EnvCliColorForce) == "1":
		return domain.AnsiOn
	case r.getenv(EnvNoColor) != "",
		r.getenv(EnvCliColorForce) == "0",
		r.getenv(EnvTerm) == "dumb",
		r.getenv(r.Prefix+"NO_COLOR") != "":
		return domain.AnsiOff
	case in.has("--ansi"):
		return domain.AnsiOn
	case in.has("--no-ansi"):
		return domain.AnsiOff
	default:
		return domain.AnsiAuto
	}
}

// resolveVerbosity also reports whether --quiet/-q decided the result;
// only the flag turns interaction off, not an inherited SHELL_VERBOSITY.
func (r *Resolver) resolveVerbosity(in argScan) (domain.Verbosity, bool) {
	v := domain.VerbosityNormal
	if n, err := strconv.Atoi(r.getenv(EnvShellVerbosity)); err == nil && n >= -1 && n <= 3 {
		v = domain.Verbosity(n)
	}

	switch {
	case in.has("-vvv") || r.getenv(EnvCliDebug) != "" || r.getenv(r.Prefix+"DEBUG") != "":
		v = domain.VerbosityDebug
	case in.has("-vv"):
		v = domain.VerbosityVeryVerbose
	case in.has("-v", "--verbose"):
		v = domain.VerbosityVerbose
	case in.has("--quiet", "-q"):
		return domain.VerbosityQuiet, true
	}
	return v, false
}

// Apply performs the process-level side effects of opts: the verbosity is
// republished for child processes and the diagnostics logger threshold
// follows it.
func (r *Resolver) Apply(opts domain.GlobalOptions, logger *log.Logger) {
	if r.Setenv != nil {
		_ = r.Setenv(EnvShellVerbosity, strconv.Itoa(int(opts.Verbosity)))
	}
	level, deprecations := Threshold(opts)
	logger.SetThreshold(level, deprecations)
	reportDeprecatedUsage(opts, logger)
}

// Threshold maps options to a diagnostics threshold.
func Threshold(opts domain.GlobalOptions) (log.Level, bool) {
	switch {
	case opts.Verbosity == domain.VerbosityQuiet:
		return log.LevelOff, false
	case opts.Verbosity == domain.VerbosityNormal:
		return log.LevelError, false
	default:
		return log.LevelDebug, opts.IsDebug() && opts.ReportDeprecations
	}
}
