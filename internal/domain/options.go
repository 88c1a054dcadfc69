package domain

// Verbosity is the ordered output verbosity of one invocation.
type Verbosity int

const (
	VerbosityQuiet       Verbosity = -1
	VerbosityNormal      Verbosity = 0
	VerbosityVerbose     Verbosity = 1
	VerbosityVeryVerbose Verbosity = 2
	VerbosityDebug       Verbosity = 3
)

func (v Verbosity) String() string {
	switch v {
	case VerbosityQuiet:
		return "quiet"
	case VerbosityNormal:
		return "normal"
	case VerbosityVerbose:
		return "verbose"
	case VerbosityVeryVerbose:
		return "very-verbose"
	case VerbosityDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// AnsiMode is the tri-state colour decision.
type AnsiMode int

const (
	// AnsiAuto leaves the decision to the output stream's own detection.
	AnsiAuto AnsiMode = iota
	AnsiOn
	AnsiOff
)

func (m AnsiMode) String() string {
	switch m {
	case AnsiOn:
		return "on"
	case AnsiOff:
		return "off"
	default:
		return "auto"
	}
}

// GlobalOptions is computed once per invocation from flags and environment.
type GlobalOptions struct {
	Ansi        AnsiMode
	Interactive bool
	Verbosity   Verbosity

	// ReportDeprecations is true when deprecation diagnostics were requested
	// through the environment. They are only shown at debug verbosity.
	ReportDeprecations bool

	// Notices are side-channel warnings produced while resolving, written
	// to stderr before the command runs.
	Notices []string
}

// IsDebug reports whether debug verbosity is active.
func (o GlobalOptions) IsDebug() bool {
	return o.Verbosity >= VerbosityDebug
}
