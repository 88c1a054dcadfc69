package environment

import (
	"slices"

	"github.com/footprint-tools/platform-cli/internal/domain"
)

// NoShortcutDeprecation is printed when -n is used for --no.
const NoShortcutDeprecation = "<options=reverse>DEPRECATED</> The -n flag (as a shortcut for --no) is deprecated. It will be removed or changed in a future version."

// deprecatedNoShortcut is the only place that knows about the old -n
// shortcut. It reports the notice to show when -n was given.
func deprecatedNoShortcut(in argScan) (string, bool) {
	if in.has("-n") {
		return NoShortcutDeprecation, true
	}
	return "", false
}

// reportDeprecatedUsage records deprecated invocations on the diagnostics
// logger, where they show only when deprecation reporting is on.
func reportDeprecatedUsage(opts domain.GlobalOptions, logger domain.Logger) {
	if slices.Contains(opts.Notices, NoShortcutDeprecation) {
		logger.Deprecated("-n was used as a shortcut for --no")
	}
}
