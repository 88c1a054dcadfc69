package usage

import (
	"fmt"
	"strings"
)

// CommandNotFound is returned when no registered command matches name.
// Suggestions are listed after the message when present.
func CommandNotFound(name string, suggestions ...string) *Error {
	msg := fmt.Sprintf("Command %q is not defined.", name)
	if len(suggestions) == 1 {
		msg += "\n\nDid you mean this?\n    " + suggestions[0]
	} else if len(suggestions) > 1 {
		msg += "\n\nDid you mean one of these?\n    " + strings.Join(suggestions, "\n    ")
	}
	return newError(ErrCommandNotFound, msg, nil)
}
