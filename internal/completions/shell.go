package completions

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Shell is a supported completion target.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// Shells lists the supported shells.
var Shells = []Shell{ShellBash, ShellZsh, ShellFish}

// ParseShell accepts a shell name or a path to a shell binary.
func ParseShell(name string) (Shell, error) {
	base := strings.ToLower(filepath.Base(strings.TrimSpace(name)))
	for _, s := range Shells {
		if base == string(s) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unsupported shell: %s", name)
}

// RunningShell guesses the user's shell from $SHELL, falling back to bash.
func RunningShell(getenv func(string) string) Shell {
	if s, err := ParseShell(getenv("SHELL")); err == nil {
		return s
	}
	return ShellBash
}
