package completions

import (
	"fmt"
	"path/filepath"
)

// SourceInstructions returns shell-specific instructions for loading completions
func SourceInstructions(shell Shell, bin string) string {
	switch shell {
	case ShellBash, ShellZsh:
		return fmt.Sprintf(`eval "$(%s completion %s)"`, bin, shell)
	case ShellFish:
		return fmt.Sprintf(`%s completion fish | source`, bin)
	default:
		return ""
	}
}

// RcFile returns the rc file path for the given shell
func RcFile(shell Shell) string {
	switch shell {
	case ShellBash:
		return "~/.bashrc"
	case ShellZsh:
		return "~/.zshrc"
	case ShellFish:
		return "~/.config/fish/config.fish"
	default:
		return ""
	}
}

// AutoInstallPath returns the path where completions are auto-loaded from,
// or "" when the shell has no such directory.
func AutoInstallPath(shell Shell, home, bin string) string {
	if home == "" {
		return ""
	}
	switch shell {
	case ShellFish:
		return filepath.Join(home, ".config", "fish", "completions", bin+".fish")
	case ShellBash:
		return filepath.Join(home, ".local", "share", "bash-completion", "completions", bin)
	default:
		return ""
	}
}
