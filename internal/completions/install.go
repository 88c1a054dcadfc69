package completions

import (
	"fmt"
	"io"
)

// PrintCompletions writes the completion script for the given shell to w
func PrintCompletions(w io.Writer, shell Shell, bin string, commands []CommandInfo, globals []FlagInfo) error {
	script := generateScript(shell, bin, commands, globals)
	if script == "" {
		return fmt.Errorf("unsupported shell: %s", shell)
	}

	_, err := fmt.Fprint(w, script)
	return err
}

func generateScript(shell Shell, bin string, commands []CommandInfo, globals []FlagInfo) string {
	switch shell {
	case ShellBash:
		return GenerateBash(bin, commands, globals)
	case ShellZsh:
		return GenerateZsh(bin, commands, globals)
	case ShellFish:
		return GenerateFish(bin, commands, globals)
	default:
		return ""
	}
}
