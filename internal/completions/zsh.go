package completions

import (
	"fmt"
	"strings"
)

// GenerateZsh returns a zsh completion script. It loads the bash script
// through bashcompinit.
func GenerateZsh(bin string, commands []CommandInfo, globals []FlagInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s zsh completion script\n", bin)
	b.WriteString("autoload -U +X compinit && compinit\n")
	b.WriteString("autoload -U +X bashcompinit && bashcompinit\n\n")
	writeBashBody(&b, bin, commands, globals)
	return b.String()
}
