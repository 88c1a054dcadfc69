package completions

import (
	"bytes"
	"strings"
	"testing"

	"github.com/footprint-tools/platform-cli/internal/dispatchers"
)

func testGlobals() []FlagInfo {
	return ExtractFlags([]dispatchers.FlagDescriptor{
		{Names: []string{"--help", "-h"}, Description: "Display this help message"},
		{Names: []string{"--ansi"}, Description: "Force ANSI output", Hidden: true},
	})
}

func TestGenerateBash(t *testing.T) {
	commands := ExtractCommands(buildTestRegistry(t))
	script := GenerateBash("platform", commands, testGlobals())

	checks := []string{
		"_platform_completions()",
		"complete -F _platform_completions platform",
		"COMP_WORDBREAKS=${COMP_WORDBREAKS//:}",
		`opts="--help -h"`,
		"environment:list|environments|env)",
		`opts="$opts --project -p --pipe"`,
		`compgen -W "environment:list environments env list"`,
	}

	for _, check := range checks {
		if !strings.Contains(script, check) {
			t.Errorf("bash script should contain %q", check)
		}
	}

	if strings.Contains(script, "winky") || strings.Contains(script, "--secret") || strings.Contains(script, "--ansi") {
		t.Error("bash script should not offer hidden commands or flags")
	}

	if !strings.HasPrefix(script, "# platform bash completion script") {
		t.Error("bash script should start with comment header")
	}
}

func TestGenerateZsh(t *testing.T) {
	commands := ExtractCommands(buildTestRegistry(t))
	script := GenerateZsh("platform", commands, testGlobals())

	checks := []string{
		"# platform zsh completion script",
		"bashcompinit",
		"complete -F _platform_completions platform",
	}

	for _, check := range checks {
		if !strings.Contains(script, check) {
			t.Errorf("zsh script should contain %q", check)
		}
	}
}

func TestGenerateFish(t *testing.T) {
	commands := ExtractCommands(buildTestRegistry(t))
	script := GenerateFish("platform", commands, testGlobals())

	checks := []string{
		"complete -c platform -f",
		"complete -c platform -n '__fish_use_subcommand' -a 'env' -d 'Get a list of environments'",
		"complete -c platform -n '__fish_seen_subcommand_from environment:list environments env' -l project -s p -r -d 'The project ID or URL'",
		"complete -c platform -l help -s h -d 'Display this help message'",
	}

	for _, check := range checks {
		if !strings.Contains(script, check) {
			t.Errorf("fish script should contain %q", check)
		}
	}
}

func TestGenerateFish_QuotesDescriptions(t *testing.T) {
	commands := []CommandInfo{{Name: "self:install", Summary: "Install the CLI's config"}}
	script := GenerateFish("platform", commands, nil)

	if !strings.Contains(script, `-d 'Install the CLI\'s config'`) {
		t.Errorf("expected escaped quote, got:\n%s", script)
	}
}

func TestGenerateBash_EmptyRegistry(t *testing.T) {
	script := GenerateBash("platform", nil, nil)

	if !strings.Contains(script, "_platform_completions()") {
		t.Error("bash script should contain function definition even for empty registry")
	}
}

func TestGenerateBash_BinaryNameSanitized(t *testing.T) {
	script := GenerateBash("platform-dev", nil, nil)

	if !strings.Contains(script, "_platform_dev_completions()") {
		t.Error("function name should not contain dashes")
	}
	if !strings.Contains(script, "complete -F _platform_dev_completions platform-dev") {
		t.Error("complete line should use the real binary name")
	}
}

func TestPrintCompletions(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintCompletions(&buf, ShellFish, "platform", nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "# platform fish completion script") {
		t.Errorf("unexpected script %q", buf.String())
	}

	if err := PrintCompletions(&buf, Shell("tcsh"), "platform", nil, nil); err == nil {
		t.Error("expected error for unsupported shell")
	}
}
