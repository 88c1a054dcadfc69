package actions

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/platform-cli/internal/dispatchers"
	"github.com/footprint-tools/platform-cli/internal/domain"
	"github.com/footprint-tools/platform-cli/internal/help"
	"github.com/footprint-tools/platform-cli/internal/log"
	"github.com/footprint-tools/platform-cli/internal/ui"
)

type fakeInfo struct{}

func (fakeInfo) Name() string              { return "Platform.sh CLI" }
func (fakeInfo) Version() string           { return "4.1.0" }
func (fakeInfo) IsWrapped() bool           { return true }
func (fakeInfo) MarkUnwrappedLegacy() bool { return true }

func noop(context.Context, *dispatchers.Invocation) (int, error) { return 0, nil }

func newTestDeps() Deps {
	globals := help.GlobalFlagSet("PLATFORMSH_CLI_")
	return Deps{
		Composer:    help.NewComposer(fakeInfo{}, globals),
		AppName:     "Platform.sh CLI",
		Executable:  "platform",
		GlobalFlags: help.FlagDescriptors(globals),
		Getenv:      func(string) string { return "" },
		UserHomeDir: func() (string, error) { return "/home/user", nil },
	}.WithDefaults()
}

// newTestRegistry registers, in this order: welcome (hidden),
// environment:list, help, project:list, environment:info, list, winky
// (hidden).
func newTestRegistry(t *testing.T) *dispatchers.Registry {
	t.Helper()
	reg := dispatchers.NewRegistry()
	for _, d := range []*dispatchers.Descriptor{
		{Name: "welcome", Summary: "Welcome", Hidden: true},
		{
			Name:    "environment:list",
			Aliases: []string{"environments", "env"},
			Summary: "Get a list of environments",
			Flags: []dispatchers.FlagDescriptor{
				{Names: []string{"--project", "-p"}, ValueHint: "project", Description: "The project ID or URL"},
			},
		},
		{Name: "help", Summary: "Displays help for a command", Args: []dispatchers.ArgSpec{{Name: "command_name"}}},
		{Name: "project:list", Aliases: []string{"projects"}, Summary: "Get a list of all active projects"},
		{Name: "environment:info", Summary: "Read or set properties for an environment"},
		{Name: "list", Summary: "Lists commands"},
		{Name: "winky", Summary: "Wink", Hidden: true},
	} {
		d.Command = dispatchers.CommandFunc(noop)
		require.NoError(t, reg.Register(d))
	}
	return reg
}

type testInvocation struct {
	inv    *dispatchers.Invocation
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newInvocation(t *testing.T, name string, args []string, flags ...string) *testInvocation {
	t.Helper()
	var stdout, stderr bytes.Buffer
	out := ui.NewOutput(&stdout, ui.WithPagerDisabled())
	out.ApplyAnsi(domain.AnsiOff)
	errOut := ui.NewOutput(&stderr, ui.WithPagerDisabled())
	errOut.ApplyAnsi(domain.AnsiOff)

	return &testInvocation{
		inv: &dispatchers.Invocation{
			Name:     name,
			Args:     args,
			Flags:    dispatchers.NewParsedFlags(flags),
			Options:  domain.GlobalOptions{Interactive: true},
			Stdout:   out,
			Stderr:   errOut,
			Logger:   log.NopLogger{},
			Registry: newTestRegistry(t),
		},
		stdout: &stdout,
		stderr: &stderr,
	}
}
