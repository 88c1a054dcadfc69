package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) func(string) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("SHELL_VERBOSITY", "")
	env := map[string]string{"NO_COLOR": "1", "HOME": home}
	return func(k string) string { return env[k] }
}

func TestRun_Version(t *testing.T) {
	getenv := setup(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"--version"}, getenv, &stdout, &stderr)

	require.Equal(t, 0, code)
	require.Equal(t, "Platform.sh CLI (legacy) 4.0.0-dev\n", stdout.String())
	require.Empty(t, stderr.String())
}

func TestRun_UnknownCommand(t *testing.T) {
	getenv := setup(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"no-such-command"}, getenv, &stdout, &stderr)

	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), `Command "no-such-command" is not defined.`)
	require.Empty(t, stdout.String())
}

func TestRun_BrokenUserConfig(t *testing.T) {
	getenv := setup(t)
	dir := filepath.Join(os.Getenv("HOME"), ".platformsh")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("application: [unclosed"), 0o600))
	var stdout, stderr bytes.Buffer

	code := run([]string{"list"}, getenv, &stdout, &stderr)

	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "Failed to parse user configuration file")
	require.Empty(t, stdout.String())
}
