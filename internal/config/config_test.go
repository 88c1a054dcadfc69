package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/platform-cli/internal/usage"
)

func fakeSource(env map[string]string, files map[string]string, link string) Source {
	return Source{
		Getenv: func(k string) string { return env[k] },
		ReadFile: func(path string) ([]byte, error) {
			if data, ok := files[path]; ok {
				return []byte(data), nil
			}
			return nil, fs.ErrNotExist
		},
		Readlink: func(string) (string, error) {
			if link == "" {
				return "", fs.ErrNotExist
			}
			return link, nil
		},
	}
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(defaultConfig, nil)

	require.NoError(t, err)
	require.Equal(t, "Platform.sh CLI", cfg.Name())
	require.Equal(t, "platform", cfg.Executable())
	require.Equal(t, "PLATFORMSH_CLI_", cfg.EnvPrefix())
	require.True(t, cfg.MarkUnwrappedLegacy())
	require.Equal(t, "fg=green", cfg.Styles["info"])
	require.NoError(t, cfg.validate())
}

func TestParse_OverridesMerge(t *testing.T) {
	cfg, err := Parse(defaultConfig, []byte("application:\n  name: Upsun CLI\nstyles:\n  info: fg=cyan\n"))

	require.NoError(t, err)
	require.Equal(t, "Upsun CLI", cfg.Name())
	require.Equal(t, "platform", cfg.Executable(), "keys absent from overrides keep defaults")
	require.Equal(t, "fg=cyan", cfg.Styles["info"])
	require.Equal(t, "fg=yellow", cfg.Styles["comment"])
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("application: [unclosed"), nil)

	require.Error(t, err)
	var ue *usage.Error
	require.True(t, errors.As(err, &ue))
	require.Equal(t, usage.ErrConfig, ue.Kind)
}

func TestLoad_UserFileAndEnvironment(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	userFile := filepath.Join(home, ".platformsh", "config.yaml")

	src := fakeSource(
		map[string]string{"PLATFORMSH_CLI_WRAPPED": "1", "TZ": "Europe/Paris"},
		map[string]string{userFile: "application:\n  timezone: Asia/Tokyo\n"},
		"",
	)

	cfg, err := Load(src)

	require.NoError(t, err)
	require.True(t, cfg.IsWrapped())
	require.Equal(t, "Asia/Tokyo", cfg.Timezone(), "configured timezone wins over the OS")
}

func TestLoad_TimezoneEnvironmentOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(fakeSource(map[string]string{"PLATFORMSH_CLI_TIMEZONE": "Europe/Lisbon"}, nil, ""))

	require.NoError(t, err)
	require.Equal(t, "Europe/Lisbon", cfg.Timezone())
}

func TestLoad_BrokenUserFileIsFatal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	userFile := filepath.Join(home, ".platformsh", "config.yaml")

	_, err := Load(fakeSource(nil, map[string]string{userFile: "application: ["}, ""))

	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to parse user configuration file")
}

func TestLoad_VersionFromBuild(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	old := Version
	Version = "9.9.9"
	t.Cleanup(func() { Version = old })

	cfg, err := Load(fakeSource(nil, nil, ""))

	require.NoError(t, err)
	require.Equal(t, "9.9.9", cfg.Version())
	require.False(t, cfg.IsWrapped())
}

func TestValidate_MissingKeys(t *testing.T) {
	cfg := &RuntimeConfig{Application: Application{Name: "x"}}

	err := cfg.validate()

	require.Error(t, err)
	require.Contains(t, err.Error(), "application.executable")
	require.Contains(t, err.Error(), "application.env_prefix")
	require.Contains(t, err.Error(), "application.version")
	require.NotContains(t, err.Error(), "application.name")
}

func TestSystemTimezone(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		files map[string]string
		link  string
		want  string
	}{
		{"TZ variable", map[string]string{"TZ": "America/New_York"}, nil, "", "America/New_York"},
		{"TZ with colon", map[string]string{"TZ": ":Europe/Berlin"}, nil, "", "Europe/Berlin"},
		{"localtime symlink", nil, nil, "/usr/share/zoneinfo/Europe/London", "Europe/London"},
		{"timezone file", nil, map[string]string{"/etc/timezone": "Australia/Sydney\n"}, "", "Australia/Sydney"},
		{"fallback", nil, nil, "", "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, systemTimezone(fakeSource(tt.env, tt.files, tt.link)))
		})
	}
}

func TestApplyTimezone(t *testing.T) {
	old := time.Local
	t.Cleanup(func() { time.Local = old })

	require.NoError(t, ApplyTimezone("UTC"))
	require.Equal(t, "UTC", time.Local.String())

	err := ApplyTimezone("Not/AZone")
	require.Error(t, err)
	require.Equal(t, "UTC", time.Local.String(), "a bad zone leaves the previous one")
}
