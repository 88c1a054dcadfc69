package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/footprint-tools/platform-cli/internal/paths"
	"github.com/footprint-tools/platform-cli/internal/usage"
)

// Source supplies what Load reads from the machine. Tests replace it.
type Source struct {
	Getenv   func(string) string
	ReadFile func(string) ([]byte, error)
	Readlink func(string) (string, error)
}

// OSSource reads from the real process environment and filesystem.
func OSSource() Source {
	return Source{
		Getenv:   os.Getenv,
		ReadFile: os.ReadFile,
		Readlink: os.Readlink,
	}
}

// Load builds the RuntimeConfig from the embedded defaults, the user's
// config file and the environment. Errors are fatal configuration errors.
func Load(src Source) (*RuntimeConfig, error) {
	cfg, err := Parse(defaultConfig, nil)
	if err != nil {
		return nil, err
	}

	if path, err := paths.UserConfigFile(cfg.Application.UserConfigDir); err == nil && src.ReadFile != nil {
		data, err := src.ReadFile(path)
		switch {
		case err == nil:
			if err := decodeInto(cfg, data); err != nil {
				return nil, usage.ConfigError(err, "Failed to parse user configuration file: %s", path)
			}
		case errors.Is(err, fs.ErrNotExist):
			// Missing user config is not an error
		default:
			return nil, usage.ConfigError(err, "Failed to read user configuration file: %s", path)
		}
	}

	finish(cfg, src)
	if err := cfg.validate(); err != nil {
		return nil, usage.ConfigError(err, "Invalid configuration")
	}
	return cfg, nil
}

// Parse decodes defaults and then overrides (which may be nil) without
// touching the environment. The result is not yet finished; Load applies
// environment-derived settings.
func Parse(defaults, overrides []byte) (*RuntimeConfig, error) {
	cfg := &RuntimeConfig{Styles: make(map[string]string)}
	if err := decodeInto(cfg, defaults); err != nil {
		return nil, usage.ConfigError(err, "Failed to parse default configuration")
	}
	if len(overrides) > 0 {
		if err := decodeInto(cfg, overrides); err != nil {
			return nil, usage.ConfigError(err, "Failed to parse configuration overrides")
		}
	}
	return cfg, nil
}

func decodeInto(cfg *RuntimeConfig, data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// finish applies build-time and environment settings.
func finish(cfg *RuntimeConfig, src Source) {
	if Version != "" {
		cfg.Application.Version = Version
	}
	getenv := src.Getenv
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	cfg.wrapped = getenv(cfg.Application.EnvPrefix+"WRAPPED") != ""
	cfg.timezone = cfg.Application.Timezone
	if tz := getenv(cfg.Application.EnvPrefix + "TIMEZONE"); tz != "" {
		cfg.timezone = tz
	}
	if cfg.timezone == "" {
		cfg.timezone = systemTimezone(src)
	}
}
