// Package config loads the process-wide runtime configuration.
//
// Defaults are embedded from config.yaml. A user file in the home
// directory may override any key, and a few environment variables are
// consulted on top. The result is read-only after Load returns.
package config

import (
	_ "embed"
	"errors"
	"strings"
)

//go:embed config.yaml
var defaultConfig []byte

// Version is set at build time via ldflags and wins over the embedded
// version when non-empty.
// Example: go build -ldflags "-X github.com/footprint-tools/platform-cli/internal/config.Version=4.1.0"
var Version = ""

// RuntimeConfig holds the application identity and startup settings.
type RuntimeConfig struct {
	Application Application       `yaml:"application"`
	Styles      map[string]string `yaml:"styles"`
	API         API               `yaml:"api"`

	wrapped  bool
	timezone string
}

// Application describes the binary.
type Application struct {
	Name                string `yaml:"name"`
	Slug                string `yaml:"slug"`
	Executable          string `yaml:"executable"`
	EnvPrefix           string `yaml:"env_prefix"`
	UserConfigDir       string `yaml:"user_config_dir"`
	Version             string `yaml:"version"`
	MarkUnwrappedLegacy bool   `yaml:"mark_unwrapped_legacy"`
	Timezone            string `yaml:"timezone"`
}

// API holds settings handed to the API client collaborator.
type API struct {
	BaseURL string `yaml:"base_url"`
}

// Name returns the application name.
func (c *RuntimeConfig) Name() string { return c.Application.Name }

// Version returns the application version.
func (c *RuntimeConfig) Version() string { return c.Application.Version }

// Executable returns the executable name used in help hints.
func (c *RuntimeConfig) Executable() string { return c.Application.Executable }

// EnvPrefix returns the prefix for application-specific environment
// variables, e.g. "PLATFORMSH_CLI_".
func (c *RuntimeConfig) EnvPrefix() string { return c.Application.EnvPrefix }

// IsWrapped reports whether the binary runs under a wrapper that set
// <PREFIX>WRAPPED.
func (c *RuntimeConfig) IsWrapped() bool { return c.wrapped }

// MarkUnwrappedLegacy reports whether an unwrapped binary should call
// itself legacy in its version banner.
func (c *RuntimeConfig) MarkUnwrappedLegacy() bool { return c.Application.MarkUnwrappedLegacy }

// Timezone returns the configured or OS-derived timezone name.
func (c *RuntimeConfig) Timezone() string { return c.timezone }

func (c *RuntimeConfig) validate() error {
	var missing []string
	if c.Application.Name == "" {
		missing = append(missing, "application.name")
	}
	if c.Application.Executable == "" {
		missing = append(missing, "application.executable")
	}
	if c.Application.EnvPrefix == "" {
		missing = append(missing, "application.env_prefix")
	}
	if c.Application.Version == "" {
		missing = append(missing, "application.version")
	}
	if len(missing) > 0 {
		return errors.New("missing required keys: " + strings.Join(missing, ", "))
	}
	return nil
}
