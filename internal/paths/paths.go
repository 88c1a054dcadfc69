package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const userConfigFileName = "config.yaml"

// UserConfigFile returns the path of the user's configuration overrides,
// e.g. ~/.platformsh/config.yaml for dirName ".platformsh".
func UserConfigFile(dirName string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, dirName, userConfigFileName), nil
}

// CacheDir returns the OS-appropriate cache directory for the application.
//   - macOS: ~/Library/Caches/<slug>
//   - Linux: $XDG_CACHE_HOME/<slug> or ~/.cache/<slug>
//   - Windows: %LOCALAPPDATA%\<slug>\cache
func CacheDir(slug string) string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), slug)
		}
		base = filepath.Join(home, "Library", "Caches")

	case "windows":
		base = os.Getenv("LOCALAPPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return filepath.Join(os.TempDir(), slug)
			}
			base = filepath.Join(home, "AppData", "Local")
		}
		return filepath.Join(base, slug, "cache")

	default:
		base = os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return filepath.Join(os.TempDir(), slug)
			}
			base = filepath.Join(home, ".cache")
		}
	}

	return filepath.Join(base, slug)
}
