package actions

import (
	"context"
	"errors"
	"os"

	"github.com/footprint-tools/platform-cli/internal/dispatchers"
	"github.com/footprint-tools/platform-cli/internal/domain"
	"github.com/footprint-tools/platform-cli/internal/errtrace"
)

// ClearCache removes the application's cache directory.
func ClearCache(deps Deps) dispatchers.CommandFunc {
	return func(_ context.Context, inv *dispatchers.Invocation) (int, error) {
		return clearCache(inv, deps)
	}
}

func clearCache(inv *dispatchers.Invocation, deps Deps) (int, error) {
	if deps.CacheDir == "" {
		return 1, errtrace.New("No cache directory is configured")
	}
	if _, err := deps.Stat(deps.CacheDir); errors.Is(err, os.ErrNotExist) {
		inv.Logger.Debug("cache directory %s does not exist", deps.CacheDir)
	} else if err := deps.RemoveAll(deps.CacheDir); err != nil {
		return 1, errtrace.Wrap(err, "Failed to clear the cache")
	}
	inv.Stderr.Writeln("All caches have been cleared", domain.VerbosityNormal)
	return 0, nil
}
