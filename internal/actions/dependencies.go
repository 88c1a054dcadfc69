// Package actions implements the commands built into the runtime itself,
// as opposed to the catalog commands that delegate to the API client.
package actions

import (
	"os"

	"github.com/footprint-tools/platform-cli/internal/dispatchers"
	"github.com/footprint-tools/platform-cli/internal/domain"
	"github.com/footprint-tools/platform-cli/internal/help"
)

// Deps carries what the built-in commands need from the application.
type Deps struct {
	Composer    *help.Composer
	AppName     string
	Executable  string
	GlobalFlags []dispatchers.FlagDescriptor
	API         domain.APIClient
	CacheDir    string
	RemoveAll   func(path string) error
	Stat        func(path string) (os.FileInfo, error)
	Getenv      func(string) string
	UserHomeDir func() (string, error)
}

// WithDefaults fills unset functions with their os package versions.
func (d Deps) WithDefaults() Deps {
	if d.RemoveAll == nil {
		d.RemoveAll = os.RemoveAll
	}
	if d.Stat == nil {
		d.Stat = os.Stat
	}
	if d.Getenv == nil {
		d.Getenv = os.Getenv
	}
	if d.UserHomeDir == nil {
		d.UserHomeDir = os.UserHomeDir
	}
	return d
}

// pager is implemented by outputs that can page long text.
type pager interface {
	Pager(content string)
}

func writeLong(out domain.Output, content string) {
	if p, ok := out.(pager); ok {
		p.Pager(content)
		return
	}
	out.Writeln(content, domain.VerbosityNormal)
}
