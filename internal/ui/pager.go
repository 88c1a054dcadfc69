package ui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"

	"github.com/footprint-tools/platform-cli/internal/domain"
)

// Pager displays formatted content through a pager if appropriate.
//
// Precedence:
//  1. pager disabled (non-interactive session) → direct output
//  2. output not a TTY → direct output
//  3. $PAGER environment variable, "cat" bypasses
//  4. Default: "less -FRSX"
func (o *Output) Pager(content string) {
	if o.verbosity < domain.VerbosityNormal {
		return
	}
	content = o.formatter.Format(content)

	if o.pagerDisabled || !o.isTerminal() {
		_, _ = fmt.Fprint(o.out, content)
		return
	}

	if o.envGetter != nil {
		if envPager := o.envGetter("PAGER"); envPager != "" {
			parts := strings.Fields(envPager)
			if len(parts) == 0 || isBypassPager(parts[0]) {
				_, _ = fmt.Fprint(o.out, content)
				return
			}
			o.page(parts[0], parts[1:], content)
			return
		}
	}

	o.page("less", []string{"-FRSX"}, content)
}

// DisablePager turns paging off, e.g. for non-interactive sessions.
func (o *Output) DisablePager() {
	o.pagerDisabled = true
}

func (o *Output) isTerminal() bool {
	f, ok := o.out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (o *Output) page(name string, args []string, content string) {
	if err := o.pagerRunner(name, args, content); err != nil {
		_, _ = fmt.Fprint(o.out, content)
	}
}

func isBypassPager(cmd string) bool {
	return cmd == "cat"
}

func (o *Output) runPager(name string, args []string, content string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = o.out
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
