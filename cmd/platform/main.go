package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/footprint-tools/platform-cli/internal/app"
)

func main() {
	os.Exit(run(os.Args[1:], os.Getenv, os.Stdout, os.Stderr))
}

func run(args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(app.Options{
		Args:   args,
		Getenv: getenv,
		Stdout: stdout,
		Stderr: stderr,
	})
	if err != nil {
		return app.ReportStartupError(stderr, getenv, err)
	}
	defer func() { _ = a.Close() }()

	return a.Run(ctx)
}
