// Package main is the entry point for the pipstep CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.trai.ch/pipstep/cmd/pipstep/commands"
	"go.trai.ch/pipstep/internal/app"
	"go.trai.ch/pipstep/internal/core/domain"
	_ "go.trai.ch/pipstep/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, err := app.NewApp(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		return 1
	}
	defer func() { _ = components.App.Close() }()

	cli := commands.New(components.App, components.Logger)

	if err := cli.Execute(ctx); err != nil {
		// Install failures are logged where they happen.
		if !errors.Is(err, domain.ErrInstallFailed) {
			components.Logger.Error(err)
		}
		return 1
	}
	return 0
}
