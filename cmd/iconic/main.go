// Package main is the entry point for the iconic lookup tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/iconic/cmd/iconic/commands"
	"go.trai.ch/iconic/internal/adapters/telemetry"
	"go.trai.ch/iconic/internal/app"
	"go.trai.ch/iconic/internal/core/domain"
	_ "go.trai.ch/iconic/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr passed in
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}

	// 2. Telemetry: spans go nowhere unless an exporter is attached, but
	// installing the provider keeps span timing visible in-process.
	shutdownTracing := telemetry.Install()
	defer func() { _ = shutdownTracing(ctx) }()

	// 3. Interface - CLI
	cli := commands.New(components.Service)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 4. Execution
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrIconNotFound) {
			// Misses were already printed per icon.
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
