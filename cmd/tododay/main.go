// Package main is the entry point for the tododay CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tododay/internal/cli"
	"tododay/internal/commands"
)

func main() {
	// Cancel in-flight storage and suggestion calls on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, cli.NewSession)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
