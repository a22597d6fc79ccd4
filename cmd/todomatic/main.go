// Package main is the entry point for the todomatic CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"todomatic/internal/cli"
	"todomatic/internal/commands"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Sessions start empty or from the configured seed file
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, cli.NewSession)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	os.Exit(code)
}
