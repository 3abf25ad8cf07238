package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"StockDLC/internal/cli/bootstrap"
	"StockDLC/internal/cli/commands"
	"StockDLC/internal/config"
)

func main() {
	// Load unified config (env + flags)
	cfg := config.NewConfig()

	logger, err := bootstrap.NewLogger(cfg.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	commands.Logger = logger

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// dispatcher
	exitCode := commands.Dispatch(ctx, cfg, flag.Args())
	if exitCode == 0 {
		return
	}
	cancel()
	_ = logger.Sync()
	os.Exit(exitCode)
}
