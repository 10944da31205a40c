package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/TheGojiOG/genhash/internal/config"
	"github.com/TheGojiOG/genhash/internal/genhash"
	"github.com/TheGojiOG/genhash/internal/logging"
	"github.com/TheGojiOG/genhash/internal/terminal"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s\n\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "Prompts for a password and prints its bcrypt hash for use in SQL statements.")
	}
	flag.Parse()

	os.Exit(run())
}

func run() int {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up logging
	logger, err := logging.Init(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logging.Close()

	logger = logger.With("invocation_id", uuid.NewString())
	logger.Info("genhash_started")
	if flag.NArg() > 0 {
		logger.Warn("ignoring_arguments", "count", flag.NArg())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = genhash.Run(ctx, genhash.Options{
		Prompter: terminal.NewTTY(os.Stdin, os.Stderr),
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Logger:   logger,
	})

	code := genhash.ExitCode(err)
	logger.Info("genhash_finished", "exit_code", code)
	return code
}
