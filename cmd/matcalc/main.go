// SPDX-License-Identifier: MIT

// Package main provides the matcalc command-line calculator.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/matcalc/internal/cli"
	"github.com/katalvlaran/matcalc/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.ExitCommandError
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := cli.NewRootCommand(&cli.RootOptions{Config: cfg})
	err = cmd.ExecuteContext(ctx)

	// Command failures were already reported through the output formatter.
	var exitErr *cli.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return cli.GetExitCode(err)
}
