// Package main is the entry point for the habits CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"habits/internal/cli"
	"habits/internal/core"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := rootCmd(openSession).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorMessage(err))
		os.Exit(1)
	}
}

// openSession wires a session from the environment. "Today" is fixed for
// the whole invocation at the moment it starts.
func openSession(ctx context.Context) (*cli.Session, error) {
	cli.LoadEnvFile()
	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		return nil, err
	}
	logger := cli.SetupLogger(cfg)
	return cli.OpenSession(ctx, cfg, logger, time.Now())
}

// errorMessage formats an error for the terminal. Validation problems are
// shown as plain warnings.
func errorMessage(err error) string {
	var ve *core.ValidationError
	if errors.As(err, &ve) {
		return "⚠️  " + ve.Message
	}
	return "Error: " + err.Error()
}
