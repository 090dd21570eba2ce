// Command admin-init writes an admin panel configuration file from a short
// interactive questionnaire.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/goliatone/go-admin/internal/prompt"
	"github.com/goliatone/go-admin/pkg/config"
)

func main() {
	output := pflag.StringP("output", "o", config.DefaultFileName+".yaml", "configuration file to write")
	force := pflag.BoolP("force", "f", false, "overwrite an existing file without asking")
	defaults := pflag.Bool("defaults", false, "write the default configuration without prompting")
	pflag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := run(ctx, prompt.Survey(), *output, *force, *defaults)
	if errors.Is(err, prompt.ErrAborted) {
		fmt.Fprintln(os.Stderr, "aborted")
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("admin-init: %v", err)
	}
	fmt.Printf("Configuration written to %s\n", *output)
}

// errExists stops a non-interactive run from replacing a file.
var errExists = errors.New("file exists, pass --force to overwrite")

func run(ctx context.Context, driver prompt.Driver, output string, force, defaults bool) error {
	if defaults {
		if _, err := os.Stat(output); err == nil && !force {
			return fmt.Errorf("%s: %w", output, errExists)
		}
		return config.Write(output, config.Default())
	}

	base := config.Default()
	if _, err := os.Stat(output); err == nil {
		if !force {
			overwrite, err := driver.Confirm(ctx, prompt.ConfirmConfig{
				Message: fmt.Sprintf("%s exists. Overwrite?", output),
			})
			if err != nil {
				return err
			}
			if !overwrite {
				return prompt.ErrAborted
			}
		}
		// Existing values become the defaults of every question.
		if existing, err := config.Load(output); err == nil {
			base = existing
		}
	}

	cfg, err := askConfig(ctx, driver, base)
	if err != nil {
		return err
	}
	return config.Write(output, cfg)
}
