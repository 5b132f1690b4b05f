package main

import (
	"context"
	"fmt"
	"os"

	"github.com/indaco/toolsver/internal/cli"
	"github.com/indaco/toolsver/internal/config"
	"github.com/indaco/toolsver/internal/printer"
	"github.com/indaco/toolsver/internal/version"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintError(fmt.Sprintf("Error: %v", err))
		os.Exit(1)
	}
}

// runCLI loads the configuration and runs the root command with args.
// A configuration that fails to load or validate is replaced by the
// defaults and its error handed to the root command, which reports it
// for every command except init-config.
func runCLI(args []string) error {
	cfg, cfgErr := loadConfig()

	current, err := cfg.CurrentVersion(version.CurrentToolsVersion())
	if err != nil {
		return err
	}

	app := cli.New(cfg, current, cfgErr)
	return app.Run(context.Background(), args)
}

// loadConfig returns the validated configuration, or the defaults together
// with the reason the configuration was rejected.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfigFn()
	if err != nil {
		return config.Default(), fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg == nil {
		return config.Default(), nil
	}

	for _, r := range config.NewValidator(cfg).Validate() {
		if r.Warning {
			printer.PrintWarning(fmt.Sprintf("%s: %s", r.Category, r.Message))
		}
	}
	if err := cfg.Validate(); err != nil {
		return config.Default(), err
	}
	return cfg, nil
}
