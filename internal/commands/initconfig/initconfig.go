// Package initconfig implements the "init-config" command, which writes a
// starter .toolsver.yaml (or .toolsver.toml) to the working directory.
package initconfig

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/indaco/toolsver/internal/config"
	"github.com/indaco/toolsver/internal/printer"
	"github.com/urfave/cli/v3"
)

// CommandName is the name the command is registered under.
const CommandName = "init-config"

// ErrConfigExists is returned when a config file is already present and
// --force was not given.
var ErrConfigExists = errors.New("config file already exists")

// Run returns the "init-config" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:  CommandName,
		Usage: "Write a default " + config.YAMLFile + " (or " + config.TOMLFile + ") to the current directory",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "manifest",
				Usage: "Manifest file name to record",
			},
			&cli.StringFlag{
				Name:  "current",
				Usage: "Current tools version override to record",
			},
			&cli.StringFlag{
				Name:  "theme",
				Usage: "Prompt theme to record",
			},
			&cli.BoolFlag{
				Name:  "toml",
				Usage: "Write " + config.TOMLFile + " instead of " + config.YAMLFile,
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing config file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runInitConfigCmd(ctx, cmd)
		},
	}
}

func runInitConfigCmd(ctx context.Context, cmd *cli.Command) error {
	target := config.YAMLFile
	if cmd.Bool("toml") {
		target = config.TOMLFile
	}

	if !cmd.Bool("force") {
		if _, err := os.Stat(target); err == nil {
			return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, target)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to check %s: %w", target, err)
		}
	}

	cfg := config.Default()
	if v := cmd.String("manifest"); v != "" {
		cfg.Manifest = v
	}
	if v := cmd.String("current"); v != "" {
		cfg.CurrentToolsVersion = v
	}
	if v := cmd.String("theme"); v != "" {
		cfg.Theme = v
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.SaveConfigFn(ctx, cfg, target); err != nil {
		return err
	}

	fmt.Fprintln(cmd.Root().Writer, printer.Success("Wrote "+target))
	return nil
}
