package cli

import (
	"context"
	"fmt"

	"github.com/indaco/toolsver/internal/commands/initconfig"
	"github.com/indaco/toolsver/internal/commands/toolsversioncmd"
	"github.com/indaco/toolsver/internal/config"
	"github.com/indaco/toolsver/internal/printer"
	"github.com/indaco/toolsver/internal/toolsversion"
	"github.com/indaco/toolsver/internal/tui"
	"github.com/indaco/toolsver/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

// New builds and returns the root CLI command,
// configuring all subcommands and flags for the toolsver cli.
// current is the tools version of the running toolchain. A non-nil
// cfgErr reports why the configuration file was rejected: it fails every
// command except init-config, which only warns so the file can be rewritten.
func New(cfg *config.Config, current toolsversion.Version, cfgErr error) *urfavecli.Command {
	var noColor bool

	return &urfavecli.Command{
		Name:                  "toolsver",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Manage the tools-version directive of package manifests",
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:    "path",
				Aliases: []string{"p"},
				Usage:   "Package root directory",
				Value:   ".",
			},
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColor,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(noColor)
			tui.SetTheme(cfg.Theme)

			if cfgErr != nil {
				if cmd.Args().First() != initconfig.CommandName {
					return ctx, cfgErr
				}
				fmt.Fprintln(cmd.Root().ErrWriter, printer.Warning(fmt.Sprintf("ignoring configuration: %v", cfgErr)))
			}
			return ctx, nil
		},
		Commands: []*urfavecli.Command{
			toolsversioncmd.Run(cfg, current),
			initconfig.Run(),
		},
	}
}
