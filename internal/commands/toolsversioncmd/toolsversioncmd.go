package toolsversioncmd

import (
	"context"
	"fmt"
	"io"

	"github.com/indaco/toolsver/internal/config"
	"github.com/indaco/toolsver/internal/directive"
	"github.com/indaco/toolsver/internal/manifest"
	"github.com/indaco/toolsver/internal/operations"
	"github.com/indaco/toolsver/internal/printer"
	"github.com/indaco/toolsver/internal/toolsversion"
	"github.com/urfave/cli/v3"
)

// Run returns the "tools-version" command. current is the version of the
// running toolchain.
func Run(cfg *config.Config, current toolsversion.Version) *cli.Command {
	return &cli.Command{
		Name:  "tools-version",
		Usage: "Display or set the tools version of the current package",
		UsageText: `toolsver tools-version [options]

Without options, prints the tools version declared by the manifest the
current toolchain would load.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "set",
				Usage: "Set tools version of package to the given value",
			},
			&cli.BoolFlag{
				Name:  "set-current",
				Usage: "Set tools version of package to the current tools version in use",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json",
				Value:   "text",
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Insert a missing directive without asking",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runToolsVersionCmd(ctx, cmd, cfg, current)
		},
	}
}

// runToolsVersionCmd dispatches to the display, set or set-current mode.
func runToolsVersionCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config, current toolsversion.Version) error {
	if cfg == nil {
		cfg = config.Default()
	}

	setGiven := cmd.IsSet("set")
	if setGiven && cmd.Bool("set-current") {
		return ErrConflictingModes
	}

	root := cmd.String("path")
	if root == "" {
		root = "."
	}

	store := manifest.NewStore(newFileSystem(), cfg.Manifest)
	op := operations.NewToolsVersionOperation(store, directive.NewLocator(cfg.Spellings()...))
	out := cmd.Root().Writer

	switch {
	case setGiven:
		v, err := toolsversion.Parse(cmd.String("set"))
		if err != nil {
			return err
		}
		return runSet(ctx, out, store, op, root, v, cmd.Bool("yes"))
	case cmd.Bool("set-current"):
		return runSet(ctx, out, store, op, root, current.ZeroedPatch(), cmd.Bool("yes"))
	default:
		format, err := ParseOutputFormat(cmd.String("format"))
		if err != nil {
			return err
		}
		minimum, err := cfg.MinimumVersion()
		if err != nil {
			return err
		}
		return runDisplay(ctx, out, store, op, root, current, minimum, format)
	}
}

// runDisplay prints the declared tools version of the manifest the current
// toolchain resolves in root.
func runDisplay(
	ctx context.Context,
	out io.Writer,
	store *manifest.Store,
	op *operations.ToolsVersionOperation,
	root string,
	current, minimum toolsversion.Version,
	format OutputFormat,
) error {
	path, err := store.Resolve(ctx, root, current)
	if err != nil {
		return err
	}

	status, err := op.Inspect(ctx, path)
	if err != nil {
		return err
	}

	report := newReport(status, current, minimum)
	if format == FormatJSON {
		data, err := report.JSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, data)
		return err
	}

	return report.WriteText(out)
}

// runSet rewrites the base manifest in root to v. Inserting a directive
// into a manifest without one asks for confirmation on interactive
// terminals unless assumeYes is set.
func runSet(
	ctx context.Context,
	out io.Writer,
	store *manifest.Store,
	op *operations.ToolsVersionOperation,
	root string,
	v toolsversion.Version,
	assumeYes bool,
) error {
	path, err := store.ResolveBase(ctx, root)
	if err != nil {
		return err
	}

	if !assumeYes && isInteractive() {
		status, err := op.Inspect(ctx, path)
		if err != nil {
			return err
		}
		if !status.Present() {
			ok, err := newPrompter().Confirm(
				fmt.Sprintf("Insert tools-version %s into %s?", v, path),
				"The manifest has no tools-version directive yet.",
			)
			if err != nil {
				return fmt.Errorf("confirmation prompt failed: %w", err)
			}
			if !ok {
				fmt.Fprintln(out, printer.Warning("Aborted, manifest left unchanged."))
				return nil
			}
		}
	}

	change, err := op.Set(ctx, path, v)
	if err != nil {
		return err
	}

	printChange(out, change)
	return nil
}

func printChange(out io.Writer, change *operations.Change) {
	switch {
	case !change.Written:
		fmt.Fprintf(out, "%s %s\n",
			printer.Faint(change.Path+" already declares tools version"),
			printer.Bold(change.Version.String()))
	case change.Inserted:
		fmt.Fprintf(out, "%s %s %s\n",
			printer.Success("Inserted tools version"),
			printer.Bold(change.Version.String()),
			printer.Faint("into "+change.Path))
	default:
		fmt.Fprintf(out, "%s %s -> %s %s\n",
			printer.Success("Updated tools version"),
			change.Previous.String(),
			printer.Bold(change.Version.String()),
			printer.Faint("in "+change.Path))
	}
}
