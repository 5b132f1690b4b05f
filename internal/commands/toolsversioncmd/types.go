package toolsversioncmd

import (
	"errors"
	"fmt"

	"github.com/indaco/toolsver/internal/core"
	"github.com/indaco/toolsver/internal/tui"
)

// ErrConflictingModes is returned when --set and --set-current are combined.
var ErrConflictingModes = errors.New("--set and --set-current are mutually exclusive")

// Prompter abstracts interactive prompts for testability.
type Prompter interface {
	Confirm(title, description string) (bool, error)
}

// TUIPrompter implements Prompter using the tui package.
type TUIPrompter struct{}

// Confirm shows a yes/no confirmation prompt.
func (p *TUIPrompter) Confirm(title, description string) (bool, error) {
	return tui.Confirm(title, description)
}

// Replaceable in tests.
var (
	newFileSystem = func() core.FileSystem { return core.NewOSFileSystem() }
	newPrompter   = func() Prompter { return &TUIPrompter{} }
	isInteractive = tui.IsInteractive
)

// OutputFormat controls how the display mode prints its result.
type OutputFormat string

const (
	// FormatText outputs the bare version, followed by any notes.
	FormatText OutputFormat = "text"

	// FormatJSON outputs a single JSON object.
	FormatJSON OutputFormat = "json"
)

// ParseOutputFormat converts a string to OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid format %q, expected text or json", s)
	}
}
