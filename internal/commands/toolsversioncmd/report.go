package toolsversioncmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/indaco/toolsver/internal/operations"
	"github.com/indaco/toolsver/internal/printer"
	"github.com/indaco/toolsver/internal/toolsversion"
	"github.com/tidwall/sjson"
)

// report is the display-mode result.
type report struct {
	path     string
	declared bool
	version  toolsversion.Version
	spelling string
	warning  string
}

func newReport(status *operations.Status, current, minimum toolsversion.Version) *report {
	r := &report{path: status.Path, version: minimum}
	if !status.Present() {
		return r
	}

	r.declared = true
	r.version = status.Location.Version
	r.spelling = status.Location.Spelling.Name

	if err := toolsversion.CheckSupported(r.version, current, minimum); err != nil {
		switch {
		case errors.Is(err, toolsversion.ErrUnsupported):
			r.warning = fmt.Sprintf("package requires tools version %s, current toolchain is %s", r.version, current)
		case errors.Is(err, toolsversion.ErrBelowMinimum):
			r.warning = fmt.Sprintf("tools version %s is below the minimum supported %s", r.version, minimum)
		}
	}
	return r
}

// WriteText prints the version on the first line so scripts can read it,
// followed by styled notes.
func (r *report) WriteText(out io.Writer) error {
	if _, err := fmt.Fprintln(out, r.version.String()); err != nil {
		return err
	}
	if !r.declared {
		fmt.Fprintln(out, printer.Faint(fmt.Sprintf("no tools-version directive in %s, implied minimum", r.path)))
	}
	if r.warning != "" {
		fmt.Fprintln(out, printer.Warning("warning: "+r.warning))
	}
	return nil
}

type jsonField struct {
	path  string
	value any
}

// JSON renders the report as a JSON object.
func (r *report) JSON() (string, error) {
	doc := "{}"
	sets := []jsonField{
		{"path", r.path},
		{"declared", r.declared},
		{"version", r.version.String()},
		{"components.major", r.version.Major},
		{"components.minor", r.version.Minor},
		{"components.patch", r.version.Patch},
	}
	if r.spelling != "" {
		sets = append(sets, jsonField{"spelling", r.spelling})
	}
	if r.warning != "" {
		sets = append(sets, jsonField{"warning", r.warning})
	}

	var err error
	for _, s := range sets {
		doc, err = sjson.Set(doc, s.path, s.value)
		if err != nil {
			return "", fmt.Errorf("failed to encode %s: %w", s.path, err)
		}
	}
	for i, id := range r.version.PreRelease {
		if doc, err = sjson.Set(doc, fmt.Sprintf("components.prerelease.%d", i), id); err != nil {
			return "", fmt.Errorf("failed to encode prerelease: %w", err)
		}
	}
	for i, id := range r.version.Build {
		if doc, err = sjson.Set(doc, fmt.Sprintf("components.build.%d", i), id); err != nil {
			return "", fmt.Errorf("failed to encode build metadata: %w", err)
		}
	}
	return doc, nil
}
