package toolsversion

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported is returned when a manifest requires a newer toolchain than the running one.
	ErrUnsupported = errors.New("tools version is newer than the current toolchain")

	// ErrBelowMinimum is returned when a manifest declares a version the toolchain no longer supports.
	ErrBelowMinimum = errors.New("tools version is below the minimum supported version")
)

// CheckSupported validates a declared tools version against the running
// toolchain. Pre-release identifiers of current are ignored, so a 6.0.0-dev
// toolchain accepts manifests declaring 6.0.0.
func CheckSupported(declared, current, minimum Version) error {
	if Compare(declared, minimum) < 0 {
		return fmt.Errorf("%w: %s < %s", ErrBelowMinimum, declared, minimum)
	}

	release := Version{Major: current.Major, Minor: current.Minor, Patch: current.Patch}
	if Compare(declared, release) > 0 {
		return fmt.Errorf("%w: package requires %s, toolchain is %s", ErrUnsupported, declared, current)
	}

	return nil
}
