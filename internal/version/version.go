// Package version exposes build information for the toolsver binary.
package version

import (
	"runtime/debug"

	"github.com/indaco/toolsver/internal/toolsversion"
)

// version is set at build time via -ldflags "-X github.com/indaco/toolsver/internal/version.version=...".
var version = ""

// ToolsVersion is the toolchain version this build of toolsver reports as
// current unless overridden by configuration.
const ToolsVersion = "6.0.0"

// GetVersion returns the toolsver release, falling back to the module
// version recorded in the build info and finally to "dev".
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return "dev"
}

// CurrentToolsVersion returns ToolsVersion as a parsed value.
func CurrentToolsVersion() toolsversion.Version {
	return toolsversion.MustParse(ToolsVersion)
}
