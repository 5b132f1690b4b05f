// Package toolsversioncmd implements the "tools-version" command, which
// displays or rewrites the tools-version directive of a package manifest.
//
// Without flags the command prints the declared tools version of the
// manifest the current toolchain would load. --set rewrites the base
// manifest to the given version and --set-current rewrites it to the
// current toolchain version with the patch component zeroed.
package toolsversioncmd
