// Package tui holds the interactive pieces of toolsver: terminal detection,
// prompt themes and the confirmation prompt shown before a directive is
// inserted into a manifest.
package tui
