// Package directive locates, decodes and rewrites the tools-version directive
// of a package manifest, for example:
//
//	// tools-version:5.7.1
//
// Only the first line of a manifest is eligible, or the second one when the
// first is a shebang or an editor/encoding mode line. Historical spellings are
// kept in an ordered table (see DefaultSpellings) and tried in priority order.
//
// Everything here operates on in-memory byte slices. Reading and persisting
// manifests is left to the caller (see the manifest package).
package directive
