// Package core defines the I/O abstractions shared by toolsver packages,
// together with their production and in-memory implementations.
package core

import (
	"context"
	"os"
)

// FileMode aliases os.FileMode so callers need not import os for permissions.
type FileMode = os.FileMode

// PermOwnerRW is the permission used for files created by toolsver (owner read/write only).
const PermOwnerRW FileMode = 0o600

// FileSystem abstracts file operations for testability.
type FileSystem interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// WriteFile replaces the contents of path. Implementations must make the
	// write atomic: readers observe either the old or the new contents.
	WriteFile(ctx context.Context, path string, data []byte, perm FileMode) error

	Stat(ctx context.Context, path string) (os.FileInfo, error)
	ReadDir(ctx context.Context, path string) ([]os.DirEntry, error)
}

// Marshaler abstracts serialization for testability.
type Marshaler interface {
	Marshal(v any) ([]byte, error)
}
