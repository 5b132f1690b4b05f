// Package manifest resolves, reads and writes package manifests on behalf of
// the tools-version commands.
package manifest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/indaco/toolsver/internal/core"
	"github.com/indaco/toolsver/internal/toolsversion"
)

// DefaultName is the manifest file name used when none is configured.
const DefaultName = "package.manifest"

// variantInfix separates the manifest stem from the tools version in
// version-specific manifest names, e.g. "package@tools-5.7.manifest".
const variantInfix = "@tools-"

// ErrNoManifestFound is returned when a package root has no manifest.
var ErrNoManifestFound = errors.New("no manifest found")

// Store locates and persists manifests through a core.FileSystem.
type Store struct {
	fs   core.FileSystem
	name string
}

// NewStore creates a Store for manifests called name (DefaultName when empty).
func NewStore(fs core.FileSystem, name string) *Store {
	if name == "" {
		name = DefaultName
	}
	return &Store{fs: fs, name: name}
}

// Variant describes a version-specific manifest.
type Variant struct {
	Path    string
	Version toolsversion.Version
}

// ResolveBase returns the path of the base manifest in root.
func (s *Store) ResolveBase(ctx context.Context, root string) (string, error) {
	path := filepath.Join(root, s.name)
	info, err := s.fs.Stat(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s does not exist", ErrNoManifestFound, path)
		}
		return "", fmt.Errorf("failed to stat %q: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrNoManifestFound, path)
	}
	return path, nil
}

// Resolve returns the manifest that a toolchain at version current should
// load from root: the version-specific manifest with the highest version not
// newer than current, or the base manifest when no variant qualifies.
func (s *Store) Resolve(ctx context.Context, root string, current toolsversion.Version) (string, error) {
	variants, err := s.Variants(ctx, root)
	if err != nil {
		return "", err
	}

	release := toolsversion.New(current.Major, current.Minor, current.Patch)
	var best *Variant
	for i := range variants {
		v := &variants[i]
		if v.Version.Compare(release) > 0 {
			continue
		}
		if best == nil || v.Version.Compare(best.Version) > 0 {
			best = v
		}
	}
	if best != nil {
		return best.Path, nil
	}

	return s.ResolveBase(ctx, root)
}

// Variants lists the version-specific manifests found in root.
// Entries whose version part does not parse are ignored.
func (s *Store) Variants(ctx context.Context, root string) ([]Variant, error) {
	entries, err := s.fs.ReadDir(ctx, root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: package root %s does not exist", ErrNoManifestFound, root)
		}
		return nil, fmt.Errorf("failed to read package root %q: %w", root, err)
	}

	ext := filepath.Ext(s.name)
	stem := strings.TrimSuffix(s.name, ext)
	prefix := stem + variantInfix

	var variants []Variant
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ext) {
			continue
		}
		raw := strings.TrimSuffix(strings.TrimPrefix(name, prefix), ext)
		v, err := toolsversion.Parse(raw)
		if err != nil {
			continue
		}
		variants = append(variants, Variant{Path: filepath.Join(root, name), Version: v})
	}
	return variants, nil
}

// Read returns the raw contents of the manifest at path.
func (s *Store) Read(ctx context.Context, path string) ([]byte, error) {
	data, err := s.fs.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %q: %w", path, err)
	}
	return data, nil
}

// Write atomically replaces the contents of the manifest at path.
func (s *Store) Write(ctx context.Context, path string, data []byte) error {
	if err := s.fs.WriteFile(ctx, path, data, core.PermOwnerRW); err != nil {
		return fmt.Errorf("failed to write manifest %q: %w", path, err)
	}
	return nil
}
