package operations

import (
	"bytes"
	"context"

	"github.com/indaco/toolsver/internal/directive"
	"github.com/indaco/toolsver/internal/manifest"
	"github.com/indaco/toolsver/internal/toolsversion"
)

// Status describes the directive found in a manifest.
type Status struct {
	// Path is the manifest that was inspected.
	Path string

	// Location is nil when the manifest has no directive.
	Location *directive.Location
}

// Present reports whether the manifest declares a tools version.
func (s *Status) Present() bool {
	return s.Location != nil
}

// Change describes the outcome of a rewrite.
type Change struct {
	Path     string
	Previous *toolsversion.Version
	Version  toolsversion.Version

	// Inserted is true when the manifest had no directive.
	Inserted bool

	// Written is false when the manifest already held the requested directive.
	Written bool
}

// ToolsVersionOperation reads and rewrites the tools-version directive of manifests.
type ToolsVersionOperation struct {
	store   *manifest.Store
	locator *directive.Locator
	writer  *directive.Writer
}

// NewToolsVersionOperation creates an operation backed by store.
// A nil locator selects the default directive spellings.
func NewToolsVersionOperation(store *manifest.Store, locator *directive.Locator) *ToolsVersionOperation {
	if locator == nil {
		locator = directive.NewLocator()
	}
	return &ToolsVersionOperation{
		store:   store,
		locator: locator,
		writer:  directive.NewWriter(locator),
	}
}

// Inspect decodes the directive of the manifest at path.
func (op *ToolsVersionOperation) Inspect(ctx context.Context, path string) (*Status, error) {
	data, err := op.store.Read(ctx, path)
	if err != nil {
		return nil, err
	}

	loc, err := op.locator.Locate(data)
	if err != nil {
		return nil, err
	}
	return &Status{Path: path, Location: loc}, nil
}

// Set rewrites the directive of the manifest at path to v.
// The manifest is left untouched when the rewrite does not change it.
func (op *ToolsVersionOperation) Set(ctx context.Context, path string, v toolsversion.Version) (*Change, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := op.store.Read(ctx, path)
	if err != nil {
		return nil, err
	}

	loc, err := op.locator.Locate(data)
	if err != nil {
		return nil, err
	}

	updated, err := op.writer.Rewrite(data, v)
	if err != nil {
		return nil, err
	}

	change := &Change{Path: path, Version: v, Inserted: loc == nil}
	if loc != nil {
		prev := loc.Version
		change.Previous = &prev
	}

	if bytes.Equal(updated, data) {
		return change, nil
	}
	if err := op.store.Write(ctx, path, updated); err != nil {
		return nil, err
	}
	change.Written = true
	return change, nil
}
