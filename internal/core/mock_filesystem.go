package core

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

// MockFileSystem is an in-memory FileSystem for tests.
// Directories are implied by the files they contain or added with MkdirAll.
type MockFileSystem struct {
	mu    sync.RWMutex
	files map[string][]byte
	perms map[string]FileMode
	dirs  map[string]bool

	// ReadErr, WriteErr and StatErr, when set, are returned by the matching operation.
	ReadErr  error
	WriteErr error
	StatErr  error

	// Writes counts successful WriteFile calls.
	Writes int
}

// NewMockFileSystem returns an empty MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files: make(map[string][]byte),
		perms: make(map[string]FileMode),
		dirs:  make(map[string]bool),
	}
}

// SetFile stores content at path.
func (m *MockFileSystem) SetFile(path string, content []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[filepath.Clean(path)] = slices.Clone(content)
}

// GetFile returns the content stored at path.
func (m *MockFileSystem) GetFile(path string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[filepath.Clean(path)]
	return slices.Clone(data), ok
}

// MkdirAll registers an empty directory.
func (m *MockFileSystem) MkdirAll(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[filepath.Clean(path)] = true
}

func (m *MockFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[filepath.Clean(path)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return slices.Clone(data), nil
}

func (m *MockFileSystem) WriteFile(ctx context.Context, path string, data []byte, perm FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.WriteErr != nil {
		return m.WriteErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	clean := filepath.Clean(path)
	m.files[clean] = slices.Clone(data)
	if _, ok := m.perms[clean]; !ok {
		m.perms[clean] = perm
	}
	m.Writes++
	return nil
}

func (m *MockFileSystem) Stat(ctx context.Context, path string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.StatErr != nil {
		return nil, m.StatErr
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	clean := filepath.Clean(path)
	if data, ok := m.files[clean]; ok {
		return mockFileInfo{name: filepath.Base(clean), size: int64(len(data)), mode: m.modeOf(clean)}, nil
	}
	if m.isDir(clean) {
		return mockFileInfo{name: filepath.Base(clean), mode: fs.ModeDir | 0o755}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
}

func (m *MockFileSystem) ReadDir(ctx context.Context, path string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	clean := filepath.Clean(path)
	if !m.isDir(clean) {
		return nil, &fs.PathError{Op: "readdir", Path: path, Err: fs.ErrNotExist}
	}

	children := make(map[string]bool) // name -> isDir
	collect := func(p string, isDir bool) {
		rel, ok := childOf(clean, p)
		if !ok {
			return
		}
		name, _, nested := strings.Cut(rel, string(filepath.Separator))
		children[name] = children[name] || isDir || nested
	}
	for p := range m.files {
		collect(p, false)
	}
	for p := range m.dirs {
		collect(p, true)
	}

	names := make([]string, 0, len(children))
	for name := range children {
		names = append(names, name)
	}
	slices.Sort(names)

	entries := make([]os.DirEntry, 0, len(names))
	for _, name := range names {
		full := filepath.Join(clean, name)
		info := mockFileInfo{name: name, size: int64(len(m.files[full])), mode: m.modeOf(full)}
		if children[name] {
			info.mode = fs.ModeDir | 0o755
		}
		entries = append(entries, fs.FileInfoToDirEntry(info))
	}
	return entries, nil
}

func (m *MockFileSystem) modeOf(path string) FileMode {
	if perm, ok := m.perms[path]; ok {
		return perm
	}
	return 0o644
}

func (m *MockFileSystem) isDir(path string) bool {
	if m.dirs[path] {
		return true
	}
	for p := range m.files {
		if _, ok := childOf(path, p); ok {
			return true
		}
	}
	for p := range m.dirs {
		if _, ok := childOf(path, p); ok {
			return true
		}
	}
	return false
}

// childOf returns p relative to dir when p lies strictly inside dir.
func childOf(dir, p string) (string, bool) {
	prefix := dir
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	if dir == "." {
		if filepath.IsAbs(p) || p == "." {
			return "", false
		}
		return p, true
	}
	rel, ok := strings.CutPrefix(p, prefix)
	return rel, ok && rel != ""
}

type mockFileInfo struct {
	name string
	size int64
	mode fs.FileMode
}

func (fi mockFileInfo) Name() string       { return fi.name }
func (fi mockFileInfo) Size() int64        { return fi.size }
func (fi mockFileInfo) Mode() fs.FileMode  { return fi.mode }
func (fi mockFileInfo) ModTime() time.Time { return time.Time{} }
func (fi mockFileInfo) IsDir() bool        { return fi.mode.IsDir() }
func (fi mockFileInfo) Sys() any           { return nil }
