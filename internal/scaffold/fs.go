package scaffold

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// FileSystem is the subset of file operations the generator needs.
type FileSystem interface {
	Exists(path string) bool
	MkdirAll(path string, perm fs.FileMode) error
	WriteFile(path string, data []byte, perm fs.FileMode) error
}

// OSFileSystem writes to the real file system.
type OSFileSystem struct{}

func (OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

func (OSFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (OSFileSystem) WriteFile(path string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(path, data, perm)
}

// MemFileSystem keeps files in memory. Used by tests and dry runs.
type MemFileSystem struct {
	Files map[string][]byte
	Dirs  map[string]bool
	// FailWrites makes every WriteFile return this error when set.
	FailWrites error
}

// NewMemFileSystem returns an empty in-memory file system.
func NewMemFileSystem() *MemFileSystem {
	return &MemFileSystem{Files: map[string][]byte{}, Dirs: map[string]bool{}}
}

func (m *MemFileSystem) Exists(path string) bool {
	path = filepath.Clean(path)
	_, isFile := m.Files[path]
	return isFile || m.Dirs[path]
}

func (m *MemFileSystem) MkdirAll(path string, _ fs.FileMode) error {
	for p := filepath.Clean(path); ; p = filepath.Dir(p) {
		m.Dirs[p] = true
		if parent := filepath.Dir(p); parent == p {
			return nil
		}
	}
}

func (m *MemFileSystem) WriteFile(path string, data []byte, _ fs.FileMode) error {
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.Files[filepath.Clean(path)] = append([]byte(nil), data...)
	return nil
}

// Paths returns every file path in sorted order.
func (m *MemFileSystem) Paths() []string {
	paths := make([]string, 0, len(m.Files))
	for p := range m.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
