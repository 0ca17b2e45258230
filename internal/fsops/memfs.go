package fsops

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// MemFS implements FS in memory. It is the storage backend injected by tests
// that must not touch the disk, and it can be told to fail reads or writes.
type MemFS struct {
	mu    sync.Mutex
	files map[string][]byte
	dirs  map[string]bool

	// ReadErr, when set, is returned by every ReadFile call.
	ReadErr error
	// WriteErr, when set, is returned by every AtomicWrite call.
	WriteErr error

	writes int
}

// NewMemFS creates an empty MemFS.
func NewMemFS() *MemFS {
	return &MemFS{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

// MkdirAll records the directory.
func (m *MemFS) MkdirAll(path string, _ os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[filepath.Clean(path)] = true
	return nil
}

// Remove deletes a file.
func (m *MemFS) Remove(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	if _, ok := m.files[path]; !ok {
		return &fs.PathError{Op: "remove", Path: path, Err: fs.ErrNotExist}
	}
	delete(m.files, path)
	return nil
}

// AtomicWrite replaces the file contents in one step.
func (m *MemFS) AtomicWrite(path string, data []byte, _ os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	m.files[filepath.Clean(path)] = buf
	m.writes++
	return nil
}

// ReadFile returns a copy of the file contents.
func (m *MemFS) ReadFile(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	path = filepath.Clean(path)
	data, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return buf, nil
}

// Exists reports whether a file or directory was recorded at path.
func (m *MemFS) Exists(path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	_, isFile := m.files[path]
	return isFile || m.dirs[path], nil
}

// SetFile seeds raw file contents, bypassing WriteErr.
func (m *MemFS) SetFile(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[filepath.Clean(path)] = data
}

// Writes returns how many successful AtomicWrite calls were made.
func (m *MemFS) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// ErrInjected is a convenience error for tests that need a failing backend.
var ErrInjected = errors.New("injected filesystem failure")
