// Package cache persists the plugin's JSON cache documents.
//
// Each document is a small flat JSON object that is built once, rewritten in
// full on every rebuild and read-only afterwards. Absence and corruption are
// indistinguishable to callers: both surface as ErrMiss.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/danieljhkim/planswitch/internal/fsops"
)

// Well-known document names.
const (
	EncodingDoc     = "system_encoding.json"
	DefaultPlansDoc = "default_plans.json"
	VendorDoc       = "is_lenovo_system.json"
)

// ErrMiss indicates a document is absent, unreadable or not valid JSON.
var ErrMiss = errors.New("cache miss")

// Store provides an interface for persisting cache documents.
type Store interface {
	// Load decodes the named document into v.
	// Returns an error wrapping ErrMiss if it cannot be used.
	Load(name string, v any) error

	// Save replaces the named document atomically.
	Save(name string, v any) error

	// Clear deletes the named document. Deleting a missing document is not an error.
	Clear(name string) error
}

// FileStore implements Store using JSON files in one directory.
type FileStore struct {
	fs  fsops.FS
	dir string
}

// NewFileStore creates a new FileStore rooted at dir.
func NewFileStore(fs fsops.FS, dir string) *FileStore {
	return &FileStore{fs: fs, dir: dir}
}

// Dir returns the directory documents are stored in.
func (s *FileStore) Dir() string {
	return s.dir
}

// Load decodes the named document into v.
func (s *FileStore) Load(name string, v any) error {
	if err := fsops.ValidateFileName(name); err != nil {
		return fmt.Errorf("%w: %v", ErrMiss, err)
	}

	data, err := s.fs.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s does not exist", ErrMiss, name)
		}
		return fmt.Errorf("%w: failed to read %s: %v", ErrMiss, name, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: failed to unmarshal %s: %v", ErrMiss, name, err)
	}

	return nil
}

// Save replaces the named document atomically.
func (s *FileStore) Save(name string, v any) error {
	if err := fsops.ValidateFileName(name); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}

	if err := s.fs.AtomicWrite(filepath.Join(s.dir, name), data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	return nil
}

// Clear deletes the named document.
func (s *FileStore) Clear(name string) error {
	if err := fsops.ValidateFileName(name); err != nil {
		return err
	}

	path := filepath.Join(s.dir, name)
	exists, err := s.fs.Exists(path)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", name, err)
	}
	if !exists {
		return nil
	}

	if err := s.fs.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", name, err)
	}

	return nil
}

// ClearAll deletes every well-known document, returning the first error.
func ClearAll(s Store) error {
	var first error
	for _, name := range []string{EncodingDoc, DefaultPlansDoc, VendorDoc} {
		if err := s.Clear(name); err != nil && first == nil {
			first = err
		}
	}
	return first
}
