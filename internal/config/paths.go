// Package config manages planswitch configuration and filesystem paths.
//
// The root directory defaults to the directory containing the executable,
// which is the plugin directory when installed into Flow Launcher. It holds
// settings.json and the .cache/ directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/danieljhkim/planswitch/internal/fsops"
)

// Environment variables.
const (
	EnvRoot       = "PLANSWITCH_ROOT"
	EnvLogLevel   = "PLANSWITCH_LOG_LEVEL"
	EnvDisableLED = "PLANSWITCH_DISABLE_LED"
)

// Paths contains all the filesystem paths used by planswitch.
type Paths struct {
	// Root is the plugin directory
	Root string

	// Cache is the directory holding the JSON cache documents
	Cache string

	// Settings is the path to settings.json
	Settings string

	// Log is the path to the log file
	Log string

	// Env is the optional dotenv file loaded by Load
	Env string
}

// DefaultPaths returns the default paths for planswitch.
// PLANSWITCH_ROOT overrides the root directory.
func DefaultPaths() (*Paths, error) {
	root := os.Getenv(EnvRoot)
	if root == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("failed to locate executable: %w", err)
		}
		root = filepath.Dir(exe)
	}
	return PathsAt(root), nil
}

// PathsAt returns the paths rooted at root.
func PathsAt(root string) *Paths {
	cache := filepath.Join(root, ".cache")
	return &Paths{
		Root:     root,
		Cache:    cache,
		Settings: filepath.Join(root, "settings.json"),
		Log:      filepath.Join(cache, "planswitch.log"),
		Env:      filepath.Join(root, ".env"),
	}
}

// Load resolves the default paths and then loads the root's .env file, if
// present. Variables already set in the environment are not overridden.
func Load() (*Paths, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}
	if err := LoadEnv(paths.Env); err != nil {
		return nil, err
	}
	return paths, nil
}

// LoadEnv loads a dotenv file. A missing file is not an error.
func LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories(fsys fsops.FS) error {
	for _, dir := range []string{p.Root, p.Cache} {
		if err := fsys.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
