// Package logging builds the plugin's zap logger.
//
// Stdout carries the JSON-RPC response, so logs go to a file under the cache
// directory and never to the console.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = zapcore.InfoLevel

// ParseLevel parses a level name such as "debug" or "warn".
// An empty string yields DefaultLevel.
func ParseLevel(s string) (zapcore.Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultLevel, nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return DefaultLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}

// NewFile creates a JSON logger appending to path. The returned close
// function syncs and closes the file.
func NewFile(path string, level zapcore.Level) (*zap.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), level)
	logger := zap.New(core, zap.ErrorOutput(zapcore.AddSync(f)))

	closeFn := func() {
		_ = logger.Sync()
		_ = f.Close()
	}
	return logger, closeFn, nil
}

// New returns a file logger, or a no-op logger if the file cannot be opened
// or the level is invalid. Logging never prevents the plugin from answering.
func New(path, level string) (*zap.Logger, func()) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zap.NewNop(), func() {}
	}
	logger, closeFn, err := NewFile(path, lvl)
	if err != nil {
		return zap.NewNop(), func() {}
	}
	return logger, closeFn
}
