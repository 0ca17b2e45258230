package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/danieljhkim/planswitch/internal/config"
	"github.com/danieljhkim/planswitch/internal/engine"
	"github.com/danieljhkim/planswitch/internal/fsops"
	"github.com/danieljhkim/planswitch/internal/logging"
	"github.com/danieljhkim/planswitch/internal/runner"
)

// engineOptions adjust how the engine is assembled for one invocation.
type engineOptions struct {
	// ledEnabled, when set, overrides the settings file
	ledEnabled *bool
}

// engineFactory builds the engine and returns a function releasing its
// resources. Tests replace it.
var engineFactory = newEngine

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine(ctx context.Context, opts engineOptions) (*engine.Engine, func(), error) {
	paths, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	logger, closeLog := logging.New(paths.Log, os.Getenv(config.EnvLogLevel))

	eng, err := engine.Assemble(ctx, engine.Dependencies{
		Runner:     runner.NewExecRunner(),
		FS:         fsops.NewRealFS(),
		Paths:      paths,
		Logger:     logger,
		LEDEnabled: opts.ledEnabled,
	})
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	return eng, closeLog, nil
}

// withEngine builds the engine, runs fn and releases the engine.
func withEngine(ctx context.Context, opts engineOptions, fn func(*engine.Engine) error) error {
	eng, closeFn, err := engineFactory(ctx, opts)
	if err != nil {
		return err
	}
	defer closeFn()
	return fn(eng)
}

// formatJSON formats a value as JSON.
func formatJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// formatError formats an error for display.
func formatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
