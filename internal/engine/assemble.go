package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/danieljhkim/planswitch/internal/cache"
	"github.com/danieljhkim/planswitch/internal/catalog"
	"github.com/danieljhkim/planswitch/internal/codepage"
	"github.com/danieljhkim/planswitch/internal/config"
	"github.com/danieljhkim/planswitch/internal/fsops"
	"github.com/danieljhkim/planswitch/internal/legion"
	"github.com/danieljhkim/planswitch/internal/observer"
	"github.com/danieljhkim/planswitch/internal/plans"
	"github.com/danieljhkim/planswitch/internal/powercfg"
	"github.com/danieljhkim/planswitch/internal/runner"
)

// Dependencies are the system-facing pieces an Engine is assembled from.
type Dependencies struct {
	Runner runner.Runner
	FS     fsops.FS
	Paths  *config.Paths
	Logger *zap.Logger

	// LEDEnabled, when set, overrides the settings file
	LEDEnabled *bool
}

// Assemble wires the encoding resolver, catalog, plan manager and observers
// on top of deps. Caches and settings are read from, and bootstrapped under,
// deps.Paths.
func Assemble(ctx context.Context, deps Dependencies) (*Engine, error) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := deps.Paths.EnsureDirectories(deps.FS); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	store := cache.NewFileStore(deps.FS, deps.Paths.Cache)
	codec := codepage.Resolve(ctx, deps.Runner, store, logger)
	tool := powercfg.New(deps.Runner, codec)
	cat := catalog.Load(ctx, tool, store, logger)
	manager := plans.NewManager(tool, cat, logger)

	settings, err := config.LoadSettings(deps.FS, deps.Paths.Settings)
	if err != nil {
		logger.Warn("settings unusable, using defaults", zap.Error(err))
	}
	if deps.LEDEnabled != nil {
		settings.LegionLEDEnabled = *deps.LEDEnabled
	}

	registry := observer.NewRegistry(logger)
	if settings.LegionLEDEnabled {
		registry.Register(legion.New(legion.NewWMICDetector(deps.Runner), store, legion.DefaultSurfaces(deps.Runner), logger))
	}

	return New(manager, registry, store, logger), nil
}
