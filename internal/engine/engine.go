// Package engine is the plugin façade: the operations the launcher and the
// CLI call.
//
// The engine combines the plan manager with the activation observers. It
// owns the policy that observers are notified only after a successful
// switch, and it is the point where switch failures stop propagating when
// answering the launcher.
package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/danieljhkim/planswitch/internal/cache"
	"github.com/danieljhkim/planswitch/internal/plan"
)

// PlanManager lists and switches plans.
type PlanManager interface {
	ListAll(ctx context.Context) []plan.Record
	GetActive(ctx context.Context) (plan.ID, bool)
	SwitchTo(ctx context.Context, rawID string) error
}

// Notifier fans a plan activation out to observers.
type Notifier interface {
	NotifyAll(ctx context.Context, id plan.ID)
}

// Engine orchestrates all planswitch operations.
// It is the main API surface called by the CLI.
type Engine struct {
	plans    PlanManager
	notifier Notifier
	cache    cache.Store
	logger   *zap.Logger
}

// New creates a new Engine with the given dependencies.
func New(plans PlanManager, notifier Notifier, store cache.Store, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		plans:    plans,
		notifier: notifier,
		cache:    store,
		logger:   logger.Named("engine"),
	}
}
