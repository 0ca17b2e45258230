package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/danieljhkim/planswitch/internal/plan"
)

// Switch activates the plan with the given identifier and, on success,
// notifies every observer. Observers are not notified when the switch fails.
func (e *Engine) Switch(ctx context.Context, rawID string) (*SwitchResult, error) {
	if err := e.plans.SwitchTo(ctx, rawID); err != nil {
		return nil, err
	}

	// SwitchTo already validated the identifier.
	id, err := plan.ParseID(rawID)
	if err != nil {
		return nil, err
	}
	e.notifier.NotifyAll(ctx, id)

	result := &SwitchResult{Plan: id}
	for _, r := range e.plans.ListAll(ctx) {
		if r.ID == id {
			result.Name = r.Name
			break
		}
	}
	return result, nil
}

// SwitchTo is the launcher's switch action. Failures are logged and
// otherwise ignored; the launcher has no way to show them.
func (e *Engine) SwitchTo(ctx context.Context, rawID string) {
	if err := e.plans.SwitchTo(ctx, rawID); err != nil {
		e.logger.Warn("switch failed", zap.String("plan", rawID), zap.Error(err))
		return
	}
	id, err := plan.ParseID(rawID)
	if err != nil {
		return
	}
	e.notifier.NotifyAll(ctx, id)
}
