// Package observer dispatches power plan activations to independent
// observers. Each observer runs in registration order and is isolated from
// the others: an error or panic in one is logged and discarded.
package observer

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/danieljhkim/planswitch/internal/plan"
)

// Observer reacts to a successful plan switch.
type Observer interface {
	// Name identifies the observer in logs.
	Name() string

	// OnActivated is called after the plan with the given id became active.
	OnActivated(ctx context.Context, id plan.ID) error
}

// Func adapts a function to the Observer interface.
type Func struct {
	Label string
	Fn    func(ctx context.Context, id plan.ID) error
}

// Name returns the label.
func (f Func) Name() string { return f.Label }

// OnActivated calls Fn.
func (f Func) OnActivated(ctx context.Context, id plan.ID) error {
	if f.Fn == nil {
		return nil
	}
	return f.Fn(ctx, id)
}

// NoOp ignores every activation.
type NoOp struct{}

// Name returns "noop".
func (NoOp) Name() string { return "noop" }

// OnActivated does nothing.
func (NoOp) OnActivated(context.Context, plan.ID) error { return nil }

// Registry holds observers in registration order.
type Registry struct {
	mu        sync.Mutex
	observers []Observer
	logger    *zap.Logger
}

// NewRegistry creates an empty Registry.
func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{logger: logger.Named("observer")}
}

// Register appends an observer. Nil observers are ignored.
func (r *Registry) Register(o Observer) {
	if o == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, o)
}

// Len returns the number of registered observers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.observers)
}

// NotifyAll calls OnActivated on every observer in registration order. It
// never fails; per-observer failures are logged.
func (r *Registry) NotifyAll(ctx context.Context, id plan.ID) {
	r.mu.Lock()
	observers := make([]Observer, len(r.observers))
	copy(observers, r.observers)
	r.mu.Unlock()

	for _, o := range observers {
		if err := notify(ctx, o, id); err != nil {
			r.logger.Warn("observer failed",
				zap.String("observer", o.Name()),
				zap.Stringer("plan", id),
				zap.Error(err))
		}
	}
}

func notify(ctx context.Context, o Observer, id plan.ID) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return o.OnActivated(ctx, id)
}
