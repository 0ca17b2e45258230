// Package legion drives the power button LED on Lenovo Legion laptops so its
// colour reflects the active power plan.
package legion

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/danieljhkim/planswitch/internal/cache"
	"github.com/danieljhkim/planswitch/internal/plan"
)

// ErrNoSurface indicates every control surface failed to set the LED.
var ErrNoSurface = errors.New("no LED control surface succeeded")

// DefaultAttemptTimeout bounds each control surface attempt.
const DefaultAttemptTimeout = 2 * time.Second

// State is the applicability state of an Observer.
type State int

const (
	Uninitialized State = iota
	NotApplicable
	Applicable
)

func (s State) String() string {
	switch s {
	case NotApplicable:
		return "not-applicable"
	case Applicable:
		return "applicable"
	default:
		return "uninitialized"
	}
}

type vendorDoc struct {
	IsLenovoSystem *bool `json:"is_lenovo_system"`
}

// Observer updates the power LED after a plan activation. Hardware detection
// runs on the first notification and its result is cached, so on machines
// that are not a Legion every later notification is a no-op.
type Observer struct {
	detector Detector
	store    cache.Store
	surfaces []Surface
	timeout  time.Duration
	logger   *zap.Logger

	mu    sync.Mutex
	state State
}

// Option configures an Observer.
type Option func(*Observer)

// WithAttemptTimeout overrides DefaultAttemptTimeout.
func WithAttemptTimeout(d time.Duration) Option {
	return func(o *Observer) { o.timeout = d }
}

// New creates an Observer in the Uninitialized state.
func New(detector Detector, store cache.Store, surfaces []Surface, logger *zap.Logger, opts ...Option) *Observer {
	if logger == nil {
		logger = zap.NewNop()
	}
	o := &Observer{
		detector: detector,
		store:    store,
		surfaces: surfaces,
		timeout:  DefaultAttemptTimeout,
		logger:   logger.Named("legion"),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Name identifies the observer in logs.
func (o *Observer) Name() string { return "lenovo-legion-led" }

// State returns the current applicability state.
func (o *Observer) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// OnActivated sets the LED colour for id. Plans without a colour are ignored
// and do not trigger hardware detection.
func (o *Observer) OnActivated(ctx context.Context, id plan.ID) error {
	color, ok := ColorFor(id)
	if !ok {
		o.logger.Debug("no LED colour for plan", zap.Stringer("plan", id))
		return nil
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state == Uninitialized {
		o.state = o.initialize(ctx)
	}
	if o.state != Applicable {
		return nil
	}
	return o.apply(ctx, color)
}

func (o *Observer) initialize(ctx context.Context) State {
	var doc vendorDoc
	if err := o.store.Load(cache.VendorDoc, &doc); err == nil && doc.IsLenovoSystem != nil {
		return stateFor(*doc.IsLenovoSystem)
	}

	ok, err := o.detector.Detect(ctx)
	if err != nil {
		o.logger.Debug("hardware detection failed", zap.Error(err))
	}
	if err := o.store.Save(cache.VendorDoc, vendorDoc{IsLenovoSystem: &ok}); err != nil {
		o.logger.Warn("failed to persist hardware detection", zap.Error(err))
	}
	o.logger.Info("hardware detected", zap.Bool("legion", ok))
	return stateFor(ok)
}

func stateFor(legion bool) State {
	if legion {
		return Applicable
	}
	return NotApplicable
}

// apply tries each surface in order and stops at the first success.
func (o *Observer) apply(ctx context.Context, c Color) error {
	for _, s := range o.surfaces {
		err := o.attempt(ctx, s, c)
		if err == nil {
			o.logger.Debug("LED updated", zap.String("surface", s.Name()), zap.Stringer("color", c))
			return nil
		}
		o.logger.Debug("LED surface failed", zap.String("surface", s.Name()), zap.Error(err))
	}
	return fmt.Errorf("%w (color %s)", ErrNoSurface, c)
}

func (o *Observer) attempt(ctx context.Context, s Surface, c Color) error {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()
	return s.SetPowerLED(ctx, c)
}
