package engine

import "errors"

var (
	// ErrNoActivePlan indicates the active plan could not be determined.
	ErrNoActivePlan = errors.New("active plan unknown")

	// ErrNoCache indicates the engine was built without a cache store.
	ErrNoCache = errors.New("no cache store configured")
)
