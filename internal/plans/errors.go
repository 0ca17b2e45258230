package plans

import (
	"errors"

	"github.com/danieljhkim/planswitch/internal/plan"
)

var (
	// ErrInvalidID indicates a switch was requested with a malformed identifier.
	ErrInvalidID = plan.ErrInvalidID

	// ErrToolFailed indicates powercfg could not be run or reported failure.
	ErrToolFailed = errors.New("powercfg failed")
)
