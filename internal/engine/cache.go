package engine

import (
	"fmt"

	"github.com/danieljhkim/planswitch/internal/cache"
)

// ClearCache deletes the encoding, catalog and hardware detection caches.
// They are rebuilt on the next run.
func (e *Engine) ClearCache() error {
	if e.cache == nil {
		return ErrNoCache
	}
	if err := cache.ClearAll(e.cache); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	e.logger.Info("cache cleared")
	return nil
}
