// Package plans lists, inspects and switches Windows power plans.
//
// The Manager is a pure listing/switching primitive: it does not notify
// activation observers. The caller decides what happens after a switch.
package plans

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/danieljhkim/planswitch/internal/plan"
)

// Tool is the subset of powercfg the manager drives.
type Tool interface {
	List(ctx context.Context) (string, error)
	ActiveScheme(ctx context.Context) (string, error)
	SetActive(ctx context.Context, id plan.ID) error
}

// Catalog resolves well-known plans to localized records.
type Catalog interface {
	IsDefault(id plan.ID) bool
	DefaultIDs() []plan.ID
	Lookup(id plan.ID) (plan.Record, bool)
}

// Manager lists and switches power plans.
type Manager struct {
	tool    Tool
	catalog Catalog
	logger  *zap.Logger
}

// NewManager creates a Manager.
func NewManager(tool Tool, catalog Catalog, logger *zap.Logger) *Manager {
	return &Manager{
		tool:    tool,
		catalog: catalog,
		logger:  logger.Named("plans"),
	}
}

// ListAll returns every plan on the system plus any well-known plan the
// system did not report, one record per identifier, sorted by display name.
//
// Default plans take their name and icon from the catalog rather than from
// powercfg. When powercfg reports the same GUID more than once the last line
// wins; powercfg gives no ordering guarantee, so this is a tie-break, not a
// reproduction of any particular system behaviour.
//
// If powercfg cannot be run the listing degrades to the catalog's defaults.
func (m *Manager) ListAll(ctx context.Context) []plan.Record {
	out, err := m.tool.List(ctx)
	if err != nil {
		m.logger.Warn("plan listing failed, showing default plans only", zap.Error(err))
		return sortRecords(m.defaultsExcept(nil))
	}

	var records []plan.Record
	index := make(map[plan.ID]int)
	for _, e := range plan.Scan(out) {
		rec := m.record(e)
		if i, seen := index[e.ID]; seen {
			m.logger.Debug("duplicate plan in listing, last one wins", zap.Stringer("plan", e.ID))
			records[i] = rec
			continue
		}
		index[e.ID] = len(records)
		records = append(records, rec)
	}

	records = append(records, m.defaultsExcept(index)...)
	return sortRecords(records)
}

// GetActive returns the identifier of the active plan.
func (m *Manager) GetActive(ctx context.Context) (plan.ID, bool) {
	out, err := m.tool.ActiveScheme(ctx)
	if err != nil {
		m.logger.Debug("active plan query failed", zap.Error(err))
		return plan.ID{}, false
	}
	id, ok := plan.FirstID(out)
	if !ok {
		m.logger.Debug("active plan output has no GUID", zap.String("output", out))
	}
	return id, ok
}

// SwitchTo activates the plan with the given identifier. Failures are
// reported, not retried; callers treat the switch as best-effort.
func (m *Manager) SwitchTo(ctx context.Context, rawID string) error {
	id, err := plan.ParseID(rawID)
	if err != nil {
		return err
	}
	if err := m.tool.SetActive(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", ErrToolFailed, err)
	}
	m.logger.Info("switched power plan", zap.Stringer("plan", id))
	return nil
}

func (m *Manager) record(e plan.Entry) plan.Record {
	if m.catalog.IsDefault(e.ID) {
		if rec, ok := m.catalog.Lookup(e.ID); ok {
			return rec
		}
	}
	return plan.Record{ID: e.ID, Name: e.Name, Icon: plan.GenericIcon}
}

// defaultsExcept returns catalog records for well-known plans not in seen.
func (m *Manager) defaultsExcept(seen map[plan.ID]int) []plan.Record {
	var records []plan.Record
	for _, id := range m.catalog.DefaultIDs() {
		if _, ok := seen[id]; ok {
			continue
		}
		if rec, ok := m.catalog.Lookup(id); ok {
			records = append(records, rec)
		}
	}
	return records
}

// sortRecords orders by display name, then identifier, so the order is total.
func sortRecords(records []plan.Record) []plan.Record {
	slices.SortStableFunc(records, func(a, b plan.Record) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
	return records
}
