// Package catalog holds the localized table of Windows' default power plans.
//
// The table is built once per install: each well-known plan's display name is
// looked up in the system locale via powercfg, falling back to the embedded
// English name, and the full table is persisted. Later runs adopt the
// persisted table without running powercfg.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/danieljhkim/planswitch/internal/cache"
	"github.com/danieljhkim/planswitch/internal/plan"
)

// Source is the subset of powercfg the catalog queries while building.
type Source interface {
	Query(ctx context.Context, id plan.ID) (string, error)
	List(ctx context.Context) (string, error)
}

type entryDoc struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type plansDoc struct {
	Plans map[string]entryDoc `json:"plans"`
}

// Catalog resolves well-known plan identifiers to localized records.
// It is read-only once constructed.
type Catalog struct {
	records map[plan.ID]plan.Record
}

// New builds a Catalog from explicit records. Records for identifiers that
// are not well-known are ignored.
func New(records ...plan.Record) *Catalog {
	c := &Catalog{records: make(map[plan.ID]plan.Record, len(records))}
	for _, r := range records {
		if plan.IsDefault(r.ID) {
			c.records[r.ID] = r
		}
	}
	return c
}

// Load returns the persisted catalog if it is complete, otherwise builds it
// from src and persists the result. It never fails: a plan whose localized
// name cannot be found keeps its embedded name.
func Load(ctx context.Context, src Source, store cache.Store, logger *zap.Logger) *Catalog {
	logger = logger.Named("catalog")

	c, err := loadCached(store)
	if err == nil {
		logger.Debug("using cached default plans")
		return c
	}
	logger.Debug("default plan cache unusable, rebuilding", zap.Error(err))

	c = build(ctx, src, logger)
	if err := store.Save(cache.DefaultPlansDoc, c.doc()); err != nil {
		logger.Warn("failed to persist default plans", zap.Error(err))
	}
	return c
}

// IsDefault reports whether id is a well-known plan.
func (c *Catalog) IsDefault(id plan.ID) bool {
	return plan.IsDefault(id)
}

// DefaultIDs returns every well-known identifier.
func (c *Catalog) DefaultIDs() []plan.ID {
	return plan.DefaultIDs()
}

// Lookup returns the localized record for a well-known plan.
func (c *Catalog) Lookup(id plan.ID) (plan.Record, bool) {
	r, ok := c.records[id]
	return r, ok
}

func loadCached(store cache.Store) (*Catalog, error) {
	var doc plansDoc
	if err := store.Load(cache.DefaultPlansDoc, &doc); err != nil {
		return nil, err
	}
	if len(doc.Plans) == 0 {
		return nil, fmt.Errorf("%w: no plans in %s", cache.ErrMiss, cache.DefaultPlansDoc)
	}

	byID := make(map[plan.ID]entryDoc, len(doc.Plans))
	for key, e := range doc.Plans {
		id, err := plan.ParseID(key)
		if err != nil {
			continue
		}
		byID[id] = e
	}

	records := make([]plan.Record, 0, len(byID))
	for _, id := range plan.DefaultIDs() {
		e, ok := byID[id]
		if !ok || strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("%w: %s missing or unnamed in %s", cache.ErrMiss, id, cache.DefaultPlansDoc)
		}
		icon := e.Icon
		if icon == "" {
			md, _ := plan.DefaultMetadata(id)
			icon = md.Icon
		}
		records = append(records, plan.Record{ID: id, Name: e.Name, Icon: icon})
	}
	return New(records...), nil
}

func build(ctx context.Context, src Source, logger *zap.Logger) *Catalog {
	l := &localizer{src: src, logger: logger}

	records := make([]plan.Record, 0, len(plan.DefaultIDs()))
	for _, id := range plan.DefaultIDs() {
		md, _ := plan.DefaultMetadata(id)
		name, ok := l.name(ctx, id)
		if !ok {
			logger.Debug("no localized name, using embedded name", zap.Stringer("plan", id), zap.String("name", md.Name))
			name = md.Name
		}
		records = append(records, plan.Record{ID: id, Name: name, Icon: md.Icon})
	}
	return New(records...)
}

func (c *Catalog) doc() plansDoc {
	doc := plansDoc{Plans: make(map[string]entryDoc, len(c.records))}
	for id, r := range c.records {
		doc.Plans[id.String()] = entryDoc{Name: r.Name, Icon: r.Icon}
	}
	return doc
}

// localizer finds a plan's name in the system locale. It asks powercfg about
// the plan directly, then falls back to the full listing, which is fetched at
// most once per build.
type localizer struct {
	src    Source
	logger *zap.Logger

	listed  bool
	listOut string
	listErr error
}

func (l *localizer) name(ctx context.Context, id plan.ID) (string, bool) {
	out, err := l.src.Query(ctx, id)
	if err != nil {
		l.logger.Debug("plan query failed", zap.Stringer("plan", id), zap.Error(err))
	} else if name, ok := match(out, id); ok {
		return name, true
	}

	if !l.listed {
		l.listOut, l.listErr = l.src.List(ctx)
		l.listed = true
		if l.listErr != nil {
			l.logger.Debug("plan listing failed", zap.Error(l.listErr))
		}
	}
	if l.listErr != nil {
		return "", false
	}
	return match(l.listOut, id)
}

// match returns the name of the last entry in output whose GUID equals id.
func match(output string, id plan.ID) (string, bool) {
	name, found := "", false
	for _, e := range plan.Scan(output) {
		if e.ID == id {
			name, found = e.Name, true
		}
	}
	return name, found
}
