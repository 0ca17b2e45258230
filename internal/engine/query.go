package engine

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/danieljhkim/planswitch/internal/plan"
)

// Query lists the plans whose display name contains text, ignoring case.
// An empty text matches every plan. The active plan's title is marked with
// ActiveSuffix. When nothing matches, a single informational item without a
// plan is returned.
func (e *Engine) Query(ctx context.Context, text string) *QueryResult {
	records := e.plans.ListAll(ctx)
	active, hasActive := e.plans.GetActive(ctx)

	fold := cases.Fold()
	needle := fold.String(text)

	result := &QueryResult{Query: text}
	for i := range records {
		r := records[i]
		if needle != "" && !strings.Contains(fold.String(r.Name), needle) {
			continue
		}
		title := r.Name
		if hasActive && r.ID == active {
			title += ActiveSuffix
		}
		result.Items = append(result.Items, Item{
			Title:    title,
			SubTitle: fmt.Sprintf(switchFormat, r.Name),
			Icon:     r.Icon,
			Plan:     &r,
		})
	}

	if len(result.Items) == 0 {
		result.Items = []Item{{
			Title:    NoMatchTitle,
			SubTitle: fmt.Sprintf(noMatchFormat, text),
			Icon:     plan.GenericIcon,
		}}
	}
	return result
}

// List returns every plan and marks the active one.
func (e *Engine) List(ctx context.Context) *ListResult {
	records := e.plans.ListAll(ctx)
	active, hasActive := e.plans.GetActive(ctx)

	result := &ListResult{Plans: make([]PlanInfo, 0, len(records))}
	if hasActive {
		result.Active = &active
	}
	for _, r := range records {
		result.Plans = append(result.Plans, PlanInfo{Record: r, Active: hasActive && r.ID == active})
	}
	return result
}

// Active returns the active plan. If the plan is not among the listed plans
// the record carries only its identifier and the generic icon.
func (e *Engine) Active(ctx context.Context) (*PlanInfo, error) {
	id, ok := e.plans.GetActive(ctx)
	if !ok {
		return nil, ErrNoActivePlan
	}
	for _, r := range e.plans.ListAll(ctx) {
		if r.ID == id {
			return &PlanInfo{Record: r, Active: true}, nil
		}
	}
	return &PlanInfo{Record: plan.Record{ID: id, Icon: plan.GenericIcon}, Active: true}, nil
}
