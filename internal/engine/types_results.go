package engine

import "github.com/danieljhkim/planswitch/internal/plan"

// Result titles shown when nothing matches a query.
const (
	NoMatchTitle  = "No matching power plan found"
	ActiveSuffix  = " (active)"
	noMatchFormat = "No power plan matches '%s'."
	switchFormat  = "Switch to '%s'"
)

// PlanInfo is a plan together with its activation state.
type PlanInfo struct {
	plan.Record

	// Active reports whether this is the active plan
	Active bool `json:"active"`
}

// Item is one entry of a query answer.
type Item struct {
	Title    string `json:"title"`
	SubTitle string `json:"subtitle"`
	Icon     string `json:"icon"`

	// Plan is the plan selecting this item switches to; nil for the
	// no-match item.
	Plan *plan.Record `json:"plan,omitempty"`
}

// QueryResult is the answer to a launcher query.
type QueryResult struct {
	// Query is the text that was searched for
	Query string `json:"query"`

	// Items are the entries to show, never empty
	Items []Item `json:"items"`
}

// ListResult lists every plan.
type ListResult struct {
	Plans []PlanInfo `json:"plans"`

	// Active is the active plan's identifier, if known
	Active *plan.ID `json:"active,omitempty"`
}

// SwitchResult describes a completed switch.
type SwitchResult struct {
	Plan plan.ID `json:"plan"`

	// Name is the display name of the plan, if it was listed
	Name string `json:"name,omitempty"`
}
