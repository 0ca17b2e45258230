package plan

import (
	"slices"
	"strings"
)

// Well-known plans shipped with Windows.
var (
	PowerSaver      = MustParseID("a1841308-3541-4fab-bc81-f71556f20b4a")
	Balanced        = MustParseID("381b4222-f694-41f0-9685-ff5bb260df2e")
	HighPerformance = MustParseID("8c5e7fda-e8bf-4a96-9a85-a6e23a8c635c")
)

// Metadata is the fallback name and canonical icon of a default plan.
type Metadata struct {
	Name string
	Icon string
}

var defaults = map[ID]Metadata{
	PowerSaver:      {Name: "Power saver", Icon: "Images/power-saver.png"},
	Balanced:        {Name: "Balanced", Icon: "Images/balanced.png"},
	HighPerformance: {Name: "High performance", Icon: "Images/high-performance.png"},
}

// IsDefault reports whether id is one of the well-known plans.
func IsDefault(id ID) bool {
	_, ok := defaults[id]
	return ok
}

// DefaultMetadata returns the embedded metadata for a well-known plan.
func DefaultMetadata(id ID) (Metadata, bool) {
	md, ok := defaults[id]
	return md, ok
}

// DefaultIDs returns the well-known identifiers in canonical string order.
func DefaultIDs() []ID {
	ids := make([]ID, 0, len(defaults))
	for id := range defaults {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b ID) int {
		return strings.Compare(a.String(), b.String())
	})
	return ids
}
