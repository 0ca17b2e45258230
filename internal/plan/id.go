package plan

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidID indicates a string is not a hyphenated 36-character GUID.
var ErrInvalidID = errors.New("invalid plan identifier")

// ID identifies a power plan. The zero value is not a valid plan.
type ID = uuid.UUID

// ParseID parses the textual form xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx in
// any letter case. Braced, URN and unhyphenated forms are rejected.
func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if len(s) != 36 {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q: %v", ErrInvalidID, s, err)
	}
	if id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: nil GUID", ErrInvalidID)
	}
	return id, nil
}

// MustParseID is ParseID for compile-time constants.
func MustParseID(s string) ID {
	id, err := ParseID(s)
	if err != nil {
		panic(err)
	}
	return id
}
