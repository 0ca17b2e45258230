package plan

import (
	"regexp"
	"strings"
)

var guidPattern = regexp.MustCompile(`(?i)[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)

// Entry is one "<GUID>  (<name>)" pair found in tool output.
type Entry struct {
	ID   ID
	Name string
}

// Scan extracts every GUID followed by a parenthesized name, one per line, in
// output order. Lines without a GUID, or whose GUID is not followed by a
// balanced parenthesized name, are skipped. Duplicates are kept; callers
// decide the tie-break.
func Scan(output string) []Entry {
	var entries []Entry
	for _, line := range strings.Split(output, "\n") {
		if e, ok := scanLine(strings.TrimRight(line, "\r")); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

// FirstID returns the first GUID anywhere in output.
func FirstID(output string) (ID, bool) {
	m := guidPattern.FindString(output)
	if m == "" {
		return ID{}, false
	}
	id, err := ParseID(m)
	if err != nil {
		return ID{}, false
	}
	return id, true
}

func scanLine(line string) (Entry, bool) {
	loc := guidPattern.FindStringIndex(line)
	if loc == nil {
		return Entry{}, false
	}
	id, err := ParseID(line[loc[0]:loc[1]])
	if err != nil {
		return Entry{}, false
	}

	rest := strings.TrimLeft(line[loc[1]:], " \t")
	if !strings.HasPrefix(rest, "(") {
		return Entry{}, false
	}

	// Walk to the parenthesis matching the opening one so names such as
	// "Quiet (fans off)" survive intact.
	depth := 0
	for i, r := range rest {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				name := strings.TrimSpace(rest[1:i])
				if name == "" {
					return Entry{}, false
				}
				return Entry{ID: id, Name: name}, true
			}
		}
	}
	return Entry{}, false
}
