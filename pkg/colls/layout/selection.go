// Package layout turns tokenized listing lines into aligned output: it
// parses the user's column selection, measures column widths across the
// whole batch, and renders each line against those widths.
package layout

import (
	"fmt"
	"strings"
)

// identifiers is the user-facing column vocabulary: digits 1-9 address
// slots 0-8, 0 the symlink arrow, * the symlink target.
const identifiers = "1234567890*"

// DefaultFormat selects every column in canonical order.
const DefaultFormat = "1234567890*"

// ErrNoColumns is returned when a format string selects nothing.
var ErrNoColumns = fmt.Errorf("format selects no columns")

// Selection is an ordered set of column identifiers with the separator to
// place in each gap. There is always exactly one fewer separator than
// columns.
type Selection struct {
	Columns    []byte
	separators []string
}

// ParseSelection parses a format string into a Selection. Identifier
// characters select columns; any literal run between two identifiers
// becomes the separator for that gap, an empty run meaning a single
// space. "951" selects three columns with space separators, "9_5_1" uses
// underscores, "9 - 5 - 1" uses " - ".
func ParseSelection(format string) (Selection, error) {
	var sel Selection
	gap := ""
	for i := 0; i < len(format); i++ {
		c := format[i]
		if strings.IndexByte(identifiers, c) < 0 {
			gap += string(c)
			continue
		}
		if len(sel.Columns) > 0 {
			if gap == "" {
				gap = " "
			}
			sel.separators = append(sel.separators, gap)
		}
		sel.Columns = append(sel.Columns, c)
		gap = ""
	}
	if len(sel.Columns) == 0 {
		return Selection{}, fmt.Errorf("%w: %q", ErrNoColumns, format)
	}
	return sel, nil
}

// DefaultSelection selects all columns with single-space separators.
func DefaultSelection() Selection {
	sel, _ := ParseSelection(DefaultFormat)
	return sel
}

// Separator returns the separator before column i+1. Out-of-range gaps
// fall back to a single space.
func (s Selection) Separator(i int) string {
	if i < 0 || i >= len(s.separators) {
		return " "
	}
	return s.separators[i]
}
