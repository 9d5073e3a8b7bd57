package layout

import (
	"strings"

	"github.com/jctratt/colls/pkg/colls/ansi"
	"github.com/jctratt/colls/pkg/colls/listing"
)

// arrowMarker is rendered in the arrow column when the entry is a symlink.
const arrowMarker = " -> "

// Renderer renders tokenized lines against batch-global widths. All fields
// are left-aligned and padded on the right; padding in the filename or
// target column is painted reverse-video when it is MaxPad cells or more
// and a later selected column still has visible content, so large
// alignment gaps stand out without leaving artifacts at line end.
type Renderer struct {
	Widths    Widths
	Selection Selection

	// UseQuotes leaves the ls -Q quoting on filenames and targets
	// instead of unwrapping it.
	UseQuotes bool

	// MaxPad is the highlight threshold; 0 disables highlighting.
	MaxPad int
}

// Row renders one field set as an aligned output line.
func (r Renderer) Row(fs listing.FieldSet) string {
	name := fs.Name
	target := fs.Target
	if !r.UseQuotes {
		name = listing.UnwrapQuotes(name, true)
		if visible(target) {
			target = listing.UnwrapQuotes(target, true)
		}
	}

	cols := r.Selection.Columns
	values := make([]string, len(cols))
	for i, c := range cols {
		values[i] = r.resolve(c, fs, name, target)
	}

	var b strings.Builder
	for i, c := range cols {
		if i > 0 {
			b.WriteString(r.Selection.Separator(i - 1))
		}
		b.WriteString(values[i])
		b.WriteString(r.padding(c, values, i))
	}
	return b.String()
}

// Header renders the column identifier characters against the same widths
// and separators as the data rows. Headers are never highlighted.
func (r Renderer) Header() string {
	var b strings.Builder
	for i, c := range r.Selection.Columns {
		if i > 0 {
			b.WriteString(r.Selection.Separator(i - 1))
		}
		b.WriteByte(c)
		b.WriteString(strings.Repeat(" ", pad(r.width(c)-1)))
	}
	return b.String()
}

// resolve maps one selected identifier to its display value.
func (r Renderer) resolve(c byte, fs listing.FieldSet, name, target string) string {
	switch {
	case c >= '1' && c <= '9':
		if c == '9' {
			return name
		}
		return fs.Slot(int(c - '1'))
	case c == '0':
		if visible(target) {
			return arrowMarker
		}
		return strings.Repeat(" ", len(arrowMarker))
	default: // '*'
		if visible(target) {
			return target
		}
		return strings.Repeat(" ", r.Widths.Target)
	}
}

// padding computes the right-padding for column i, reverse-highlighted
// when the gap is large enough and something visible follows it.
func (r Renderer) padding(c byte, values []string, i int) string {
	n := pad(r.width(c) - ansi.Width(values[i]))
	if n == 0 {
		return ""
	}
	spaces := strings.Repeat(" ", n)
	if c != '9' && c != '*' {
		return spaces
	}
	if r.MaxPad <= 0 || n < r.MaxPad || !hasFollowing(values, i) {
		return spaces
	}
	return ansi.LastColor(values[i]) + ansi.Reverse + spaces + ansi.ReverseOff + ansi.Reset
}

// width returns the column width for a selected identifier.
func (r Renderer) width(c byte) int {
	switch {
	case c >= '1' && c <= '9':
		return r.Widths.Cols[c-'1']
	case c == '0':
		return r.Widths.Arrow
	default:
		return r.Widths.Target
	}
}

// hasFollowing reports whether the next selected column has visible
// content. Trailing padding on the last column is never highlighted.
func hasFollowing(values []string, i int) bool {
	return i+1 < len(values) && visible(values[i+1])
}

// visible reports whether s has any visible, non-blank content.
func visible(s string) bool {
	return strings.TrimSpace(ansi.Strip(s)) != ""
}

// pad clamps a padding length to zero. Quoted display values can measure
// wider than the unquoted widths they are aligned against.
func pad(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
