package listing

import (
	"strings"

	"github.com/jctratt/colls/pkg/colls/ansi"
)

// Indicators are the type suffixes ls -F appends to a filename: executable,
// directory, symlink, FIFO, socket.
const Indicators = "*/@|="

// UnwrapQuotes removes the outer pair of quotes ls -Q wraps around a
// filename or symlink target. Quote characters inside the filename stay,
// escape spans before the opening quote or after the closing quote stay,
// and a type indicator immediately following the closing quote is kept
// when keepIndicator is true and dropped otherwise.
//
// Quote detection runs on the escape-stripped view so a color escape
// before the opening quote does not hide it; the outer pair itself is
// located in the raw text so content and escapes are sliced intact.
// A column that is not quoted is returned unchanged.
func UnwrapQuotes(col string, keepIndicator bool) string {
	if col == "" {
		return col
	}

	clean := ansi.Strip(col)
	if !strings.HasPrefix(clean, `"`) || !strings.Contains(clean[1:], `"`) {
		return col
	}

	start := strings.IndexByte(col, '"')
	end := strings.LastIndexByte(col, '"') + 1
	content := col[start+1 : end-1]

	indicator := ""
	if end < len(col) && strings.IndexByte(Indicators, col[end]) >= 0 {
		indicator = col[end : end+1]
	}

	var b strings.Builder
	b.Grow(len(col))
	b.WriteString(col[:start])
	b.WriteString(content)
	if keepIndicator {
		b.WriteString(indicator)
	}

	// Anything after the indicator that is not a stray quote is kept, so
	// escapes that re-color subsequent padding survive the unwrap.
	tail := col[end+len(indicator):]
	if tail != "" && !strings.HasPrefix(tail, `"`) {
		b.WriteString(tail)
	}
	return b.String()
}
