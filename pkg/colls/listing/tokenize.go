package listing

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jctratt/colls/pkg/colls/ansi"
)

// arrowSep separates a symlink name from its target in ls output.
const arrowSep = " -> "

// maxSplits is the number of whitespace splits before the filename unit:
// everything after the 8th delimiter belongs to the filename, which may
// itself contain spaces.
const maxSplits = 8

// splitUnits splits a line on runs of whitespace, stopping after max
// splits so the remainder is returned as a single trailing unit.
func splitUnits(line string, max int) []string {
	line = strings.TrimSpace(line)
	var units []string
	i := 0
	for len(units) < max && i < len(line) {
		i += skipSpace(line[i:], true)
		start := i
		i += skipSpace(line[i:], false)
		if i > start {
			units = append(units, line[start:i])
		}
	}
	i += skipSpace(line[i:], true)
	if i < len(line) {
		units = append(units, line[i:])
	}
	return units
}

// skipSpace returns the byte length of the leading run of whitespace
// (or non-whitespace, when space is false). Decoding full runes keeps
// multi-byte owners, groups, and localized month names intact.
func skipSpace(s string, space bool) int {
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) != space {
			break
		}
		i += size
	}
	return i
}

// IsSummary reports whether line is the leading "total N" line ls prints
// before the entries. It is passed through verbatim by callers.
func IsSummary(line string) bool {
	return strings.HasPrefix(line, "total")
}

// IsEntry reports whether line has enough whitespace-delimited fields to
// be a listing entry. Lines that fail this check are passed through
// unmodified and excluded from width measurement and the file count.
func IsEntry(line string) bool {
	return len(splitUnits(line, maxSplits)) > maxSplits
}

// Tokenize splits one raw listing line into its 11 logical fields. It
// never fails: a line with too few fields yields a FieldSet padded with
// empty strings. The symlink arrow is detected on the escape-stripped view
// of the filename unit but split on the raw text, so no escape span is
// ever bisected.
func Tokenize(line string) FieldSet {
	units := splitUnits(line, maxSplits)
	for len(units) < maxSplits+1 {
		units = append(units, "")
	}

	var fs FieldSet
	fs.Perms = units[0]
	fs.Links = units[1]
	fs.Owner = units[2]
	fs.Group = units[3]
	fs.Size = units[4]
	fs.Month = units[5]
	fs.Day = units[6]
	fs.Time = units[7]

	name := units[8]
	fs.Name, fs.Arrow, fs.Target = name, " ", " "
	if strings.Contains(ansi.Strip(name), arrowSep) {
		if idx := strings.Index(name, arrowSep); idx >= 0 {
			fs.Name = name[:idx]
			fs.Arrow = "->"
			fs.Target = name[idx+len(arrowSep):]
		}
	}
	return fs
}
