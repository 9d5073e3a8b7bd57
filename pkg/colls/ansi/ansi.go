// Package ansi models the terminal formatting escapes that GNU ls embeds
// in its colored output. Only the sequences ls emits are recognized: SGR
// color runs and erase-in-line, i.e. ESC [ params (m|K). Anything else,
// including an unterminated introducer, is treated as ordinary visible
// text rather than rejected.
package ansi

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Escape sequences used when rendering highlighted padding.
const (
	Reverse    = "\x1b[7m"
	ReverseOff = "\x1b[27m"
	Reset      = "\x1b[0m"
)

const esc = '\x1b'

// span reports the length of the escape sequence starting at s[i], and the
// final byte of the sequence. ok is false when s[i] does not begin a
// well-formed SGR or erase sequence.
func span(s string, i int) (length int, final byte, ok bool) {
	if i+1 >= len(s) || s[i] != esc || s[i+1] != '[' {
		return 0, 0, false
	}
	j := i + 2
	for j < len(s) && (s[j] == ';' || (s[j] >= '0' && s[j] <= '9')) {
		j++
	}
	if j >= len(s) || (s[j] != 'm' && s[j] != 'K') {
		return 0, 0, false
	}
	return j - i + 1, s[j], true
}

// Strip removes every recognized escape span from s, returning only the
// visible characters. It is idempotent: stripping stripped text is a no-op.
func Strip(s string) string {
	if !strings.ContainsRune(s, esc) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if n, _, ok := span(s, i); ok {
			i += n
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// Width returns the display width of the visible characters in s.
func Width(s string) int {
	return runewidth.StringWidth(Strip(s))
}

// LastColor returns the last SGR span in s whose parameters are not a
// reset, or the empty string when every span is a reset or s has none.
// The renderer uses it to re-apply the color ls gave a filename when
// painting highlighted padding after it.
func LastColor(s string) string {
	var last string
	for i := 0; i < len(s); {
		n, final, ok := span(s, i)
		if !ok {
			i++
			continue
		}
		if final == 'm' {
			params := s[i+2 : i+n-1]
			if params != "" && params != "0" {
				last = s[i : i+n]
			}
		}
		i += n
	}
	return last
}
