package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/jctratt/colls/pkg/colls/layout"
	"github.com/jctratt/colls/pkg/colls/listing"
	"github.com/jctratt/colls/pkg/colls/logging"
)

// pipeline reformats one batch of ls output. Processing is strictly
// two-pass: every entry is measured before any line is rendered, because
// alignment is column-global.
type pipeline struct {
	Selection  layout.Selection
	UseQuotes  bool
	ShowHeader bool
	MaxPad     int
	Quiet      bool
}

// Render writes the reformatted listing to w. The leading "total" summary
// and any line that is not a listing entry pass through verbatim and do
// not count toward the trailing file count. Quiet drops the count line.
func (p pipeline) Render(w io.Writer, lines []string) {
	logger := logging.Get("pipeline")

	if len(lines) > 0 && listing.IsSummary(lines[0]) {
		fmt.Fprintln(w, lines[0])
		lines = lines[1:]
	}

	sets := make([]listing.FieldSet, 0, len(lines))
	for _, line := range lines {
		if listing.IsEntry(line) {
			sets = append(sets, listing.Tokenize(line))
		}
	}
	// Widths are always measured with quotes stripped so quoting never
	// skews alignment, even when quotes are displayed.
	widths := layout.Measure(sets, true)
	logger.Debug("measured batch", "lines", len(lines), "entries", len(sets))

	r := layout.Renderer{
		Widths:    widths,
		Selection: p.Selection,
		UseQuotes: p.UseQuotes,
		MaxPad:    p.MaxPad,
	}

	if p.ShowHeader {
		fmt.Fprintln(w, r.Header())
	}

	count := 0
	for _, line := range lines {
		if listing.IsEntry(line) {
			fmt.Fprintln(w, r.Row(sets[count]))
			count++
		} else {
			fmt.Fprintln(w, line)
		}
	}
	if !p.Quiet {
		fmt.Fprintf(w, "%s found\n", humanize.Comma(int64(count)))
	}
}
