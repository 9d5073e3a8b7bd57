package layout

import (
	"github.com/jctratt/colls/pkg/colls/ansi"
	"github.com/jctratt/colls/pkg/colls/listing"
)

// minArrowWidth fits the literal " -> " marker.
const minArrowWidth = 4

// Widths holds the maximum visible width observed for each column across
// a whole listing batch, plus the two derived widths for the arrow marker
// and the symlink target. It is computed once, before any rendering, and
// read-only afterward.
type Widths struct {
	Cols   [listing.NumSlots]int
	Arrow  int
	Target int
}

// Measure scans every field set and records the maximum visible width per
// column. When stripQuotes is set, the filename and target are unwrapped
// (indicator kept) before measuring so ls -Q quoting never inflates
// alignment. Escape spans contribute zero width throughout.
func Measure(sets []listing.FieldSet, stripQuotes bool) Widths {
	w := Widths{Arrow: minArrowWidth}
	for _, fs := range sets {
		name := fs.Name
		target := fs.Target
		if stripQuotes {
			name = listing.UnwrapQuotes(name, true)
			target = listing.UnwrapQuotes(target, true)
		}
		for i := 0; i < listing.NumSlots; i++ {
			var width int
			switch i {
			case 8:
				width = ansi.Width(name)
			case 10:
				width = ansi.Width(target)
			default:
				width = ansi.Width(fs.Slot(i))
			}
			if width > w.Cols[i] {
				w.Cols[i] = width
			}
		}
		if aw := ansi.Width(fs.Arrow); aw > w.Arrow {
			w.Arrow = aw
		}
		if tw := ansi.Width(target); tw > w.Target {
			w.Target = tw
		}
	}
	return w
}
