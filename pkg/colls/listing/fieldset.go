// Package listing decomposes one line of ls -l output into its logical
// fields and undoes the quoting ls -Q wraps around filenames, keeping any
// embedded color escapes intact through both operations.
package listing

// NumSlots is the fixed number of logical fields in a listing line.
const NumSlots = 11

// FieldSet is the fixed decomposition of one listing line. Slots that a
// line does not fill hold the empty string; Arrow and Target hold a single
// space for non-symlink entries so they render as blank columns.
type FieldSet struct {
	Perms  string // 0: permission string, e.g. lrwxrwxrwx
	Links  string // 1: hard link count
	Owner  string // 2: owner name
	Group  string // 3: group name
	Size   string // 4: human-readable size
	Month  string // 5: month of last modification
	Day    string // 6: day of last modification
	Time   string // 7: time or year of last modification
	Name   string // 8: filename, may contain internal whitespace
	Arrow  string // 9: "->" for symlinks, " " otherwise
	Target string // 10: symlink target, " " otherwise
}

// Slot returns the field at the given index, 0 through 10.
// Out-of-range indices return the empty string.
func (fs FieldSet) Slot(i int) string {
	switch i {
	case 0:
		return fs.Perms
	case 1:
		return fs.Links
	case 2:
		return fs.Owner
	case 3:
		return fs.Group
	case 4:
		return fs.Size
	case 5:
		return fs.Month
	case 6:
		return fs.Day
	case 7:
		return fs.Time
	case 8:
		return fs.Name
	case 9:
		return fs.Arrow
	case 10:
		return fs.Target
	default:
		return ""
	}
}
