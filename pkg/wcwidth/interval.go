package wcwidth

import "fmt"

// Interval is an inclusive range of codepoints, [First, Last].
type Interval struct {
	First, Last rune
}

func (iv Interval) String() string {
	return fmt.Sprintf("U+%04X..U+%04X", iv.First, iv.Last)
}

// Table is an immutable sequence of intervals, sorted in ascending order and
// non-overlapping. The zero value is an empty table.
type Table struct {
	ivs []Interval
}

// InvalidTableError is returned by NewTable when the intervals do not form a
// valid table.
type InvalidTableError struct {
	Index  int
	Reason string
}

func (e *InvalidTableError) Error() string {
	return fmt.Sprintf("invalid interval table at index %d: %s", e.Index, e.Reason)
}

// NewTable builds a Table from the given intervals, which must each have
// First <= Last and be strictly increasing. The intervals are copied.
func NewTable(ivs ...Interval) (Table, error) {
	for i, iv := range ivs {
		if iv.First > iv.Last {
			return Table{}, &InvalidTableError{i, fmt.Sprintf("%v is reversed", iv)}
		}
		if i > 0 && ivs[i-1].Last >= iv.First {
			return Table{}, &InvalidTableError{
				i, fmt.Sprintf("%v overlaps or precedes %v", iv, ivs[i-1])}
		}
	}
	return Table{append([]Interval(nil), ivs...)}, nil
}

// MustNewTable is like NewTable, but panics on error. It is used for the
// compiled-in tables.
func MustNewTable(ivs ...Interval) Table {
	t, err := NewTable(ivs...)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of intervals in the table.
func (t Table) Len() int { return len(t.ivs) }

// At returns the i-th interval.
func (t Table) At(i int) Interval { return t.ivs[i] }

// All returns a copy of all the intervals.
func (t Table) All() []Interval { return append([]Interval(nil), t.ivs...) }

// Contains reports whether r falls in any interval of the table, using binary
// search.
func (t Table) Contains(r rune) bool {
	ivs := t.ivs
	if len(ivs) == 0 || r < ivs[0].First || r > ivs[len(ivs)-1].Last {
		return false
	}
	low, high := 0, len(ivs)-1
	for low <= high {
		mid := (low + high) / 2
		if r > ivs[mid].Last {
			low = mid + 1
		} else if r < ivs[mid].First {
			high = mid - 1
		} else {
			return true
		}
	}
	return false
}
