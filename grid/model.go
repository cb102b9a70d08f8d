package grid

import "sort"

// Model owns the current grid snapshot of a host text.
//
// A Model is not safe for concurrent use. The snapshot returned by Grid is
// valid until the next Refresh or RefreshRegion.
type Model struct {
	opt Options
	g   *Grid
}

// NewModel returns a Model describing the empty text.
func NewModel(opt Options) *Model {
	opt = opt.normalized()
	return &Model{opt: opt, g: Parse("", opt)}
}

// Options returns the normalized split options.
func (m *Model) Options() Options { return m.opt }

// Grid returns the current snapshot.
func (m *Model) Grid() *Grid { return m.g }

// Refresh replaces the snapshot with a full parse of text.
func (m *Model) Refresh(text string) *Grid {
	m.g = Parse(text, m.opt)
	return m.g
}

// RefreshRegion replaces the snapshot after an edit of the previous text.
//
// changedOffset is where the edit starts and changedLength is the length of
// the content now occupying the edited region in text (0 for a pure
// deletion). Only rows around the edit are rescanned; rows after it are
// reused with shifted offsets once a row boundary lines up with the previous
// snapshot. The result is identical to Refresh(text).
//
// It reports whether the visible layout changed: row count, column count, or
// any row's field lengths.
func (m *Model) RefreshRegion(text string, changedOffset, changedLength int) bool {
	prev := m.g
	m.g = reparse(prev, text, changedOffset, changedLength)
	return layoutChanged(prev, m.g)
}

// Locate resolves offset against the current snapshot.
func (m *Model) Locate(offset int) Location { return m.g.Locate(offset) }

// ColumnCount returns the current maximum column count.
func (m *Model) ColumnCount() int { return m.g.ColumnCount() }

func reparse(prev *Grid, text string, off, n int) *Grid {
	opt := prev.opt
	rs := []rune(text)
	if off < 0 || n < 0 || off > len(rs) || off > len(prev.runes) {
		return newGridFromScan(opt, text, rs)
	}

	delta := len(rs) - len(prev.runes)
	editEnd := off + n
	if editEnd > len(rs) {
		return newGridFromScan(opt, text, rs)
	}
	oldEditEnd := editEnd - delta
	if oldEditEnd < off || oldEditEnd > len(prev.runes) {
		// The notification does not describe a single contiguous edit.
		return newGridFromScan(opt, text, rs)
	}

	brkLen := len([]rune(opt.RowBreak))

	// Rescan from a row whose preceding break ends strictly before the edit,
	// so that a break formed or destroyed by the edit is always seen.
	first := prev.rowAt(off - brkLen)
	from := prev.rows[first].Start

	var tailFrom int
	stop := func(start, _ int) bool {
		if start-brkLen < editEnd {
			return false
		}
		old := start - delta
		i := sort.Search(len(prev.rows), func(i int) bool { return prev.rows[i].Start >= old })
		if i < len(prev.rows) && prev.rows[i].Start == old {
			tailFrom = i
			return true
		}
		return false
	}

	mid, _, synced := scanRows(rs, from, first, opt, stop)

	rows := make([]RowSpan, 0, len(prev.rows)+len(mid))
	rows = append(rows, prev.rows[:first]...)
	rows = append(rows, mid...)
	if synced {
		for _, r := range prev.rows[tailFrom:] {
			rows = append(rows, RowSpan{
				Index:   len(rows),
				Start:   r.Start + delta,
				End:     r.End + delta,
				Columns: r.Columns,
			})
		}
	}
	return newGrid(opt, text, rs, rows)
}

func newGridFromScan(opt Options, text string, rs []rune) *Grid {
	rows, _, _ := scanRows(rs, 0, 0, opt, nil)
	return newGrid(opt, text, rs, rows)
}

func layoutChanged(a, b *Grid) bool {
	if len(a.rows) != len(b.rows) || a.columnCount != b.columnCount {
		return true
	}
	for i := range a.rows {
		ac, bc := a.rows[i].Columns, b.rows[i].Columns
		if len(ac) != len(bc) {
			return true
		}
		for j := range ac {
			if ac[j].Length != bc[j].Length {
				return true
			}
		}
	}
	return false
}
