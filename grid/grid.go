package grid

import "sort"

// Grid is an immutable row/column snapshot of a text.
type Grid struct {
	opt         Options
	text        string
	runes       []rune
	rows        []RowSpan
	columnCount int
}

// Parse scans text once and returns its grid.
func Parse(text string, opt Options) *Grid {
	opt = opt.normalized()
	rs := []rune(text)
	rows, _, _ := scanRows(rs, 0, 0, opt, nil)
	return newGrid(opt, text, rs, rows)
}

func newGrid(opt Options, text string, rs []rune, rows []RowSpan) *Grid {
	g := &Grid{
		opt:   opt,
		text:  text,
		runes: rs,
		rows:  rows,
	}
	for _, r := range rows {
		if n := len(r.Columns); n > g.columnCount {
			g.columnCount = n
		}
	}
	return g
}

// scanRows splits rs into rows starting at from, which must be a row start.
//
// stop is consulted at every subsequent row start; when it returns true the
// scan ends and scanRows reports the start offset and index of that row.
func scanRows(rs []rune, from, index int, opt Options, stop func(start, index int) bool) (rows []RowSpan, stopStart int, stopped bool) {
	brk := []rune(opt.RowBreak)
	start := from
	for {
		row, end := scanRow(rs, start, index, brk, opt.Delimiter)
		rows = append(rows, row)
		if end >= len(rs) {
			return rows, 0, false
		}
		start = end + len(brk)
		index++
		if stop != nil && stop(start, index) {
			return rows, start, true
		}
	}
}

// scanRow scans a single row beginning at start. It returns the row and the
// offset of its terminating row break (or len(rs)).
func scanRow(rs []rune, start, index int, brk []rune, delim rune) (RowSpan, int) {
	var cols []ColumnSpan
	colStart := start
	i := start
	for i < len(rs) && !hasBreakAt(rs, i, brk) {
		if rs[i] == delim {
			cols = append(cols, ColumnSpan{Index: len(cols), Start: colStart - start, Length: i - colStart})
			colStart = i + 1
		}
		i++
	}
	if i > start {
		cols = append(cols, ColumnSpan{Index: len(cols), Start: colStart - start, Length: i - colStart})
	}
	return RowSpan{Index: index, Start: start, End: i, Columns: cols}, i
}

func hasBreakAt(rs []rune, i int, brk []rune) bool {
	if i+len(brk) > len(rs) {
		return false
	}
	for j, r := range brk {
		if rs[i+j] != r {
			return false
		}
	}
	return true
}

// Options returns the options the grid was parsed with.
func (g *Grid) Options() Options { return g.opt }

// Text returns the text snapshot the grid describes.
func (g *Grid) Text() string { return g.text }

// Len returns the rune length of the text.
func (g *Grid) Len() int { return len(g.runes) }

// RowCount returns the number of rows. It is at least 1.
func (g *Grid) RowCount() int { return len(g.rows) }

// ColumnCount returns the maximum number of fields over all rows.
func (g *Grid) ColumnCount() int { return g.columnCount }

// Row returns the row at index i.
func (g *Grid) Row(i int) (RowSpan, bool) {
	if i < 0 || i >= len(g.rows) {
		return RowSpan{}, false
	}
	return g.rows[i], true
}

// RowText returns the text of row i without its row break.
func (g *Grid) RowText(i int) string {
	r, ok := g.Row(i)
	if !ok {
		return ""
	}
	return string(g.runes[r.Start:r.End])
}

// CellText returns the text of field column on row. Missing fields of ragged
// rows read as "".
func (g *Grid) CellText(row, column int) string {
	r, ok := g.Row(row)
	if !ok || column < 0 || column >= len(r.Columns) {
		return ""
	}
	c := r.Columns[column]
	return string(g.runes[r.Start+c.Start : r.Start+c.End()])
}

// Locate resolves an absolute offset to its grid location.
//
// Offsets outside the text are clamped. An offset equal to a column's start
// belongs to that column; an offset right before a delimiter belongs to the
// column the delimiter terminates.
func (g *Grid) Locate(offset int) Location {
	if offset < 0 {
		offset = 0
	}
	if offset > len(g.runes) {
		offset = len(g.runes)
	}

	ri := g.rowAt(offset)
	row := g.rows[ri]
	inRow := offset - row.Start
	if inRow > row.Len() {
		// Inside a multi-rune row break.
		inRow = row.Len()
	}

	loc := Location{
		Offset:      offset,
		Row:         ri,
		RowStart:    row.Start,
		OffsetInRow: inRow,
	}
	if len(row.Columns) == 0 {
		return loc
	}

	ci := 0
	for i, c := range row.Columns {
		if c.Start > inRow {
			break
		}
		ci = i
	}
	c := row.Columns[ci]
	loc.Column = ci
	loc.ColumnStart = c.Start
	loc.ColumnLength = c.Length
	return loc
}

// Offset returns the absolute offset of the start of (row, column), clamping
// both indices into the grid. Rows without fields resolve to the row start.
func (g *Grid) Offset(row, column int) int {
	row = clampInt(row, 0, len(g.rows)-1)
	r := g.rows[row]
	if len(r.Columns) == 0 {
		return r.Start
	}
	column = clampInt(column, 0, len(r.Columns)-1)
	return r.Start + r.Columns[column].Start
}

// rowAt returns the index of the last row starting at or before offset.
func (g *Grid) rowAt(offset int) int {
	i := sort.Search(len(g.rows), func(i int) bool { return g.rows[i].Start > offset }) - 1
	if i < 0 {
		return 0
	}
	return i
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
