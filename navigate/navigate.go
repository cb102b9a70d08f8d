// Package navigate moves a caret by grid cell instead of by character.
//
// All results are computed from the current grid snapshot; nothing is cached
// across edits except the Tracker's last reported cell.
package navigate

import "github.com/iw2rmb/gridtext/grid"

// Target is a (row, column) cell request, 0-based.
type Target struct {
	Row    int
	Column int
}

// TargetOf returns the cell of a resolved location.
func TargetOf(loc grid.Location) Target {
	return Target{Row: loc.Row, Column: loc.Column}
}

// Advance returns the cell after loc: the next column on the same row, or
// column 0 of the next row when loc is on the row's last column. On the last
// column of the last row it returns loc's cell and false.
//
// Ragged rows wrap at their own last column.
func Advance(g *grid.Grid, loc grid.Location) (Target, bool) {
	cur := TargetOf(loc)
	if cur.Column < lastColumn(g, cur.Row) {
		return Target{Row: cur.Row, Column: cur.Column + 1}, true
	}
	if cur.Row >= g.RowCount()-1 {
		return cur, false
	}
	return Target{Row: cur.Row + 1, Column: 0}, true
}

// Retreat returns the cell before loc: the previous column on the same row,
// or the last column of the previous row when loc is on column 0. At (0, 0)
// it returns loc's cell and false.
func Retreat(g *grid.Grid, loc grid.Location) (Target, bool) {
	cur := TargetOf(loc)
	if cur.Column > 0 {
		return Target{Row: cur.Row, Column: cur.Column - 1}, true
	}
	if cur.Row <= 0 {
		return cur, false
	}
	prev := cur.Row - 1
	return Target{Row: prev, Column: lastColumn(g, prev)}, true
}

// ToGridTarget converts a cell request to the absolute offset of the cell's
// first rune, clamping the row and column into the grid.
func ToGridTarget(g *grid.Grid, t Target) int {
	return g.Offset(t.Row, t.Column)
}

func lastColumn(g *grid.Grid, row int) int {
	r, ok := g.Row(row)
	if !ok || r.ColumnCount() == 0 {
		return 0
	}
	return r.ColumnCount() - 1
}
