package editor

import (
	"sort"

	"github.com/iw2rmb/gridtext/grid"
	"github.com/iw2rmb/gridtext/internal/grapheme"
)

type itemKind int

const (
	itemText itemKind = iota
	itemPad
	itemDelim
)

// layoutItem is one rendered rune (or padding blank) of a row.
type layoutItem struct {
	kind  itemKind
	text  string
	x     int
	width int
	// off is the absolute rune offset, -1 for padding.
	off int
}

type layoutRow struct {
	start, end int
	items      []layoutItem
	// xs[k] is the screen cell of a caret at row-relative offset k.
	xs    []int
	width int
}

type layoutKey struct {
	g   *grid.Grid
	raw bool
}

type gridLayout struct {
	valid bool
	key   layoutKey

	widths []int
	rows   []layoutRow
}

// columnWidths returns the widest field per column over all rows.
func columnWidths(g *grid.Grid) []int {
	widths := make([]int, g.ColumnCount())
	for i := 0; i < g.RowCount(); i++ {
		r, _ := g.Row(i)
		for c := range r.Columns {
			if w := grapheme.Width(g.CellText(i, c)); w > widths[c] {
				widths[c] = w
			}
		}
	}
	return widths
}

func (m *Model) ensureLayout() gridLayout {
	key := layoutKey{g: m.sess.Grid(), raw: m.cfg.RawLayout}
	if m.layout.valid && m.layout.key == key {
		return m.layout
	}
	m.layout = buildLayout(key)
	return m.layout
}

func buildLayout(key layoutKey) gridLayout {
	g := key.g
	l := gridLayout{valid: true, key: key, rows: make([]layoutRow, 0, g.RowCount())}
	if !key.raw {
		l.widths = columnWidths(g)
	}
	delim := g.Options().Delimiter
	delimText, delimWidth := glyph(delim)

	for i := 0; i < g.RowCount(); i++ {
		r, _ := g.Row(i)
		rs := []rune(g.RowText(i))
		lr := layoutRow{start: r.Start, end: r.End, xs: make([]int, len(rs)+1)}

		x := 0
		for c, col := range r.Columns {
			colX := x
			for k := col.Start; k < col.End(); k++ {
				lr.xs[k] = x
				text, w := glyph(rs[k])
				lr.items = append(lr.items, layoutItem{kind: itemText, text: text, x: x, width: w, off: r.Start + k})
				x += w
			}
			lr.xs[col.End()] = x

			if c == len(r.Columns)-1 {
				break
			}
			if l.widths != nil {
				for x < colX+l.widths[c] {
					lr.items = append(lr.items, layoutItem{kind: itemPad, text: " ", x: x, width: 1, off: -1})
					x++
				}
			}
			lr.items = append(lr.items, layoutItem{kind: itemDelim, text: delimText, x: x, width: delimWidth, off: r.Start + col.End()})
			x += delimWidth
		}
		lr.width = x
		l.rows = append(l.rows, lr)
	}
	return l
}

// glyph returns the rendered text of r and its width. Tabs render as a
// single blank so that cell positions stay predictable.
func glyph(r rune) (string, int) {
	if r == '\t' {
		return " ", 1
	}
	return string(r), grapheme.RuneWidth(r)
}

// caretX returns the screen cell of a caret at absolute offset off on row.
func (lr layoutRow) caretX(off int) int {
	return lr.xs[clampInt(off-lr.start, 0, len(lr.xs)-1)]
}

// offsetAt returns the absolute offset of the caret position closest to the
// left of screen cell x.
func (lr layoutRow) offsetAt(x int) int {
	i := sort.Search(len(lr.xs), func(i int) bool { return lr.xs[i] > x }) - 1
	if i < 0 {
		i = 0
	}
	return lr.start + i
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
