package buffer

import "sort"

// lineStarts returns the rune offset of every line start, splitting on the
// configured line break left to right.
func (b *Buffer) lineStarts() []int {
	brk := []rune(b.opt.LineBreak)
	starts := []int{0}
	for i := 0; i+len(brk) <= len(b.text); {
		if b.hasLineBreakAt(i) {
			i += len(brk)
			starts = append(starts, i)
			continue
		}
		i++
	}
	return starts
}

// lineEnd returns the offset just before the line break ending the line that
// starts at starts[row], or the text length for the last line.
func (b *Buffer) lineEnd(starts []int, row int) int {
	if row+1 < len(starts) {
		return starts[row+1] - len([]rune(b.opt.LineBreak))
	}
	return len(b.text)
}

// LineCount returns the number of lines. It is at least 1.
func (b *Buffer) LineCount() int { return len(b.lineStarts()) }

// PosFromOffset converts a rune offset into (row, col). Offsets are clamped;
// an offset inside a multi-rune line break maps to the end of its line.
func (b *Buffer) PosFromOffset(off int) Pos {
	off = ClampOffset(off, len(b.text))
	starts := b.lineStarts()
	row := sort.Search(len(starts), func(i int) bool { return starts[i] > off }) - 1
	if row < 0 {
		row = 0
	}
	col := off - starts[row]
	if end := b.lineEnd(starts, row); starts[row]+col > end {
		col = end - starts[row]
	}
	return Pos{Row: row, Col: col}
}

// OffsetFromPos converts (row, col) into a rune offset, clamping the row into
// the document and the column into the line.
func (b *Buffer) OffsetFromPos(p Pos) int {
	starts := b.lineStarts()
	row := clampInt(p.Row, 0, len(starts)-1)
	end := b.lineEnd(starts, row)
	return starts[row] + clampInt(p.Col, 0, end-starts[row])
}

// CursorPos returns the cursor as (row, col).
func (b *Buffer) CursorPos() Pos { return b.PosFromOffset(b.cursor) }
