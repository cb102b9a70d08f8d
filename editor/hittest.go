package editor

// screenToOffset maps viewport-local mouse coordinates to a document offset.
//
// Coordinates are in terminal cells and are relative to the editor's viewport:
// (0,0) is the top-left of the visible content region. Gutter clicks map to
// the row start; x/y are clamped into document bounds.
func (m *Model) screenToOffset(x, y int) int {
	if m.buf == nil {
		return 0
	}

	l := m.ensureLayout()
	if len(l.rows) == 0 {
		return 0
	}

	lr := l.rows[clampInt(m.viewport.YOffset+y, 0, len(l.rows)-1)]
	vx := x - m.gutterWidth(len(l.rows))
	if vx < 0 {
		return lr.start
	}
	return lr.offsetAt(vx)
}

// offsetToScreen maps a document offset to viewport-local coordinates.
//
// ok is false when the mapped coordinate is outside the visible viewport.
func (m *Model) offsetToScreen(off int) (x int, y int, ok bool) {
	if m.buf == nil {
		return 0, 0, false
	}

	l := m.ensureLayout()
	if len(l.rows) == 0 {
		return 0, 0, false
	}

	row := clampInt(m.sess.Grid().Locate(off).Row, 0, len(l.rows)-1)
	lr := l.rows[row]
	x = lr.caretX(off) + m.gutterWidth(len(l.rows))
	y = row - m.viewport.YOffset

	if y < 0 || y >= m.visibleRowCount() {
		return x, y, false
	}
	if x < 0 || x >= m.viewport.Width {
		return x, y, false
	}
	return x, y, true
}
