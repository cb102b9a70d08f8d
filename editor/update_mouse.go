package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/gridtext/buffer"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.cfg.ScrollPolicy == ScrollAllowManual || !isWheel(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	if !m.focused || m.buf == nil {
		return m, cmd
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && m.mouseInBounds(msg.X, msg.Y) {
			m.mousePress(msg)
		}
	case tea.MouseActionMotion:
		if m.mouseDragging {
			x, y := m.clampMouse(msg.X, msg.Y)
			m.selectTo(m.screenToOffset(x, y))
		}
	case tea.MouseActionRelease:
		m.mouseDragging = false
	}
	return m, cmd
}

// mousePress places the caret, extends the selection with shift, or selects
// the whole row when the press lands in the line number gutter.
func (m *Model) mousePress(msg tea.MouseMsg) {
	off := m.screenToOffset(msg.X, msg.Y)
	switch {
	case msg.Shift:
		m.mouseAnchor = m.selectionAnchor()
		m.selectTo(off)
	case m.cfg.ShowLineNums && msg.X < m.gutterWidth(m.sess.Grid().RowCount()):
		g := m.sess.Grid()
		row, _ := g.Row(g.Locate(off).Row)
		m.mouseAnchor = row.Start
		m.selectTo(row.End)
	default:
		m.mouseAnchor = off
		m.buf.SetCursor(off)
	}
	m.mouseDragging = true
}

// selectionAnchor returns the fixed end of the current selection, or the
// caret when nothing is selected.
func (m *Model) selectionAnchor() int {
	cur := m.buf.Cursor()
	start, end, ok := m.buf.SelectionBounds()
	if !ok {
		return cur
	}
	if cur == start {
		return end
	}
	return start
}

func (m *Model) selectTo(off int) {
	if off == m.mouseAnchor {
		m.buf.SetCursor(off)
		return
	}
	m.buf.SetSelection(buffer.Range{Start: m.mouseAnchor, End: off})
}

func isWheel(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress {
		return false
	}
	switch msg.Button { //nolint:exhaustive
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown,
		tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		return true
	}
	return false
}

func (m Model) mouseInBounds(x, y int) bool {
	w, h := m.viewport.Width, m.viewport.Height
	return w > 0 && h > 0 && x >= 0 && x < w && y >= 0 && y < h
}

func (m Model) clampMouse(x, y int) (int, int) {
	if m.viewport.Width > 0 {
		x = clampInt(x, 0, m.viewport.Width-1)
	}
	if m.viewport.Height > 0 {
		y = clampInt(y, 0, m.viewport.Height-1)
	}
	return x, y
}
