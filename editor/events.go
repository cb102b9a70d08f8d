package editor

import "github.com/iw2rmb/gridtext/buffer"

type ChangeEvent struct {
	Version uint64
	Cursor  int
	// Row and Column are the caret cell, 0-based.
	Row       int
	Column    int
	Selection struct {
		Range  buffer.Range
		Active bool
	}

	// v0: simplest payload; host can diff if needed.
	Text string
}

func (m *Model) buildChangeEvent() ChangeEvent {
	loc := m.sess.Location()
	ev := ChangeEvent{
		Version: m.buf.Version(),
		Cursor:  m.buf.Cursor(),
		Row:     loc.Row,
		Column:  loc.Column,
		Text:    m.buf.Text(),
	}
	if r, ok := m.buf.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	return ev
}
