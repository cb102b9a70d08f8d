package session

import (
	"unicode/utf8"

	"github.com/iw2rmb/gridtext/grid"
	"github.com/iw2rmb/gridtext/navigate"
	"github.com/iw2rmb/gridtext/transform"
)

// state is what a command sees: one consistent snapshot of the host.
type state struct {
	text  string
	g     *grid.Grid
	caret int
	loc   grid.Location

	sel              bool
	selStart, selEnd int
}

// result is what a command asks for: at most one text replacement and at most
// one caret placement. A cell is resolved against the refreshed grid.
type result struct {
	replace bool
	text    string

	historyMoved bool

	cell  *navigate.Target
	caret *int
}

func replaceWith(text string) result { return result{replace: true, text: text} }

func (r result) atCell(row, column int) result {
	r.cell = &navigate.Target{Row: row, Column: column}
	return r
}

func (r result) atOffset(off int) result {
	r.caret = &off
	return r
}

type commandFunc func(s *Session, st state) (result, error)

var dispatch = map[Command]commandFunc{
	AddColumn:          (*Session).addColumn,
	RemoveColumn:       (*Session).removeColumn,
	AddLine:            (*Session).addLine,
	DuplicateLine:      (*Session).duplicateLine,
	RemoveLine:         (*Session).removeLine,
	GotoNextColumn:     (*Session).gotoNextColumn,
	GotoPreviousColumn: (*Session).gotoPreviousColumn,
	Cut:                (*Session).cut,
	Copy:               (*Session).copySelection,
	Paste:              (*Session).paste,
	Undo:               (*Session).undo,
	Redo:               (*Session).redo,
}

// addColumn inserts an empty column before the caret's column when the caret
// is at the column start, after it otherwise. A caret inside a field inserts
// after the field rather than doing nothing. A caret in an empty field is at
// its start, so the new column goes before it.
func (s *Session) addColumn(st state) (result, error) {
	opt := st.g.Options()
	idx := st.loc.Column
	if !st.loc.AtColumnStart() {
		idx++
	}
	if idx > st.g.ColumnCount() {
		idx = st.g.ColumnCount()
	}
	text := transform.InsertColumn(st.text, idx, st.g.RowCount(), st.g.ColumnCount(), opt.Delimiter, opt.RowBreak)
	return replaceWith(text).atCell(st.loc.Row, idx), nil
}

func (s *Session) removeColumn(st state) (result, error) {
	opt := st.g.Options()
	text := transform.RemoveColumn(st.text, st.loc.Column, st.g.RowCount(), st.g.ColumnCount(), opt.Delimiter, opt.RowBreak)
	return replaceWith(text).atCell(st.loc.Row, st.loc.Column), nil
}

// addLine splits the caret's row at the caret.
func (s *Session) addLine(st state) (result, error) {
	opt := st.g.Options()
	text := transform.InsertRow(st.text, st.loc.Row, st.loc.OffsetInRow, st.g.ColumnCount(), opt.Delimiter, opt.RowBreak)
	row := st.loc.Row + 1
	if st.loc.OffsetInRow == 0 {
		row = st.loc.Row
	}
	return replaceWith(text).atCell(row, 0), nil
}

func (s *Session) duplicateLine(st state) (result, error) {
	r, _ := st.g.Row(st.loc.Row)
	text := transform.DuplicateRow(st.text, r.Start, r.End, st.g.Options().RowBreak)
	return replaceWith(text).atCell(st.loc.Row+1, st.loc.Column), nil
}

func (s *Session) removeLine(st state) (result, error) {
	r, _ := st.g.Row(st.loc.Row)
	text := transform.RemoveRow(st.text, r.Start, r.End, st.g.Options().RowBreak)
	row := st.loc.Row - 1
	if row < 0 {
		row = 0
	}
	return replaceWith(text).atCell(row, st.loc.Column), nil
}

func (s *Session) gotoNextColumn(st state) (result, error) {
	t, ok := navigate.Advance(st.g, st.loc)
	if !ok {
		return result{}, nil
	}
	return result{}.atCell(t.Row, t.Column), nil
}

func (s *Session) gotoPreviousColumn(st state) (result, error) {
	t, ok := navigate.Retreat(st.g, st.loc)
	if !ok {
		return result{}, nil
	}
	return result{}.atCell(t.Row, t.Column), nil
}

// cut writes the selection to the clipboard unmodified, then removes it while
// keeping the column structure.
func (s *Session) cut(st state) (result, error) {
	if !st.sel {
		return result{}, nil
	}
	if err := s.writeClipboard(selectedText(st)); err != nil {
		return result{}, err
	}
	opt := st.g.Options()
	text := transform.RemoveRange(st.text, st.selStart, st.selEnd-st.selStart, opt.Delimiter, opt.RowBreak)
	return replaceWith(text).atOffset(st.selStart), nil
}

func (s *Session) copySelection(st state) (result, error) {
	if !st.sel {
		return result{}, nil
	}
	return result{}, s.writeClipboard(selectedText(st))
}

func (s *Session) paste(st state) (result, error) {
	if s.clip == nil {
		return result{}, ErrNoClipboard
	}
	raw, err := s.clip.ReadText()
	if err != nil {
		return result{}, wrapClipboard("read", err)
	}
	return s.pasteText(st, raw), nil
}

// pasteText inserts raw with delimiters and row breaks stripped, so that it
// lands in a single field. A selection is removed first.
func (s *Session) pasteText(st state, raw string) result {
	opt := st.g.Options()
	ins := transform.StripStructural(raw, opt.Delimiter, opt.RowBreak)

	text, at := st.text, st.caret
	if st.sel {
		text = transform.RemoveRange(text, st.selStart, st.selEnd-st.selStart, opt.Delimiter, opt.RowBreak)
		at = st.selStart
	}
	if ins == "" && text == st.text {
		return result{}
	}

	rs := []rune(text)
	at = clampInt(at, 0, len(rs))
	text = string(rs[:at]) + ins + string(rs[at:])
	return replaceWith(text).atOffset(at + utf8.RuneCountInString(ins))
}

func (s *Session) undo(st state) (result, error) {
	if s.hist == nil || !s.hist.Undo() {
		return result{}, nil
	}
	return result{historyMoved: true}, nil
}

func (s *Session) redo(st state) (result, error) {
	if s.hist == nil || !s.hist.Redo() {
		return result{}, nil
	}
	return result{historyMoved: true}, nil
}

func (s *Session) writeClipboard(text string) error {
	if s.clip == nil {
		return ErrNoClipboard
	}
	if err := s.clip.WriteText(text); err != nil {
		return wrapClipboard("write", err)
	}
	return nil
}

func selectedText(st state) string {
	rs := []rune(st.text)
	return string(rs[st.selStart:st.selEnd])
}
