package session

import (
	"errors"
	"testing"

	"github.com/iw2rmb/gridtext/buffer"
)

type memClipboard struct {
	text string
	err  error
}

func (c *memClipboard) ReadText() (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return c.text, nil
}

func (c *memClipboard) WriteText(s string) error {
	if c.err != nil {
		return c.err
	}
	c.text = s
	return nil
}

type recorder struct {
	textChanged int
	cells       [][2]int
}

func newTestSession(text string, clip Clipboard) (*Session, *buffer.Buffer, *recorder) {
	b := buffer.New(text, buffer.Options{})
	rec := &recorder{}
	s := New(b, Options{
		Clipboard: clip,
		Events: Events{
			OnTextChanged: func() { rec.textChanged++ },
			OnCaretGridPositionChanged: func(row, column int) {
				rec.cells = append(rec.cells, [2]int{row, column})
			},
		},
	})
	b.SetChangeHook(func(c buffer.Change) {
		for _, e := range c.AppliedEdits {
			s.HandleChange(e.Offset, e.InsertedLen())
		}
	})
	return s, b, rec
}

func mustExecute(t *testing.T, s *Session, cmd Command) {
	t.Helper()
	if err := s.Execute(cmd); err != nil {
		t.Fatalf("Execute(%v): %v", cmd, err)
	}
}

func checkState(t *testing.T, s *Session, b *buffer.Buffer, text string, cursor int) {
	t.Helper()
	if got := b.Text(); got != text {
		t.Fatalf("text: got %q, want %q", got, text)
	}
	if got := b.Cursor(); got != cursor {
		t.Fatalf("cursor: got %d, want %d", got, cursor)
	}
	if got := s.Grid().Text(); got != text {
		t.Fatalf("grid snapshot: got %q, want %q", got, text)
	}
}

func TestExecute_AddColumn(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		cursor int
		want   string
		caret  int
	}{
		{name: "at column start inserts before", text: "a,b,c\nd,e,f", cursor: 2, want: "a,,b,c\nd,,e,f", caret: 2},
		{name: "inside column inserts after", text: "a,b", cursor: 1, want: "a,,b", caret: 2},
		{name: "at row end appends", text: "a,b\nc,d", cursor: 3, want: "a,b,\nc,d,", caret: 4},
		{name: "empty document", text: "", cursor: 0, want: ",", caret: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, b, rec := newTestSession(tt.text, nil)
			b.SetCursor(tt.cursor)

			mustExecute(t, s, AddColumn)
			checkState(t, s, b, tt.want, tt.caret)
			if rec.textChanged != 1 {
				t.Fatalf("OnTextChanged calls: got %d, want 1", rec.textChanged)
			}
			if !s.IsDirty() {
				t.Fatalf("IsDirty: want true")
			}
		})
	}
}

func TestExecute_RemoveColumn(t *testing.T) {
	s, b, _ := newTestSession("a,b\nc,d", nil)

	mustExecute(t, s, RemoveColumn)
	checkState(t, s, b, "b\nd", 0)
	if got := s.Grid().ColumnCount(); got != 1 {
		t.Fatalf("ColumnCount: got %d, want 1", got)
	}
}

func TestExecute_RemoveColumn_LastColumnClampsCaret(t *testing.T) {
	s, b, _ := newTestSession("a,b\nc,d", nil)
	b.SetCursor(6) // "d"

	mustExecute(t, s, RemoveColumn)
	checkState(t, s, b, "a\nc", 2)
}

func TestExecute_AddLine(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		cursor int
		want   string
		caret  int
	}{
		{name: "end of row", text: "a,b\nc,d", cursor: 3, want: "a,b\n,\nc,d", caret: 4},
		{name: "start of row", text: "a,b\nc,d", cursor: 4, want: "a,b\n,\nc,d", caret: 4},
		{name: "inside row", text: "ab,c", cursor: 1, want: "a\nb,c", caret: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, b, _ := newTestSession(tt.text, nil)
			b.SetCursor(tt.cursor)

			mustExecute(t, s, AddLine)
			checkState(t, s, b, tt.want, tt.caret)
		})
	}
}

func TestExecute_DuplicateLine(t *testing.T) {
	s, b, _ := newTestSession("a,b\nc,d", nil)
	b.SetCursor(2)

	mustExecute(t, s, DuplicateLine)
	checkState(t, s, b, "a,b\na,b\nc,d", 6)
	if got := s.Grid().RowCount(); got != 3 {
		t.Fatalf("RowCount: got %d, want 3", got)
	}
}

func TestExecute_RemoveLine(t *testing.T) {
	s, b, _ := newTestSession("a,b\nc,d\ne,f", nil)
	b.SetCursor(6)

	mustExecute(t, s, RemoveLine)
	checkState(t, s, b, "a,b\ne,f", 2)

	b.SetCursor(0)
	mustExecute(t, s, RemoveLine)
	checkState(t, s, b, "e,f", 0)
}

func TestExecute_Navigation(t *testing.T) {
	s, b, rec := newTestSession("a,b\nc", nil)

	steps := []struct {
		cmd  Command
		want int
	}{
		{GotoNextColumn, 2},
		{GotoNextColumn, 4},
		{GotoNextColumn, 4},
		{GotoPreviousColumn, 2},
		{GotoPreviousColumn, 0},
		{GotoPreviousColumn, 0},
	}
	for i, st := range steps {
		mustExecute(t, s, st.cmd)
		if got := b.Cursor(); got != st.want {
			t.Fatalf("step %d (%v): cursor got %d, want %d", i, st.cmd, got, st.want)
		}
	}
	if rec.textChanged != 0 {
		t.Fatalf("navigation changed text")
	}

	want := [][2]int{{1, 2}, {2, 1}, {1, 2}, {1, 1}}
	if len(rec.cells) != len(want) {
		t.Fatalf("caret events: got %v, want %v", rec.cells, want)
	}
	for i := range want {
		if rec.cells[i] != want[i] {
			t.Fatalf("caret events: got %v, want %v", rec.cells, want)
		}
	}
}

func TestExecute_Paste_StripsStructure(t *testing.T) {
	clip := &memClipboard{text: "x,y\nz"}
	s, b, _ := newTestSession("a,b", clip)
	b.SetCursor(1)

	mustExecute(t, s, Paste)
	checkState(t, s, b, "axyz,b", 4)
}

func TestExecute_Paste_ReplacesSelectionKeepingDelimiters(t *testing.T) {
	clip := &memClipboard{text: "Q"}
	s, b, _ := newTestSession("ab,cd", clip)
	b.SetSelection(buffer.Range{Start: 1, End: 4})

	mustExecute(t, s, Paste)
	checkState(t, s, b, "aQ,d", 2)
}

func TestExecute_CutAndCopy(t *testing.T) {
	clip := &memClipboard{}
	s, b, rec := newTestSession("ab,cd", clip)
	b.SetSelection(buffer.Range{Start: 1, End: 4})

	mustExecute(t, s, Copy)
	if clip.text != "b,c" {
		t.Fatalf("clipboard after copy: got %q, want %q", clip.text, "b,c")
	}
	if rec.textChanged != 0 {
		t.Fatalf("copy changed text")
	}

	clip.text = ""
	mustExecute(t, s, Cut)
	if clip.text != "b,c" {
		t.Fatalf("clipboard after cut: got %q, want %q", clip.text, "b,c")
	}
	checkState(t, s, b, "a,d", 1)
	if rec.textChanged != 1 {
		t.Fatalf("OnTextChanged calls: got %d, want 1", rec.textChanged)
	}
}

func TestExecute_CutWithoutSelectionIsNoOp(t *testing.T) {
	clip := &memClipboard{text: "keep"}
	s, b, _ := newTestSession("a,b", clip)

	mustExecute(t, s, Cut)
	checkState(t, s, b, "a,b", 0)
	if clip.text != "keep" {
		t.Fatalf("clipboard: got %q", clip.text)
	}
}

func TestExecute_ClipboardErrors(t *testing.T) {
	boom := errors.New("boom")
	s, b, _ := newTestSession("ab,cd", &memClipboard{err: boom})
	b.SetSelection(buffer.Range{Start: 1, End: 4})

	for _, cmd := range []Command{Cut, Copy, Paste} {
		if err := s.Execute(cmd); !errors.Is(err, boom) {
			t.Fatalf("Execute(%v): got %v, want wrapped %v", cmd, err, boom)
		}
	}
	if got := b.Text(); got != "ab,cd" {
		t.Fatalf("failed clipboard command changed text: %q", got)
	}

	s.SetClipboard(nil)
	if err := s.Execute(Paste); !errors.Is(err, ErrNoClipboard) {
		t.Fatalf("Execute(Paste): got %v, want %v", err, ErrNoClipboard)
	}
}

func TestExecute_UndoRedoRefreshGrid(t *testing.T) {
	s, b, rec := newTestSession("a,b,c\nd,e,f", nil)
	b.SetCursor(2)
	mustExecute(t, s, AddColumn)

	mustExecute(t, s, Undo)
	checkState(t, s, b, "a,b,c\nd,e,f", 2)
	if got := s.Grid().ColumnCount(); got != 3 {
		t.Fatalf("ColumnCount after undo: got %d, want 3", got)
	}

	mustExecute(t, s, Redo)
	if got := s.Grid().ColumnCount(); got != 4 {
		t.Fatalf("ColumnCount after redo: got %d, want 4", got)
	}
	if rec.textChanged != 3 {
		t.Fatalf("OnTextChanged calls: got %d, want 3", rec.textChanged)
	}

	mustExecute(t, s, Redo)
	if rec.textChanged != 3 {
		t.Fatalf("empty redo fired OnTextChanged")
	}
}

func TestExecute_UnknownCommand(t *testing.T) {
	s, _, _ := newTestSession("a", nil)
	if err := s.Execute(Command(99)); !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("got %v, want %v", err, ErrUnknownCommand)
	}
}

type badCaretHost struct{ *buffer.Buffer }

func (h badCaretHost) Cursor() int { return 99 }

func TestExecute_CaretOutOfRange(t *testing.T) {
	s := New(badCaretHost{buffer.New("a,b", buffer.Options{})}, Options{})
	if err := s.Execute(AddColumn); !errors.Is(err, ErrCaretOutOfRange) {
		t.Fatalf("got %v, want %v", err, ErrCaretOutOfRange)
	}
}

type reentrantHost struct {
	*buffer.Buffer
	s   *Session
	err error
}

func (h *reentrantHost) ReplaceAll(text string) {
	h.err = h.s.Execute(AddColumn)
	h.Buffer.ReplaceAll(text)
}

func TestExecute_RejectsNestedCommands(t *testing.T) {
	h := &reentrantHost{Buffer: buffer.New("a,b", buffer.Options{})}
	h.s = New(h, Options{})
	h.SetCursor(3)
	h.SetChangeHook(func(c buffer.Change) {
		for _, e := range c.AppliedEdits {
			if h.s.HandleChange(e.Offset, e.InsertedLen()) {
				t.Fatalf("own edit notification was not ignored")
			}
		}
	})

	if err := h.s.Execute(AddLine); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !errors.Is(h.err, ErrEditInProgress) {
		t.Fatalf("nested Execute: got %v, want %v", h.err, ErrEditInProgress)
	}
	if got, want := h.Text(), "a,b\n,"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestHandleChange_TracksHostEdits(t *testing.T) {
	s, b, rec := newTestSession("ab", nil)
	b.SetCursor(1)

	b.InsertText(",")
	if got := s.Grid().ColumnCount(); got != 2 {
		t.Fatalf("ColumnCount: got %d, want 2", got)
	}
	if rec.textChanged != 1 || !s.IsDirty() {
		t.Fatalf("host edit: textChanged=%d dirty=%v", rec.textChanged, s.IsDirty())
	}

	s.MarkClean()
	if s.IsDirty() {
		t.Fatalf("IsDirty after MarkClean: want false")
	}
}

func TestHandleCaretMoved_ReportsOnlyRealMoves(t *testing.T) {
	s, b, rec := newTestSession("ab,cd", nil)

	s.HandleCaretMoved()
	b.SetCursor(1)
	s.HandleCaretMoved()
	b.SetCursor(3)
	s.HandleCaretMoved()

	want := [][2]int{{1, 1}, {1, 2}}
	if len(rec.cells) != len(want) || rec.cells[0] != want[0] || rec.cells[1] != want[1] {
		t.Fatalf("caret events: got %v, want %v", rec.cells, want)
	}
}

func TestInitialize_ResetsHistoryAndDirty(t *testing.T) {
	s, b, _ := newTestSession("a", nil)
	b.SetCursor(1)
	b.InsertText(",b")

	if err := s.Initialize("x,y\nz"); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	checkState(t, s, b, "x,y\nz", 0)
	if b.CanUndo() {
		t.Fatalf("CanUndo after Initialize: want false")
	}
	if s.IsDirty() {
		t.Fatalf("IsDirty after Initialize: want false")
	}
	if got := s.Grid().RowCount(); got != 2 {
		t.Fatalf("RowCount: got %d, want 2", got)
	}
}

func TestPasteText_BypassesClipboard(t *testing.T) {
	s, b, rec := newTestSession("a,b", nil)
	b.SetCursor(3)

	if err := s.PasteText("1\r\n2,3"); err != nil {
		t.Fatalf("PasteText: %v", err)
	}
	checkState(t, s, b, "a,b123", 6)

	if err := s.PasteText(",\n"); err != nil {
		t.Fatalf("PasteText: %v", err)
	}
	if rec.textChanged != 1 {
		t.Fatalf("structural-only paste changed text: %d", rec.textChanged)
	}
}

func TestHandleCaretMoved_IgnoredDuringCommand(t *testing.T) {
	b := buffer.New("a,b\nc,d", buffer.Options{})
	var cells [][2]int
	s := New(b, Options{Events: Events{
		OnCaretGridPositionChanged: func(row, column int) {
			cells = append(cells, [2]int{row, column})
		},
	}})
	b.SetChangeHook(func(c buffer.Change) {
		for _, e := range c.AppliedEdits {
			s.HandleChange(e.Offset, e.InsertedLen())
		}
		s.HandleCaretMoved()
	})
	b.SetCursor(6)

	mustExecute(t, s, RemoveColumn)
	checkState(t, s, b, "b\nd", 2)
	if len(cells) != 1 || cells[0] != [2]int{2, 1} {
		t.Fatalf("caret events: got %v, want [[2 1]]", cells)
	}
}

func newCRLFSession(text string, clip Clipboard) (*Session, *buffer.Buffer) {
	b := buffer.New(text, buffer.Options{LineBreak: "\r\n"})
	s := New(b, Options{RowBreak: "\r\n", Clipboard: clip})
	b.SetChangeHook(func(c buffer.Change) {
		for _, e := range c.AppliedEdits {
			s.HandleChange(e.Offset, e.InsertedLen())
		}
	})
	return s, b
}

func TestPasteText_SelectionStartingInsideRowBreak(t *testing.T) {
	s, b := newCRLFSession("ab\r\ncd", nil)
	b.SetSelection(buffer.Range{Start: 3, End: 5})

	if err := s.PasteText("X"); err != nil {
		t.Fatalf("PasteText: %v", err)
	}
	checkState(t, s, b, "ab\r\nXd", 5)
	if got := s.Grid().RowCount(); got != 2 {
		t.Fatalf("RowCount: got %d, want 2", got)
	}
}

func TestExecute_CutSelectionEndingInsideRowBreak(t *testing.T) {
	clip := &memClipboard{}
	s, b := newCRLFSession("ab\r\ncd", clip)
	b.SetSelection(buffer.Range{Start: 1, End: 3})

	mustExecute(t, s, Cut)
	checkState(t, s, b, "a\r\ncd", 1)
	if clip.text != "b" {
		t.Fatalf("clipboard: got %q, want %q", clip.text, "b")
	}
}

func TestExecute_SelectionInsideRowBreakIsEmpty(t *testing.T) {
	clip := &memClipboard{text: "keep"}
	s, b := newCRLFSession("ab\r\ncd", clip)
	b.SetSelection(buffer.Range{Start: 3, End: 4})

	mustExecute(t, s, Cut)
	if got := b.Text(); got != "ab\r\ncd" {
		t.Fatalf("text: got %q, want unchanged", got)
	}
	if clip.text != "keep" {
		t.Fatalf("clipboard: got %q, want %q", clip.text, "keep")
	}
}

func TestEveryNamedCommandIsDispatched(t *testing.T) {
	for c, name := range commandNames {
		if _, ok := dispatch[c]; !ok {
			t.Fatalf("%s: no dispatch entry", name)
		}
		if c.String() != name {
			t.Fatalf("String: got %q, want %q", c.String(), name)
		}
	}
	if got := Command(99).String(); got != "Command(99)" {
		t.Fatalf("String: got %q, want %q", got, "Command(99)")
	}
}
