package session

import (
	"fmt"
	"unicode/utf8"

	"github.com/iw2rmb/gridtext/grid"
	"github.com/iw2rmb/gridtext/navigate"
)

// Options configures a Session. Zero values use grid defaults.
type Options struct {
	Delimiter rune
	RowBreak  string

	// Clipboard backs Cut, Copy and Paste. When nil those commands return
	// ErrNoClipboard.
	Clipboard Clipboard

	Events Events
}

// Session executes grid commands against a Host.
type Session struct {
	host  Host
	hist  History
	clip  Clipboard
	ev    Events
	model *grid.Model

	tracker navigate.Tracker
	editing bool
	dirty   bool
}

// New returns a Session over host and parses the host's current text.
// Undo and Redo are available when host implements History.
func New(host Host, opt Options) *Session {
	s := &Session{
		host:  host,
		clip:  opt.Clipboard,
		ev:    opt.Events,
		model: grid.NewModel(grid.Options{Delimiter: opt.Delimiter, RowBreak: opt.RowBreak}),
	}
	if h, ok := host.(History); ok {
		s.hist = h
	}
	s.model.Refresh(host.Text())
	return s
}

// Options returns the normalized split options.
func (s *Session) Options() grid.Options { return s.model.Options() }

// Grid returns the current snapshot of the host text.
func (s *Session) Grid() *grid.Grid { return s.model.Grid() }

// Location resolves the host caret against the current snapshot.
func (s *Session) Location() grid.Location { return s.model.Locate(s.host.Cursor()) }

// SetClipboard replaces the clipboard used by Cut, Copy and Paste.
func (s *Session) SetClipboard(c Clipboard) { s.clip = c }

// IsDirty reports whether the text changed since the last Initialize or
// MarkClean.
func (s *Session) IsDirty() bool { return s.dirty }

// MarkClean clears the dirty flag, typically after the text was saved.
func (s *Session) MarkClean() { s.dirty = false }

// Initialize loads text into the host, clears the host undo history and puts
// the caret at the start of the document.
func (s *Session) Initialize(text string) error {
	release, err := s.acquire()
	if err != nil {
		return err
	}
	s.host.ReplaceAll(text)
	if s.hist != nil {
		s.hist.ResetHistory()
	}
	s.host.SetCursor(0)
	s.model.Refresh(s.host.Text())
	s.tracker.Reset()
	s.dirty = false
	release()

	s.HandleCaretMoved()
	return nil
}

// HandleChange must be called by the host after every text change, with the
// offset where the change starts and the length of the new content there.
// It reports whether the grid layout changed.
//
// Notifications caused by the session's own edits are ignored.
func (s *Session) HandleChange(offset, length int) bool {
	if s.editing {
		return false
	}
	changed := s.model.RefreshRegion(s.host.Text(), offset, length)
	s.dirty = true
	if s.ev.OnTextChanged != nil {
		s.ev.OnTextChanged()
	}
	return changed
}

// HandleCaretMoved must be called by the host after the caret moved. It fires
// OnCaretGridPositionChanged when the caret entered another cell.
//
// Calls made while a command is running are ignored; the command reports the
// final caret cell itself once the grid is refreshed.
func (s *Session) HandleCaretMoved() {
	if s.editing {
		return
	}
	t := navigate.TargetOf(s.Location())
	if !s.tracker.Observe(t) {
		return
	}
	if s.ev.OnCaretGridPositionChanged != nil {
		s.ev.OnCaretGridPositionChanged(t.Row+1, t.Column+1)
	}
}

// Execute runs cmd. A command that does not apply in the current state (no
// selection to cut, nothing to undo, a navigation boundary) is a no-op and
// returns nil.
func (s *Session) Execute(cmd Command) error {
	fn, ok := dispatch[cmd]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownCommand, cmd)
	}
	return s.run(cmd, fn)
}

// PasteText pastes text as the Paste command would paste clipboard content.
// It serves terminal paste events that bypass the clipboard.
func (s *Session) PasteText(text string) error {
	return s.run(Paste, func(_ *Session, st state) (result, error) {
		return s.pasteText(st, text), nil
	})
}

func (s *Session) run(cmd Command, fn commandFunc) error {
	release, err := s.acquire()
	if err != nil {
		return err
	}

	st, err := s.state()
	if err != nil {
		release()
		return err
	}
	res, err := fn(s, st)
	if err != nil {
		release()
		return fmt.Errorf("session: %v: %w", cmd, err)
	}
	changed := s.apply(st, res)
	release()

	if changed && s.ev.OnTextChanged != nil {
		s.ev.OnTextChanged()
	}
	s.HandleCaretMoved()
	return nil
}

// acquire takes the edit token. The returned release must be called exactly
// once.
func (s *Session) acquire() (release func(), err error) {
	if s.editing {
		return nil, ErrEditInProgress
	}
	s.editing = true
	return func() { s.editing = false }, nil
}

// state captures the host text, caret and selection, resyncing the snapshot
// if the host changed without notifying.
func (s *Session) state() (state, error) {
	text := s.host.Text()
	n := utf8.RuneCountInString(text)
	caret := s.host.Cursor()
	if caret < 0 || caret > n {
		return state{}, fmt.Errorf("%w: %d not in [0, %d]", ErrCaretOutOfRange, caret, n)
	}
	if s.model.Grid().Text() != text {
		s.model.Refresh(text)
	}

	st := state{
		text:  text,
		g:     s.model.Grid(),
		caret: caret,
		loc:   s.model.Locate(caret),
	}
	if start, end, ok := s.host.SelectionBounds(); ok && start < end {
		start = offBreak(st.g, clampInt(start, 0, n), false)
		end = offBreak(st.g, clampInt(end, 0, n), true)
		if start < end {
			st.sel = true
			st.selStart, st.selEnd = start, end
		}
	}
	return st, nil
}

// apply performs the single host replacement and caret placement of res and
// reports whether the text changed.
func (s *Session) apply(st state, res result) bool {
	changed := res.historyMoved
	if res.replace && res.text != st.text {
		s.host.ReplaceAll(res.text)
		changed = true
	}
	if changed {
		s.model.Refresh(s.host.Text())
		s.dirty = true
	}
	switch {
	case res.cell != nil:
		s.host.SetCursor(navigate.ToGridTarget(s.model.Grid(), *res.cell))
	case res.caret != nil:
		s.host.SetCursor(*res.caret)
	}
	return changed
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

// offBreak moves an offset inside a multi-rune row break to the break start
// (back) or to the start of the next row.
func offBreak(g *grid.Grid, off int, back bool) int {
	r, _ := g.Row(g.Locate(off).Row)
	if off <= r.End {
		return off
	}
	if back {
		return r.End
	}
	return r.End + utf8.RuneCountInString(g.Options().RowBreak)
}
