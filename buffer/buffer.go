package buffer

type Options struct {
	HistoryLimit int    // default: 1000
	LineBreak    string // default: "\n"; used for Pos conversion and vertical moves
}

type selectionState struct {
	active bool
	anchor int
	end    int
}

// Buffer is the document state: flat text, cursor, and selection.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	text    []rune
	version uint64

	cursor int
	sel    selectionState

	opt  Options
	hist historyState

	lastChange    Change
	hasLastChange bool
	hook          func(Change)
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	if opt.LineBreak == "" {
		opt.LineBreak = "\n"
	}
	return &Buffer{
		text: []rune(text),
		opt:  opt,
	}
}

func (b *Buffer) Text() string { return string(b.text) }

// Len returns the rune length of the text.
func (b *Buffer) Len() int { return len(b.text) }

func (b *Buffer) Version() uint64 { return b.version }

// Options returns the normalized options.
func (b *Buffer) Options() Options { return b.opt }

// Cursor returns the caret as a rune offset.
func (b *Buffer) Cursor() int { return b.cursor }

// SetCursor moves the caret and clears the selection.
func (b *Buffer) SetCursor(off int) {
	next := ClampOffset(off, len(b.text))
	if next == b.cursor && !b.sel.active {
		return
	}
	b.cursor = next
	b.sel = selectionState{}
	b.version++
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectionBounds returns the normalized selection as plain offsets.
func (b *Buffer) SelectionBounds() (start, end int, ok bool) {
	r, ok := b.Selection()
	return r.Start, r.End, ok
}

// SetSelection selects r. The cursor moves to r.End, which keeps the
// selection direction for extending moves.
func (b *Buffer) SetSelection(r Range) {
	r = ClampRange(r, len(b.text))
	next := selectionState{active: true, anchor: r.Start, end: r.End}
	if r.IsEmpty() {
		next = selectionState{}
	}
	if selectionStateEqual(b.sel, next) && b.cursor == r.End {
		return
	}
	b.sel = next
	b.cursor = r.End
	b.version++
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	b.sel = selectionState{}
	b.version++
}

// SetChangeHook registers fn to be called synchronously after every effective
// text change, including undo and redo. Passing nil removes the hook.
func (b *Buffer) SetChangeHook(fn func(Change)) { b.hook = fn }

func selectionStateEqual(a, b selectionState) bool {
	if !a.active && !b.active {
		return true
	}
	return a.active == b.active && a.anchor == b.anchor && a.end == b.end
}
