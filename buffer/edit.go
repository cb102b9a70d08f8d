package buffer

// InsertText inserts text at the cursor, or replaces the active selection.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		if _, ok := b.Selection(); ok {
			b.DeleteSelection()
		}
		return
	}

	r, ok := b.Selection()
	if !ok {
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.edit(r, s)
}

// InsertRune inserts a single rune at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertRune(r rune) {
	b.InsertText(string(r))
}

// InsertNewline inserts the configured line break at the cursor, or replaces
// the active selection.
func (b *Buffer) InsertNewline() {
	b.InsertText(b.opt.LineBreak)
}

// DeleteBackward applies backspace semantics. A line break is deleted as a
// whole.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	if b.cursor == 0 {
		return
	}
	start := b.cursor - 1
	if b.hasLineBreakEndingAt(b.cursor) {
		start = b.cursor - len([]rune(b.opt.LineBreak))
	}
	b.edit(Range{Start: start, End: b.cursor}, "")
}

// DeleteForward applies delete-key semantics. A line break is deleted as a
// whole.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	if b.cursor >= len(b.text) {
		return
	}
	end := b.cursor + 1
	if b.hasLineBreakAt(b.cursor) {
		end = b.cursor + len([]rune(b.opt.LineBreak))
	}
	b.edit(Range{Start: b.cursor, End: end}, "")
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.edit(r, "")
}

// ReplaceAll replaces the whole text as one undoable step. The cursor is
// clamped into the new text and the selection is cleared.
func (b *Buffer) ReplaceAll(text string) {
	next := []rune(text)
	applied, ok := replacementAppliedEdit(b.text, next)
	if !ok {
		return
	}

	prev := b.snapshot()
	change := b.beginChange()

	b.text = next
	b.cursor = ClampOffset(b.cursor, len(b.text))
	b.sel = selectionState{}
	b.version++
	b.recordUndo(prev)
	change.addAppliedEdit(applied)
	b.commitChange(change)
}

// edit replaces r with text as one undoable step and leaves the cursor after
// the inserted text.
func (b *Buffer) edit(r Range, text string) {
	prev := b.snapshot()
	change := b.beginChange()

	nextCursor, applied, changed := b.replaceRange(r, text)
	if !changed {
		return
	}
	b.cursor = nextCursor
	b.sel = selectionState{}
	b.version++
	b.recordUndo(prev)
	change.addAppliedEdit(applied)
	b.commitChange(change)
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor int, applied AppliedEdit, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.text)))
	ins := []rune(text)
	deleted := string(b.text[r.Start:r.End])
	if deleted == text {
		return b.cursor, AppliedEdit{}, false
	}

	out := make([]rune, 0, len(b.text)-r.Len()+len(ins))
	out = append(out, b.text[:r.Start]...)
	out = append(out, ins...)
	out = append(out, b.text[r.End:]...)
	b.text = out

	return r.Start + len(ins), AppliedEdit{
		Offset:      r.Start,
		InsertText:  text,
		DeletedText: deleted,
	}, true
}

func (b *Buffer) hasLineBreakAt(off int) bool {
	brk := []rune(b.opt.LineBreak)
	if off < 0 || off+len(brk) > len(b.text) {
		return false
	}
	for i, r := range brk {
		if b.text[off+i] != r {
			return false
		}
	}
	return true
}

func (b *Buffer) hasLineBreakEndingAt(off int) bool {
	return b.hasLineBreakAt(off - len([]rune(b.opt.LineBreak)))
}
