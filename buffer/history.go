package buffer

type bufferSnapshot struct {
	text   []rune
	cursor int
	sel    selectionState
}

// historyState holds snapshot stacks. Whole-text snapshots keep undo exact
// for the replace-all edits grid commands produce.
type historyState struct {
	undo []bufferSnapshot
	redo []bufferSnapshot
}

// push appends s to stack, dropping the oldest entries beyond limit.
func push(stack []bufferSnapshot, s bufferSnapshot, limit int) []bufferSnapshot {
	stack = append(stack, s)
	if len(stack) > limit {
		stack = stack[len(stack)-limit:]
	}
	return stack
}

func pop(stack []bufferSnapshot) ([]bufferSnapshot, bufferSnapshot) {
	i := len(stack) - 1
	return stack[:i], stack[i]
}

func (b *Buffer) snapshot() bufferSnapshot {
	return bufferSnapshot{
		text:   append([]rune(nil), b.text...),
		cursor: b.cursor,
		sel:    b.sel,
	}
}

// restore loads s, clamping the caret and dropping a selection that became
// empty.
func (b *Buffer) restore(s bufferSnapshot) {
	b.text = append([]rune(nil), s.text...)
	b.cursor = ClampOffset(s.cursor, len(b.text))
	b.sel = selectionState{}
	if !s.sel.active {
		return
	}
	anchor := ClampOffset(s.sel.anchor, len(b.text))
	end := ClampOffset(s.sel.end, len(b.text))
	if anchor != end {
		b.sel = selectionState{active: true, anchor: anchor, end: end}
	}
}

// recordUndo stores the state before an edit and invalidates redo. A
// non-positive limit disables history.
func (b *Buffer) recordUndo(prev bufferSnapshot) {
	if b.opt.HistoryLimit <= 0 {
		return
	}
	b.hist.undo = push(b.hist.undo, prev, b.opt.HistoryLimit)
	b.hist.redo = nil
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

// ResetHistory drops both undo and redo stacks.
func (b *Buffer) ResetHistory() { b.hist = historyState{} }

// Undo restores the previous snapshot. It reports false when there is
// nothing to undo.
func (b *Buffer) Undo() bool {
	if !b.CanUndo() {
		return false
	}
	cur := b.snapshot()
	var prev bufferSnapshot
	b.hist.undo, prev = pop(b.hist.undo)
	b.hist.redo = append(b.hist.redo, cur)
	b.travel(cur, prev)
	return true
}

// Redo reapplies the last undone snapshot.
func (b *Buffer) Redo() bool {
	if !b.CanRedo() {
		return false
	}
	cur := b.snapshot()
	var next bufferSnapshot
	b.hist.redo, next = pop(b.hist.redo)
	if b.opt.HistoryLimit > 0 {
		b.hist.undo = push(b.hist.undo, cur, b.opt.HistoryLimit)
	}
	b.travel(cur, next)
	return true
}

// travel moves from cur to to and reports the text difference as one change.
func (b *Buffer) travel(cur, to bufferSnapshot) {
	change := b.beginChange()
	b.restore(to)
	b.version++
	if applied, ok := replacementAppliedEdit(cur.text, to.text); ok {
		change.addAppliedEdit(applied)
	}
	b.commitChange(change)
}
