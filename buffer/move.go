package buffer

import "github.com/iw2rmb/gridtext/internal/grapheme"

type MoveUnit int

const (
	MoveRune MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, updates selection anchor/end; if false clears selection
}

func (b *Buffer) Move(m Move) {
	prevCursor := b.cursor
	prevSel := b.sel

	nextCursor := ClampOffset(b.moveCursor(prevCursor, m), len(b.text))

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != nextCursor {
			nextSel = selectionState{active: true, anchor: anchor, end: nextCursor}
		}
	}

	if prevCursor == nextCursor && selectionStateEqual(prevSel, nextSel) {
		return
	}

	b.cursor = nextCursor
	b.sel = nextSel
	b.version++
}

func (b *Buffer) moveCursor(off int, m Move) int {
	switch m.Unit {
	case MoveRune:
		return b.moveRune(off, m.Dir)
	case MoveWord:
		return b.moveWord(off, m.Dir)
	case MoveLine:
		return b.moveLine(off, m.Dir)
	case MoveDoc:
		return b.moveDoc(off, m.Dir)
	default:
		return off
	}
}

// moveRune steps one rune left or right, crossing a line break in one step.
func (b *Buffer) moveRune(off int, dir MoveDir) int {
	brkLen := len([]rune(b.opt.LineBreak))
	switch dir {
	case DirLeft:
		if b.hasLineBreakEndingAt(off) {
			return off - brkLen
		}
		return off - 1
	case DirRight:
		if b.hasLineBreakAt(off) {
			return off + brkLen
		}
		return off + 1
	case DirUp, DirDown, DirHome, DirEnd:
		return b.moveLine(off, dir)
	default:
		return off
	}
}

func (b *Buffer) moveWord(off int, dir MoveDir) int {
	starts := b.lineStarts()
	p := b.PosFromOffset(off)
	start, end := starts[p.Row], b.lineEnd(starts, p.Row)
	line := b.text[start:end]

	switch dir {
	case DirLeft:
		return start + prevWordBoundary(line, p.Col)
	case DirRight:
		return start + nextWordBoundary(line, p.Col)
	case DirHome:
		return start
	case DirEnd:
		return end
	default:
		return off
	}
}

func (b *Buffer) moveLine(off int, dir MoveDir) int {
	starts := b.lineStarts()
	p := b.PosFromOffset(off)

	switch dir {
	case DirHome:
		return starts[p.Row]
	case DirEnd:
		return b.lineEnd(starts, p.Row)
	case DirUp:
		if p.Row == 0 {
			return off
		}
		return b.OffsetFromPos(Pos{Row: p.Row - 1, Col: p.Col})
	case DirDown:
		if p.Row == len(starts)-1 {
			return off
		}
		return b.OffsetFromPos(Pos{Row: p.Row + 1, Col: p.Col})
	default:
		return off
	}
}

func (b *Buffer) moveDoc(off int, dir MoveDir) int {
	switch dir {
	case DirHome, DirUp:
		return 0
	case DirEnd, DirDown:
		return len(b.text)
	default:
		return off
	}
}

// Word boundary rules (v0):
// - skip whitespace, then skip non-whitespace
// - newline is a hard boundary (so this operates on a single logical line)
func prevWordBoundary(line []rune, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && grapheme.IsSpace(string(line[i-1])) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(string(line[i-1])) {
		i--
	}
	return i
}

func nextWordBoundary(line []rune, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && grapheme.IsSpace(string(line[i])) {
		i++
	}
	for i < len(line) && !grapheme.IsSpace(string(line[i])) {
		i++
	}
	return i
}
