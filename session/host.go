package session

// Host is the text surface a Session edits. Offsets are rune offsets.
type Host interface {
	Text() string
	// ReplaceAll replaces the whole text. The host may report the change back
	// through Session.HandleChange; such reports are ignored while a command
	// is applying its edit.
	ReplaceAll(text string)

	Cursor() int
	SetCursor(offset int)

	// SelectionBounds returns the normalized selection, if any.
	SelectionBounds() (start, end int, ok bool)
	ClearSelection()
}

// History is implemented by hosts with their own undo stack.
type History interface {
	Undo() bool
	Redo() bool
	ResetHistory()
}

// Clipboard provides clipboard integration for Cut, Copy and Paste.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// Events are optional callbacks. They run synchronously after a command has
// finished, so they may issue further commands.
type Events struct {
	// OnCaretGridPositionChanged receives the caret cell, 1-based, whenever
	// it differs from the last reported one.
	OnCaretGridPositionChanged func(row, column int)

	// OnTextChanged fires once for every command or host change that
	// modified the text.
	OnTextChanged func()
}
