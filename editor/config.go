package editor

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Field delimiter and row break. Zero values use ',' and "\n".
	Delimiter rune
	RowBreak  string

	// Rendering options.
	ShowLineNums bool
	// RawLayout disables column alignment; rows render as they are stored.
	RawLayout bool
	Style     Style

	// Forwarded to buffer.Options.
	HistoryLimit int

	// KeyMap overrides DefaultKeyMap when non-zero.
	KeyMap KeyMap

	ReadOnly bool

	// Clipboard backs copy, cut and paste. When nil those commands fail and
	// the error is reported by Model.Err.
	Clipboard Clipboard

	ScrollPolicy ScrollPolicy

	// OnChange fires after every update that changed the buffer version.
	OnChange func(ChangeEvent)

	// OnCaretGridPositionChanged receives the caret cell, 1-based, whenever
	// the caret enters another cell.
	OnCaretGridPositionChanged func(row, column int)

	// OnTextChanged fires once per text change.
	OnTextChanged func()
}
