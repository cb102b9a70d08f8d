package editor

// ScrollPolicy controls whether the viewport may scroll away from the caret
// row.
type ScrollPolicy int

const (
	// ScrollAllowManual lets the mouse wheel scroll rows without moving the
	// caret.
	ScrollAllowManual ScrollPolicy = iota
	// ScrollFollowCursorOnly ignores wheel scrolling; only caret moves scroll.
	ScrollFollowCursorOnly
)
