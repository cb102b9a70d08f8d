package editor

// ViewportState is a stable host-facing snapshot of editor camera state.
type ViewportState struct {
	// TopRow is the grid row rendered at viewport screen row 0.
	TopRow int
	// VisibleRows is the number of content rows available for rendering.
	VisibleRows int
}

// ViewportState returns the current host-facing viewport state.
func (m Model) ViewportState() ViewportState {
	top := m.viewport.YOffset
	if top < 0 {
		top = 0
	}
	return ViewportState{
		TopRow:      top,
		VisibleRows: m.visibleRowCount(),
	}
}

// ScreenToOffset maps viewport-local screen coordinates to a document offset.
//
// Coordinates use terminal cells relative to the editor viewport.
func (m Model) ScreenToOffset(x, y int) int {
	return (&m).screenToOffset(x, y)
}

// OffsetToScreen maps a document offset to viewport-local screen coordinates.
//
// ok is false when the position is outside the visible viewport content.
func (m Model) OffsetToScreen(off int) (x int, y int, ok bool) {
	return (&m).offsetToScreen(off)
}

func (m Model) visibleRowCount() int {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h < 0 {
		return 0
	}
	return h
}
