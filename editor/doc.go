// Package editor provides a Bubble Tea component for editing delimiter
// separated text as an aligned grid.
//
// The component owns a buffer.Buffer and a session.Session. Plain typing and
// caret movement go to the buffer; structural commands (columns, rows,
// clipboard, history) go through the session so that the column structure is
// kept intact.
package editor
