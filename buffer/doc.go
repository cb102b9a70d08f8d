// Package buffer implements the flat text document that hosts a grid session.
//
// Positions are 0-based rune offsets into the whole text. Ranges are
// half-open: [Start, End). Pos gives the (row, col) view used for display,
// with rows separated by Options.LineBreak.
package buffer
