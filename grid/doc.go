// Package grid derives a row/column view from delimiter-separated flat text.
//
// Offsets are 0-based rune offsets into the text. A Grid is an immutable
// snapshot: every text change produces a new Grid, either by a full Parse or
// by Model.RefreshRegion, and both paths yield identical results.
//
// Delimiters inside quoted fields are not special: a naive split is used.
package grid
