// Package transform implements structural edits over delimiter-separated text.
//
// Every function is pure: it takes a text snapshot plus structural parameters
// and returns the new text. Indices and offsets are clamped, never rejected.
// Offsets are rune offsets. A row with no content has no fields, matching the
// grid.
package transform

import "strings"

// RemoveRange deletes [start, start+length) while keeping the column
// structure of the rows it touches: delimiters inside the range are kept (in
// order, at start). Row breaks fully inside the range are deleted, merging
// the rows around them. A range edge that falls inside a multi-rune row break
// is moved off the break.
func RemoveRange(text string, start, length int, delimiter rune, rowBreak string) string {
	rs := []rune(text)
	start = clampInt(start, 0, len(rs))
	end := clampInt(start+maxInt(length, 0), start, len(rs))

	brk := []rune(rowBreak)
	for _, b := range breakStarts(rs, brk) {
		if b < start && start < b+len(brk) {
			start = b + len(brk)
		}
		if b < end && end < b+len(brk) {
			end = b
		}
	}
	if start >= end {
		return text
	}

	removed := string(rs[start:end])
	if rowBreak != "" {
		removed = strings.ReplaceAll(removed, rowBreak, "")
	}
	kept := strings.Repeat(string(delimiter), strings.Count(removed, string(delimiter)))

	var sb strings.Builder
	sb.WriteString(string(rs[:start]))
	sb.WriteString(kept)
	sb.WriteString(string(rs[end:]))
	return sb.String()
}

// InsertColumn inserts an empty field at columnIndex on each of the first
// rowCount rows.
//
// A row with exactly columnIndex fields gets a trailing delimiter (append).
// Rows with fewer fields are left as they are. An empty row has no fields, so
// it only changes for columnIndex 0, where it becomes one delimiter.
// columnIndex is clamped to [0, columnCount].
func InsertColumn(text string, columnIndex, rowCount, columnCount int, delimiter rune, rowBreak string) string {
	columnIndex = clampInt(columnIndex, 0, maxInt(columnCount, 0))
	d := string(delimiter)

	rows := splitRows(text, rowBreak)
	n := clampInt(rowCount, 0, len(rows))
	for i := 0; i < n; i++ {
		if rows[i] == "" {
			if columnIndex == 0 {
				rows[i] = d
			}
			continue
		}
		fields := strings.Split(rows[i], d)
		if len(fields) < columnIndex {
			continue
		}
		fields = append(fields, "")
		copy(fields[columnIndex+1:], fields[columnIndex:])
		fields[columnIndex] = ""
		rows[i] = strings.Join(fields, d)
	}
	return strings.Join(rows, rowBreak)
}

// RemoveColumn removes the field at columnIndex, together with one adjacent
// delimiter, from each of the first rowCount rows that has it. The following
// delimiter is removed, or the preceding one for a row's last field.
// columnIndex is clamped to [0, columnCount-1]; a grid without columns is
// returned unchanged.
func RemoveColumn(text string, columnIndex, rowCount, columnCount int, delimiter rune, rowBreak string) string {
	if columnCount <= 0 {
		return text
	}
	columnIndex = clampInt(columnIndex, 0, columnCount-1)
	d := string(delimiter)

	rows := splitRows(text, rowBreak)
	n := clampInt(rowCount, 0, len(rows))
	for i := 0; i < n; i++ {
		fields := strings.Split(rows[i], d)
		if len(fields) <= columnIndex {
			continue
		}
		fields = append(fields[:columnIndex], fields[columnIndex+1:]...)
		rows[i] = strings.Join(fields, d)
	}
	return strings.Join(rows, rowBreak)
}

// InsertRow splits row rowIndex at splitOffsetInRow. The text before the split
// stays on the row; the rest starts a new row right after it. A half that
// ends up empty is padded with empty fields up to columnCount.
func InsertRow(text string, rowIndex, splitOffsetInRow, columnCount int, delimiter rune, rowBreak string) string {
	rows := splitRows(text, rowBreak)
	rowIndex = clampInt(rowIndex, 0, len(rows)-1)

	rs := []rune(rows[rowIndex])
	split := clampInt(splitOffsetInRow, 0, len(rs))
	head, tail := string(rs[:split]), string(rs[split:])

	pad := strings.Repeat(string(delimiter), maxInt(columnCount-1, 0))
	if head == "" {
		head = pad
	}
	if tail == "" {
		tail = pad
	}

	out := make([]string, 0, len(rows)+1)
	out = append(out, rows[:rowIndex]...)
	out = append(out, head, tail)
	out = append(out, rows[rowIndex+1:]...)
	return strings.Join(out, rowBreak)
}

// DuplicateRow inserts a copy of [rowStart, rowEnd) right after it.
//
// The range may or may not include the row's trailing break; when it does not,
// the copy is preceded by a row break.
func DuplicateRow(text string, rowStart, rowEnd int, rowBreak string) string {
	rs := []rune(text)
	rowStart = clampInt(rowStart, 0, len(rs))
	rowEnd = clampInt(rowEnd, rowStart, len(rs))

	row := string(rs[rowStart:rowEnd])
	ins := row
	if rowBreak == "" || !strings.HasSuffix(row, rowBreak) {
		ins = rowBreak + row
	}

	var sb strings.Builder
	sb.WriteString(string(rs[:rowEnd]))
	sb.WriteString(ins)
	sb.WriteString(string(rs[rowEnd:]))
	return sb.String()
}

// RemoveRow deletes the row [rowStart, rowEnd) and one row break: the
// trailing one, or the preceding one when the row is the last. Removing the
// only row leaves the empty document.
func RemoveRow(text string, rowStart, rowEnd int, rowBreak string) string {
	rs := []rune(text)
	rowStart = clampInt(rowStart, 0, len(rs))
	rowEnd = clampInt(rowEnd, rowStart, len(rs))

	head := string(rs[:rowStart])
	row := string(rs[rowStart:rowEnd])
	tail := string(rs[rowEnd:])

	if rowBreak != "" && !strings.HasSuffix(row, rowBreak) {
		switch {
		case strings.HasPrefix(tail, rowBreak):
			tail = tail[len(rowBreak):]
		case strings.HasSuffix(head, rowBreak):
			head = head[:len(head)-len(rowBreak)]
		}
	}
	return head + tail
}

// StripStructural removes every delimiter and row break from text, so that it
// can be pasted into a single field. "\r\n" and "\r" are treated as "\n" and
// removed as well.
func StripStructural(text string, delimiter rune, rowBreak string) string {
	s := strings.ReplaceAll(text, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	for {
		next := stripOnce(s, delimiter, rowBreak)
		if next == s {
			return s
		}
		s = next
	}
}

func stripOnce(s string, delimiter rune, rowBreak string) string {
	if rowBreak != "" {
		s = strings.ReplaceAll(s, rowBreak, "")
	}
	s = strings.ReplaceAll(s, "\n", "")
	return strings.ReplaceAll(s, string(delimiter), "")
}

func splitRows(text, rowBreak string) []string {
	if rowBreak == "" {
		return []string{text}
	}
	return strings.Split(text, rowBreak)
}

// breakStarts returns the rune offsets of row breaks in rs, scanning left to
// right without overlap.
func breakStarts(rs, brk []rune) []int {
	if len(brk) == 0 {
		return nil
	}
	var out []int
	for i := 0; i+len(brk) <= len(rs); {
		match := true
		for j, r := range brk {
			if rs[i+j] != r {
				match = false
				break
			}
		}
		if match {
			out = append(out, i)
			i += len(brk)
			continue
		}
		i++
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
