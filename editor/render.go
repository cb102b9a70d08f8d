package editor

import (
	"fmt"
	"strings"
)

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	l := m.ensureLayout()
	st := m.cfg.Style

	cursor := m.buf.Cursor()
	cursorRow := m.sess.Grid().Locate(cursor).Row
	selStart, selEnd, selOK := m.buf.SelectionBounds()

	digitCount := 0
	if m.cfg.ShowLineNums {
		digitCount = gutterDigits(len(l.rows))
	}

	out := make([]string, 0, len(l.rows))
	for row, lr := range l.rows {
		var sb strings.Builder

		if m.cfg.ShowLineNums {
			numStyle := st.LineNum
			if m.focused && row == cursorRow {
				numStyle = st.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digitCount, row+1)))
			sb.WriteString(st.Gutter.Render(" "))
		}

		cursorX := -1
		if m.focused && row == cursorRow {
			cursorX = lr.caretX(cursor)
		}

		textStyle := st.Text
		if row == 0 {
			textStyle = st.Header.Inherit(st.Text)
		}

		for _, it := range lr.items {
			switch {
			case cursorX >= it.x && cursorX < it.x+it.width:
				sb.WriteString(st.Cursor.Render(it.text))
			case selOK && it.off >= selStart && it.off < selEnd:
				sb.WriteString(st.Selection.Render(it.text))
			case it.kind == itemDelim:
				sb.WriteString(st.Delimiter.Inherit(st.Text).Render(it.text))
			case it.kind == itemPad:
				sb.WriteString(st.Text.Render(it.text))
			default:
				sb.WriteString(textStyle.Render(it.text))
			}
		}
		// Cursor at row end is rendered as a 1-cell placeholder space.
		if cursorX >= lr.width {
			sb.WriteString(st.Cursor.Render(" "))
		}

		out = append(out, sb.String())
	}

	return strings.Join(out, "\n")
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}

// gutterWidth returns the number of cells in front of row content.
func (m *Model) gutterWidth(lineCount int) int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(lineCount) + 1
}
