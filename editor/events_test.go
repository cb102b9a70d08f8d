package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestOnChange_FiresOnMutationsAndSkipsNoOps(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Text: "ab",
		OnChange: func(ev ChangeEvent) {
			events = append(events, ev)
		},
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if len(events) != 1 {
		t.Fatalf("events after move: got %d, want %d", len(events), 1)
	}
	if got := events[0].Text; got != "ab" {
		t.Fatalf("event text after move: got %q, want %q", got, "ab")
	}
	if got := events[0].Cursor; got != 1 {
		t.Fatalf("event cursor after move: got %d, want %d", got, 1)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight}) // to EOL
	if len(events) != 2 {
		t.Fatalf("events after move to EOL: got %d, want %d", len(events), 2)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight}) // no-op at EOL
	if len(events) != 2 {
		t.Fatalf("events after no-op: got %d, want %d", len(events), 2)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(",X")})
	if len(events) != 3 {
		t.Fatalf("events after insert: got %d, want %d", len(events), 3)
	}
	ev := events[2]
	if ev.Text != "ab,X" || ev.Row != 0 || ev.Column != 1 {
		t.Fatalf("event after insert: got text=%q cell=(%d,%d), want %q (0,1)", ev.Text, ev.Row, ev.Column, "ab,X")
	}
}

func TestOnCaretGridPositionChanged_ReportsCellChangesOnce(t *testing.T) {
	var cells [][2]int
	m := New(Config{
		Text: "a,b\nc",
		OnCaretGridPositionChanged: func(row, column int) {
			cells = append(cells, [2]int{row, column})
		},
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight}) // same cell
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})

	want := [][2]int{{1, 2}, {2, 1}}
	if len(cells) != len(want) || cells[0] != want[0] || cells[1] != want[1] {
		t.Fatalf("cells: got %v, want %v", cells, want)
	}
}

func TestOnTextChanged_OncePerCommand(t *testing.T) {
	n := 0
	m := New(Config{
		Text:          "a,b\nc,d",
		OnTextChanged: func() { n++ },
	})

	m, _ = m.Update(altKey('c'))
	if n != 1 {
		t.Fatalf("OnTextChanged after add column: got %d, want 1", n)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if n != 1 {
		t.Fatalf("OnTextChanged after navigation: got %d, want 1", n)
	}
	m, _ = m.Update(runesKey("z"))
	if n != 2 {
		t.Fatalf("OnTextChanged after typing: got %d, want 2", n)
	}
}
