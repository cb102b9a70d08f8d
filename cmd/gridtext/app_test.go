package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/gridtext/editor"
	"github.com/iw2rmb/gridtext/session"
)

func TestReadDocumentMissingFileIsEmpty(t *testing.T) {
	text, err := readDocument(filepath.Join(t.TempDir(), "new.csv"))
	if err != nil {
		t.Fatalf("readDocument: %v", err)
	}
	if text != "" {
		t.Fatalf("text: got %q, want empty", text)
	}
}

func TestAppSaveWritesFileAndClearsDirty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.csv")
	a := newApp(path, editor.Config{Text: "a,b"})

	next, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	a = next.(app)
	if !a.editor.Dirty() {
		t.Fatalf("Dirty: got false after typing")
	}

	next, _ = a.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	a = next.(app)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "xa,b" {
		t.Fatalf("file: got %q, want %q", data, "xa,b")
	}
	if a.editor.Dirty() {
		t.Fatalf("Dirty: got true after save")
	}
	if !strings.Contains(a.statusLine(), "saved") {
		t.Fatalf("status: got %q", a.statusLine())
	}
}

func TestAppStatusLineShowsCell(t *testing.T) {
	a := newApp("", editor.Config{Text: "a,b\nc,d"})
	a.editor = a.editor.Execute(session.AddColumn)
	line := a.statusLine()
	if !strings.Contains(line, "[scratch] *") || !strings.Contains(line, "row 1, col 1") {
		t.Fatalf("status: got %q", line)
	}
}

func TestAppHelpOverlaysGrid(t *testing.T) {
	a := newApp("", editor.Config{Text: "a,b"})
	next, _ := a.Update(tea.WindowSizeMsg{Width: 160, Height: 20})
	a = next.(app)
	height := lipgloss.Height(a.View())

	next, _ = a.Update(tea.KeyMsg{Type: tea.KeyF1})
	a = next.(app)
	if !a.help.ShowAll {
		t.Fatalf("ShowAll: got false after f1")
	}
	if got := a.editor.ViewportState().VisibleRows; got != 19 {
		t.Fatalf("visible rows with help: got %d, want 19", got)
	}
	view := a.View()
	if !strings.Contains(view, "add column") {
		t.Fatalf("view: help missing")
	}
	if got := lipgloss.Height(view); got != height {
		t.Fatalf("view height with help: got %d, want %d", got, height)
	}
}
