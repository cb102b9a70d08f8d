package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/gridtext/buffer"
	"github.com/iw2rmb/gridtext/session"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.buf == nil {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.err = m.sess.PasteText(string(msg.Runes))
		}
		return m, nil
	}

	km := m.cfg.KeyMap

	switch {
	case key.Matches(msg, km.Left):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirDown})

	case key.Matches(msg, km.ShiftLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirUp, Extend: true})
	case key.Matches(msg, km.ShiftDown):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirDown, Extend: true})

	case key.Matches(msg, km.WordLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})

	case key.Matches(msg, km.Home):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.buf.DeleteBackward()
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			m.buf.DeleteForward()
		}

	case key.Matches(msg, km.NextColumn):
		m.runCommand(session.GotoNextColumn)
	case key.Matches(msg, km.PrevColumn):
		m.runCommand(session.GotoPreviousColumn)
	case key.Matches(msg, km.AddColumn):
		m.runCommand(session.AddColumn)
	case key.Matches(msg, km.RemoveColumn):
		m.runCommand(session.RemoveColumn)
	case key.Matches(msg, km.AddLine):
		m.runCommand(session.AddLine)
	case key.Matches(msg, km.DuplicateLine):
		m.runCommand(session.DuplicateLine)
	case key.Matches(msg, km.RemoveLine):
		m.runCommand(session.RemoveLine)

	case key.Matches(msg, km.Undo):
		m.runCommand(session.Undo)
	case key.Matches(msg, km.Redo):
		m.runCommand(session.Redo)

	case key.Matches(msg, km.Copy):
		m.runCommand(session.Copy)
	case key.Matches(msg, km.Cut):
		if !m.cfg.ReadOnly {
			m.runCommand(session.Cut)
		} else {
			m.runCommand(session.Copy)
		}
	case key.Matches(msg, km.Paste):
		m.runCommand(session.Paste)

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			if !m.cfg.ReadOnly {
				m.buf.InsertText(string(msg.Runes))
			}
		}
	}

	return m, nil
}

// runCommand executes cmd unless it would modify a read-only document.
// Failures are kept for Err and never interrupt input handling.
func (m *Model) runCommand(cmd session.Command) {
	if m.cfg.ReadOnly && mutates(cmd) {
		return
	}
	m.err = m.sess.Execute(cmd)
}
