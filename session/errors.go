package session

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCommand is returned by Execute for a value outside the
	// Command set.
	ErrUnknownCommand = errors.New("session: unknown command")

	// ErrEditInProgress is returned when a command is issued while another
	// one is still applying its edit, typically from inside a host change
	// notification.
	ErrEditInProgress = errors.New("session: edit in progress")

	// ErrCaretOutOfRange is returned when the host reports a caret outside
	// its own text.
	ErrCaretOutOfRange = errors.New("session: caret out of range")

	// ErrNoClipboard is returned by clipboard commands when no Clipboard is
	// configured.
	ErrNoClipboard = errors.New("session: no clipboard")
)

func wrapClipboard(op string, err error) error {
	return fmt.Errorf("clipboard %s: %w", op, err)
}
