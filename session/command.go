package session

import "fmt"

// Command is one of the grid commands a Session executes.
type Command int

const (
	AddColumn Command = iota
	RemoveColumn
	AddLine
	DuplicateLine
	RemoveLine
	GotoNextColumn
	GotoPreviousColumn
	Cut
	Copy
	Paste
	Undo
	Redo
)

var commandNames = map[Command]string{
	AddColumn:          "AddColumn",
	RemoveColumn:       "RemoveColumn",
	AddLine:            "AddLine",
	DuplicateLine:      "DuplicateLine",
	RemoveLine:         "RemoveLine",
	GotoNextColumn:     "GotoNextColumn",
	GotoPreviousColumn: "GotoPreviousColumn",
	Cut:                "Cut",
	Copy:               "Copy",
	Paste:              "Paste",
	Undo:               "Undo",
	Redo:               "Redo",
}

func (c Command) String() string {
	if s, ok := commandNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Command(%d)", int(c))
}
