package editor

import "github.com/iw2rmb/gridtext/session"

// Clipboard backs Cut, Copy and Paste. Failures never reach the UI loop;
// they are kept and reported by Model.Err.
type Clipboard = session.Clipboard
