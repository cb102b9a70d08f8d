// Package session runs grid commands against a host text surface.
//
// A Session keeps a grid snapshot of the host text in sync with host change
// notifications and executes the closed Command set: each command locates the
// caret, applies one pure transform, replaces the host text once, refreshes
// the snapshot and places the caret once.
//
// A Session is single-threaded: it must be used from the goroutine that owns
// the host.
package session
