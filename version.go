// Package gridtext edits delimiter-separated text as a grid of rows and
// columns while storing it as one flat string.
//
// The engine lives in subpackages: grid parses and locates, transform holds
// the pure structural edits, navigate moves the caret by cell, session runs
// commands against a host buffer, and editor is a Bubble Tea component on
// top of buffer.
package gridtext

import (
	_ "embed"
	"regexp"
	"strings"
)

// Name is the program and module base name.
const Name = "gridtext"

//go:embed VERSION
var embeddedVersion string

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// Version returns the SemVer from the embedded VERSION file, without `v`.
func Version() string { return strings.TrimSpace(embeddedVersion) }

// VersionTag returns Version as a git tag.
func VersionTag() string { return "v" + Version() }

// VersionString is the -version output of the gridtext command.
func VersionString() string { return Name + " " + VersionTag() }

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool { return semverRE.MatchString(strings.TrimSpace(v)) }
