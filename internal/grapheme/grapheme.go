// Package grapheme measures cell text in terminal columns.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// RuneWidth returns the terminal cell width of r. A tab counts as one cell;
// the editor renders it as a single blank.
func RuneWidth(r rune) int {
	if r == '\t' {
		return 1
	}
	w := runewidth.RuneWidth(r)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(string(r)); fallback > w {
			w = fallback
		}
	}
	return w
}

// Width returns the display width of text in terminal cells as the sum of its
// rune widths, so that it agrees with per-rune cursor placement.
func Width(text string) int {
	w := 0
	for _, r := range text {
		w += RuneWidth(r)
	}
	return w
}

// PadRight appends spaces to text until it is width cells wide. Text that is
// already wider is returned unchanged.
func PadRight(text string, width int) string {
	w := Width(text)
	if w >= width {
		return text
	}
	return text + strings.Repeat(" ", width-w)
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
