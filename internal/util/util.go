// Package util contains small helpers for laying out text in cells.
package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateAt truncates the string to the given display width, marking the
// truncation with "...".
func TruncateAt(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return strings.Repeat(".", width)
	}
	return runewidth.Truncate(s, width, "...")
}

// PadCenter centers the string in the given display width, padding with
// spaces; strings that are too wide are truncated.
func PadCenter(s string, width int) string {
	s = TruncateAt(s, width)
	missing := width - runewidth.StringWidth(s)
	if missing <= 0 {
		return s
	}
	left := missing / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", missing-left)
}

// PadRight pads the string with spaces to the given display width;
// strings that are too wide are truncated.
func PadRight(s string, width int) string {
	s = TruncateAt(s, width)
	return runewidth.FillRight(s, width)
}
