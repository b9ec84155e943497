// Package textutil provides width-aware helpers for laying out terminal cells.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the number of columns s occupies, ignoring ANSI styling.
func Width(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens plain text to at most w columns, ending in an ellipsis
// when anything was cut.
func Truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, Ellipsis)
}

// Center pads plain text on both sides to exactly w columns. Text wider than
// w is truncated.
func Center(s string, w int) string {
	s = Truncate(s, w)
	gap := w - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// SpaceBetween puts left and right (both possibly styled) at the two ends of
// a w-column line. When they do not fit, left is truncated first.
func SpaceBetween(left, right string, w int) string {
	rw := Width(right)
	if rw >= w {
		return ansi.Truncate(right, max(w, 0), "")
	}
	if Width(left)+rw+1 > w {
		left = ansi.Truncate(left, w-rw-1, Ellipsis)
	}
	return left + strings.Repeat(" ", w-Width(left)-rw) + right
}
