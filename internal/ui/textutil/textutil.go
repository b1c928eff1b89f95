// Package textutil measures and shortens text by terminal columns.
package textutil

import (
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks removed text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate cuts s to at most maxWidth columns, ending in an ellipsis when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// TruncateMiddle cuts s to at most maxWidth columns by removing text from the
// middle, so both the start and the end (e.g. a file name) stay visible.
func TruncateMiddle(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	avail := maxWidth - Width(Ellipsis)
	if avail <= 0 {
		return Ellipsis
	}
	headWidth := avail / 2
	tailWidth := avail - headWidth

	runes := []rune(s)
	head := make([]rune, 0, len(runes))
	w := 0
	for _, r := range runes {
		rw := runewidth.RuneWidth(r)
		if w+rw > headWidth {
			break
		}
		head = append(head, r)
		w += rw
	}
	tailStart := len(runes)
	w = 0
	for i := len(runes) - 1; i >= 0; i-- {
		rw := runewidth.RuneWidth(runes[i])
		if w+rw > tailWidth {
			break
		}
		tailStart = i
		w += rw
	}
	return string(head) + Ellipsis + string(runes[tailStart:])
}

// PadRight pads s with spaces to width columns, truncating if it is wider.
func PadRight(s string, width int) string {
	if Width(s) >= width {
		return Truncate(s, width)
	}
	return runewidth.FillRight(s, width)
}
