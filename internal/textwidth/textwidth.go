// Package textwidth measures and pads strings by terminal display columns
// rather than bytes or runes, so wide (CJK, emoji) and zero-width characters
// line up correctly in rendered output.
package textwidth

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Pad appends spaces so the visual width of s equals width. Strings already
// at or beyond the target are returned unchanged; callers wrap before
// padding, so truncation is never needed here.
func Pad(s string, width int) string {
	extra := width - Width(s)
	if extra <= 0 {
		return s
	}
	return s + strings.Repeat(" ", extra)
}

// PadLeft prepends spaces so the visual width of s equals width. Used for
// right-justifying header lines against the terminal edge.
func PadLeft(s string, width int) string {
	extra := width - Width(s)
	if extra <= 0 {
		return s
	}
	return strings.Repeat(" ", extra) + s
}
