// Package render turns a conversation's messages into one pager-ready text
// document: display-width-aware word wrap, bordered bubbles aligned by
// authorship, and sender/timestamp headers.
package render

// DefaultWidthFactor is the share of the terminal a bubble may occupy.
// Keeping bubbles under full width leaves room for the left/right alignment
// to read at any terminal size.
const DefaultWidthFactor = 0.55

const fallbackTermWidth = 80

// Geometry fixes the terminal dimensions for one run. It is computed once at
// startup and threaded through rendering explicitly, so tests can render at
// arbitrary fixed widths.
type Geometry struct {
	TermWidth   int
	BubbleWidth int // content columns inside a bubble, excluding frame
}

// NewGeometry derives bubble geometry from the terminal width. A factor
// outside (0, 1) falls back to DefaultWidthFactor.
func NewGeometry(termWidth int, factor float64) Geometry {
	if termWidth <= 0 {
		termWidth = fallbackTermWidth
	}
	if factor <= 0 || factor >= 1 {
		factor = DefaultWidthFactor
	}
	bubble := int(float64(termWidth) * factor)
	if bubble < 1 {
		bubble = 1
	}
	return Geometry{TermWidth: termWidth, BubbleWidth: bubble}
}
