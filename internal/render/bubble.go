package render

import (
	"strings"

	"github.com/nkoivis/chatview/internal/textwidth"
)

// Align places a bubble against the left or right terminal edge.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Wrap greedily word-wraps text into lines of at most width display columns.
// Breaks happen at whitespace only; a single word wider than width gets its
// own line and overflows rather than being split.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var current strings.Builder
	currentWidth := 0

	for _, word := range words {
		w := textwidth.Width(word)
		if currentWidth == 0 {
			current.WriteString(word)
			currentWidth = w
			continue
		}
		if currentWidth+1+w <= width {
			current.WriteByte(' ')
			current.WriteString(word)
			currentWidth += 1 + w
			continue
		}
		lines = append(lines, current.String())
		current.Reset()
		current.WriteString(word)
		currentWidth = w
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}

	return lines
}

// Bubble frames text in a bordered box of geo.BubbleWidth content columns
// with one space of interior padding per side. Right-aligned bubbles are
// lead-padded so the frame's right edge meets the terminal's right margin.
func Bubble(text string, align Align, geo Geometry) string {
	wrapped := Wrap(text, geo.BubbleWidth)

	top := "┌" + strings.Repeat("─", geo.BubbleWidth+2) + "┐"
	bottom := "└" + strings.Repeat("─", geo.BubbleWidth+2) + "┘"

	lines := make([]string, 0, len(wrapped)+2)
	lines = append(lines, top)
	for _, l := range wrapped {
		lines = append(lines, "│ "+textwidth.Pad(l, geo.BubbleWidth)+" │")
	}
	lines = append(lines, bottom)

	if align == AlignRight {
		// frame is BubbleWidth+4 columns wide
		pad := geo.TermWidth - (geo.BubbleWidth + 4)
		if pad > 0 {
			indent := strings.Repeat(" ", pad)
			for i, l := range lines {
				lines[i] = indent + l
			}
		}
	}

	return strings.Join(lines, "\n")
}
