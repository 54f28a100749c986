package render

import (
	"strings"

	"wolfram-ca/internal/automaton"
)

// Text renders a history as one line per configuration, using the
// given glyph for on cells and a space for off cells.
func Text(hist automaton.History, on rune) string {
	var b strings.Builder
	for i, row := range hist {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			if c == automaton.On {
				b.WriteRune(on)
			} else {
				b.WriteByte(' ')
			}
		}
	}
	return b.String()
}

// TextCentered renders a history like Text but with every line centered
// to the final configuration's width, so the output lines up as the
// triangle the growing lattice describes.
func TextCentered(hist automaton.History, on rune) string {
	if len(hist) == 0 {
		return ""
	}
	width := len(hist.Final())
	var b strings.Builder
	for i, row := range hist {
		if i > 0 {
			b.WriteByte('\n')
		}
		margin := (width - len(row)) / 2
		for j := 0; j < margin; j++ {
			b.WriteByte(' ')
		}
		for _, c := range row {
			if c == automaton.On {
				b.WriteRune(on)
			} else {
				b.WriteByte(' ')
			}
		}
	}
	return b.String()
}
