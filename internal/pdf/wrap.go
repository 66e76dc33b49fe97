// Package pdf lays out résumé content on fixed-size pages: word wrapping,
// card sizing, a page cursor with break policy, and the drawers built on them.
package pdf

import (
	"strings"

	"cvpdf/internal/canvas"
)

// Wrap splits text into lines no wider than maxWidth, greedily and in one
// pass. A single word wider than maxWidth is kept whole on its own line.
// Empty or whitespace-only text yields no lines.
func Wrap(m canvas.Measurer, text string, f canvas.Font, maxWidth float64) []string {
	var lines []string
	line := ""

	for _, word := range strings.Fields(text) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if m.StringWidth(candidate, f) <= maxWidth {
			line = candidate
			continue
		}
		if line != "" {
			lines = append(lines, line)
		}
		line = word
	}

	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
