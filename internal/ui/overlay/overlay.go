// Package overlay composes the drawer layer on top of the base view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/drawer/internal/ui/styles"
)

// Compose overlays content on top of a base view. Visible (non-space)
// spans in each overlay line replace the base at the same columns; the
// rest of the base shows through. ANSI-aware on both sides.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		plain := ansi.Strip(overlayLine)
		if strings.TrimSpace(plain) == "" {
			continue
		}

		// Visible span of the overlay line, in display columns.
		startCol := 0
		for _, r := range plain {
			if r != ' ' {
				break
			}
			startCol++
		}
		trimmed := strings.TrimRight(plain, " ")
		endCol := startCol + ansi.StringWidth(trimmed[startCol:])

		content := ansi.Cut(overlayLine, startCol, endCol)

		baseLine := baseLines[i]
		if w := ansi.StringWidth(ansi.Strip(baseLine)); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		result := ansi.Cut(baseLine, 0, startCol) + content
		if endCol < width {
			result += ansi.Cut(baseLine, endCol, width)
		}
		baseLines[i] = result
	}

	return strings.Join(baseLines, "\n")
}

// Dim re-renders a base view as a backdrop: styling is stripped and the
// text is repainted in the theme's subtle color so the open drawer reads
// as the focused layer.
func Dim(base string) string {
	subtle := styles.T().S().Subtle
	lines := strings.Split(base, "\n")
	for i, line := range lines {
		lines[i] = subtle.Render(ansi.Strip(line))
	}
	return strings.Join(lines, "\n")
}
