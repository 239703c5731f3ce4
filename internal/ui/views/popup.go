package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay centers a popup over the main content. The base is
// desaturated so the modal reads as the active surface, then the popup
// box is spliced into the base line by line.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)
	popupLines := strings.Split(styledPopup, "\n")

	modalW := lipgloss.Width(styledPopup)
	modalH := len(popupLines)
	x := (width - modalW) / 2
	if x < 0 {
		x = 0
	}
	y := (height - modalH) / 2
	if y < 0 {
		y = 0
	}

	// Work on the plain base; every kept line is restyled gray anyway.
	base := strings.Split(stripANSI(mainContent), "\n")
	for len(base) < y+modalH {
		base = append(base, "")
	}

	gray := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	out := make([]string, len(base))
	for i, line := range base {
		if i < y || i >= y+modalH {
			out[i] = gray.Render(line)
			continue
		}

		// Splice the popup row into this base line
		padded := line
		if w := runewidth.StringWidth(padded); w < x+modalW {
			padded += strings.Repeat(" ", x+modalW-w)
		}
		left := runewidth.Truncate(padded, x, "")
		right := runewidth.TruncateLeft(padded, x+modalW, "")
		out[i] = gray.Render(left) + popupLines[i-y] + gray.Render(right)
	}
	return strings.Join(out, "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripANSI removes ANSI color/style codes
func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}
