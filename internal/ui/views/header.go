package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// HeaderRenderer renders the results summary line
type HeaderRenderer struct {
	styles  *Styles
	printer *message.Printer
}

// NewHeaderRenderer creates a new header renderer
func NewHeaderRenderer(styles *Styles) *HeaderRenderer {
	return &HeaderRenderer{
		styles:  styles,
		printer: message.NewPrinter(language.English),
	}
}

// RenderSummary builds the header line: grouped result count, noun
// pluralized on count == 1, the keyword verbatim, and the page position.
func (h *HeaderRenderer) RenderSummary(count int, keyword string, page, totalPages, width int) string {
	noun := "products"
	if count == 1 {
		noun = "product"
	}
	summary := h.styles.Summary.Render(
		fmt.Sprintf("%s %s for %q", h.printer.Sprintf("%d", count), noun, keyword))
	pageInfo := h.styles.PageInfo.Render(fmt.Sprintf("page %d of %d", page, totalPages))

	// Right-align the page position when there is room
	gap := width - lipgloss.Width(summary) - lipgloss.Width(pageInfo)
	if gap > 1 {
		return summary + strings.Repeat(" ", gap) + pageInfo
	}
	return summary + "  " + pageInfo
}
