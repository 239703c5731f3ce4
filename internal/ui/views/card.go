package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"shopgrid/internal/domain"
)

// CardRenderer handles rendering of product cards
type CardRenderer struct {
	styles     *Styles
	showImages bool
	printer    *message.Printer
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles, showImages bool) *CardRenderer {
	return &CardRenderer{
		styles:     styles,
		showImages: showImages,
		printer:    message.NewPrinter(language.English),
	}
}

// RenderCard renders one product as a bordered card with a fixed inner
// width. The bottom row carries the product's ASIN so a card can be
// correlated back to its record; an absent ASIN leaves the row blank.
func (r *CardRenderer) RenderCard(p domain.Product, width int, selected bool) string {
	if width < 10 {
		width = 10
	}

	var rows []string

	// Title, wrapped and clamped to two rows
	title := p.Title
	if title == "" {
		title = "(untitled)"
	}
	titleBlock := r.styles.CardTitle.Width(width).Height(2).MaxHeight(2).Render(title)
	rows = append(rows, titleBlock)

	// Rating row only exists when a rating came back. A zero rating is a
	// real value and still renders; only absence drops the row.
	if p.HasRating() {
		stars := r.styles.Rating.Foreground(lipgloss.Color(RatingColor(*p.Rating))).
			Render(fmt.Sprintf("★ %.1f", *p.Rating))
		reviews := r.styles.Reviews.Render(
			r.printer.Sprintf(" (%d)", p.Reviews))
		rows = append(rows, padRow(stars+reviews, width))
	} else {
		rows = append(rows, strings.Repeat(" ", width))
	}

	// Image slot shows the title as its accessible text
	if r.showImages {
		if p.Image != "" {
			rows = append(rows, r.styles.ImageNote.Render(
				runewidth.Truncate("⊡ "+title, width, "…")))
		} else {
			rows = append(rows, strings.Repeat(" ", width))
		}
	}

	rows = append(rows, r.styles.Tag.Render(
		runewidth.Truncate(p.ASIN, width, "…")))

	box := r.styles.Card
	if selected {
		box = r.styles.CardSelected
	}
	return box.Width(width + 2).Render(strings.Join(rows, "\n"))
}

// RenderDetail builds the expanded popup body for one product.
func (r *CardRenderer) RenderDetail(p domain.Product, width int) string {
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	title := p.Title
	if title == "" {
		title = "(untitled)"
	}
	b.WriteString(r.styles.CardTitle.Width(width).Render(title))
	b.WriteString("\n\n")

	if p.HasRating() {
		b.WriteString(r.styles.Rating.Foreground(lipgloss.Color(RatingColor(*p.Rating))).
			Render(fmt.Sprintf("★ %.1f", *p.Rating)))
		b.WriteString(r.styles.Reviews.Render(
			r.printer.Sprintf("  %d reviews", p.Reviews)))
		b.WriteString("\n")
	}

	if p.ASIN != "" {
		b.WriteString(r.styles.Tag.Render("ASIN  "+p.ASIN) + "\n")
	}
	if p.URL != "" {
		b.WriteString(r.styles.Dim.Render(runewidth.Truncate("Link  "+p.URL, width, "…")) + "\n")
	}
	if p.Image != "" {
		b.WriteString(r.styles.Dim.Render(runewidth.Truncate("Image "+p.Image, width, "…")) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// padRow pads a styled row out to the card width so borders stay aligned.
func padRow(s string, width int) string {
	pad := width - runewidth.StringWidth(stripANSI(s))
	if pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
