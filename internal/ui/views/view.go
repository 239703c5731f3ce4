package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"shopgrid/internal/domain"
	"shopgrid/internal/pagination"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Keyword     string
	CurrentPage int
	TotalPages  int
	Count       int
	Products    []domain.Product
	HasResult   bool

	Searching    bool
	SpinnerFrame int

	PageItems         []pagination.Item
	PaginationFocus   int
	PaginationFocused bool

	GridSelection int
	GridOffset    int

	StatusMessage string
	StatusIsError bool

	ShowDetail bool

	TextInput string
	InputMode string
	Prompt    string
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Renderer handles all view rendering. The three result regions (header,
// pagination, grid) are injected at construction and the render itself is
// a pure function of ViewState, so rendering twice with the same state
// yields the same screen.
type Renderer struct {
	styles       *Styles
	headerRender *HeaderRenderer
	cardRender   *CardRenderer
	pageRender   *PaginationRenderer
	popupRender  *PopupRenderer
	cardWidth    int
	showImages   bool
}

// NewRenderer creates a new renderer
func NewRenderer(showImages bool, cardWidth int) *Renderer {
	styles := NewStyles()
	if cardWidth < 20 {
		cardWidth = 20
	}
	return &Renderer{
		styles:       styles,
		headerRender: NewHeaderRenderer(styles),
		cardRender:   NewCardRenderer(styles, showImages),
		pageRender:   NewPaginationRenderer(styles),
		popupRender:  NewPopupRenderer(styles),
		cardWidth:    cardWidth,
		showImages:   showImages,
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}

	// Title with loading indicator
	logo := r.styles.Title.Render("shopgrid")
	titleLine := logo
	if state.Searching {
		frame := spinnerFrames[state.SpinnerFrame%len(spinnerFrames)]
		indicator := r.styles.Dim.Render(fmt.Sprintf("%s Searching", frame))
		padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(indicator)
		if padding > 0 {
			titleLine = logo + strings.Repeat(" ", padding) + indicator
		} else {
			titleLine = fmt.Sprintf("%s  %s", logo, indicator)
		}
	}
	content.WriteString(titleLine)
	content.WriteString("\n")

	// Text entry line while a text mode is active
	if state.InputMode != "" {
		content.WriteString(r.styles.Prompt.Render(state.Prompt))
		content.WriteString(state.TextInput)
		content.WriteString("\n\n")
	}

	// Header summary
	if state.HasResult {
		content.WriteString(r.headerRender.RenderSummary(
			state.Count, state.Keyword, state.CurrentPage, state.TotalPages, termWidth-4))
		content.WriteString("\n\n")
	}

	// Main content
	var mainContent string
	switch {
	case !state.HasResult && state.Searching:
		mainContent = r.styles.Dim.Render("Searching...")
	case !state.HasResult:
		mainContent = r.styles.Dim.Render("Press / to search for products.")
	default:
		mainContent = r.renderGrid(state, termWidth)
	}
	content.WriteString(mainContent)
	content.WriteString("\n")

	// Pagination row
	if state.HasResult {
		content.WriteString("\n")
		content.WriteString(r.pageRender.Render(
			state.PageItems, state.PaginationFocus, state.PaginationFocused))
		content.WriteString("\n")
	}

	// Status line
	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = r.styles.StatusError.MarginTop(1)
		}
		content.WriteString(style.Render(state.StatusMessage))
		content.WriteString("\n")
	}

	// Help hint pinned to the bottom
	helpText := r.styles.Help.Render("Press ? for help")
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22 // Default terminal height minus padding
	}
	paddingNeeded := availableLines - currentLines - 1
	if paddingNeeded > 0 {
		content.WriteString(strings.Repeat("\n", paddingNeeded))
	}
	content.WriteString("\n")
	content.WriteString(helpText)

	// Apply main container style
	mainStyle := r.styles.Main.MaxHeight(state.Height)
	finalContent := mainStyle.Render(content.String())

	// Overlay the detail popup on top of main content
	if state.ShowDetail {
		if p, ok := productAt(state.Products, state.GridSelection); ok {
			detail := r.cardRender.RenderDetail(p, 56)
			return r.popupRender.RenderPopupOverlay(
				finalContent, detail, state.Height, termWidth, r.styles.DetailBox)
		}
	}

	return finalContent
}

// GridColumns reports how many cards fit on one row.
func (r *Renderer) GridColumns(width int) int {
	if width <= 0 {
		width = 80
	}
	cols := (width - 4) / (r.cardColumnWidth())
	if cols < 1 {
		cols = 1
	}
	return cols
}

// GridRows reports how many card rows fit on screen.
func (r *Renderer) GridRows(height int) int {
	if height <= 0 {
		height = 24
	}
	rows := (height - chromeLines) / r.cardRowHeight()
	if rows < 1 {
		rows = 1
	}
	return rows
}

// cardColumnWidth is the rendered card width plus one gutter column.
func (r *Renderer) cardColumnWidth() int {
	return r.cardWidth + 4 + 1
}

// cardRowHeight is the rendered card height: two title rows, rating, the
// optional image slot, the tag row, and the border.
func (r *Renderer) cardRowHeight() int {
	h := 2 + 1 + 1 + 2
	if r.showImages {
		h++
	}
	return h
}

// chromeLines counts the fixed rows around the grid: container padding,
// title, header, pagination, status, and the help hint.
const chromeLines = 10

// renderGrid lays the product cards out in fixed-width columns, windowed
// by GridOffset when there are more rows than fit.
func (r *Renderer) renderGrid(state ViewState, termWidth int) string {
	if len(state.Products) == 0 {
		return r.styles.Dim.Render("No products on this page.")
	}

	cols := r.GridColumns(termWidth)
	visibleRows := r.GridRows(state.Height)
	totalRows := (len(state.Products) + cols - 1) / cols

	startRow := state.GridOffset
	if startRow > totalRows-1 {
		startRow = totalRows - 1
	}
	if startRow < 0 {
		startRow = 0
	}
	endRow := startRow + visibleRows
	if endRow > totalRows {
		endRow = totalRows
	}

	var lines []string
	if startRow > 0 {
		lines = append(lines, r.styles.PageInfo.Render(
			fmt.Sprintf("↑ %d more above ↑", startRow*cols)))
	}

	for row := startRow; row < endRow; row++ {
		cards := make([]string, 0, cols)
		for col := 0; col < cols; col++ {
			idx := row*cols + col
			if idx >= len(state.Products) {
				break
			}
			selected := idx == state.GridSelection
			cards = append(cards, r.cardRender.RenderCard(state.Products[idx], r.cardWidth, selected))
			if col < cols-1 {
				cards = append(cards, " ")
			}
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	if endRow < totalRows {
		below := len(state.Products) - endRow*cols
		lines = append(lines, r.styles.PageInfo.Render(
			fmt.Sprintf("↓ %d more below ↓", below)))
	}

	return strings.Join(lines, "\n")
}

func productAt(products []domain.Product, idx int) (domain.Product, bool) {
	if idx < 0 || idx >= len(products) {
		return domain.Product{}, false
	}
	return products[idx], true
}
