package views

import (
	"strings"

	"shopgrid/internal/pagination"
)

// PaginationRenderer renders the compact page control row
type PaginationRenderer struct {
	styles *Styles
}

// NewPaginationRenderer creates a new pagination renderer
func NewPaginationRenderer(styles *Styles) *PaginationRenderer {
	return &PaginationRenderer{
		styles: styles,
	}
}

// Render lays the window items out on one line. focusIdx marks the item
// under the keyboard cursor and only counts when the pagination zone is
// focused; disabled items never show focus since they are skipped by the
// focus walk.
func (pr *PaginationRenderer) Render(items []pagination.Item, focusIdx int, zoneFocused bool) string {
	parts := make([]string, 0, len(items))
	for i, it := range items {
		if it.Kind == pagination.KindEllipsis {
			parts = append(parts, pr.styles.Ellipsis.Render("…"))
			continue
		}

		style := pr.styles.PageItem
		switch {
		case it.Disabled:
			style = pr.styles.PageDisabled
		case it.Current:
			style = pr.styles.PageCurrent
		}

		label := " " + it.Label + " "
		if zoneFocused && i == focusIdx && it.Focusable() {
			parts = append(parts, style.Background(pr.styles.PageFocusBg.GetBackground()).Render(label))
			continue
		}
		parts = append(parts, style.Render(label))
	}
	return strings.Join(parts, " ")
}
