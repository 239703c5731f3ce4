package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Summary       lipgloss.Style
	PageInfo      lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Prompt        lipgloss.Style
	Card          lipgloss.Style
	CardSelected  lipgloss.Style
	CardTitle     lipgloss.Style
	Rating        lipgloss.Style
	Reviews       lipgloss.Style
	ImageNote     lipgloss.Style
	Tag           lipgloss.Style
	PageItem      lipgloss.Style
	PageCurrent   lipgloss.Style
	PageDisabled  lipgloss.Style
	PageFocusBg   lipgloss.Style
	Ellipsis      lipgloss.Style
	DetailBox     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Summary:  lipgloss.NewStyle().Bold(true),
		PageInfo: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:      lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Help:          lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2).
			MaxHeight(100), // Will be dynamically adjusted
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		CardTitle: lipgloss.NewStyle().Bold(true),
		Rating:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Reviews:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		ImageNote: lipgloss.NewStyle().Faint(true),
		Tag:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		PageItem:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		PageCurrent: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			Underline(true),
		PageDisabled: lipgloss.NewStyle().Faint(true),
		PageFocusBg:  lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Ellipsis:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		DetailBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			MarginBottom(1).
			Width(60).
			BorderForeground(lipgloss.Color("241")),
	}
}

// RatingColor returns the color for a star rating value
func RatingColor(rating float64) string {
	switch {
	case rating >= 4:
		return "78" // green
	case rating >= 2:
		return "214" // yellow
	default:
		return "203" // red
	}
}
