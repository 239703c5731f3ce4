package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContentPlain generates help content with colors for pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	// Title
	help.WriteString(titleStyle.Render("ShopGrid Help"))
	help.WriteString("\n")

	// Search section
	help.WriteString(sectionStyle.Render("Search"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("/, s"), descStyle.Render("Search for products")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("Enter"), descStyle.Render("Submit the typed keyword")))
	help.WriteString(fmt.Sprintf("  %s           %s\n", keyStyle.Render("Esc"), descStyle.Render("Cancel typing")))
	help.WriteString(fmt.Sprintf("  %s             %s\n", keyStyle.Render("r"), descStyle.Render("Retry the last search")))
	help.WriteString("\n")

	// Navigation section
	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("↑/↓/←/→"), descStyle.Render("Move between cards (also j/k/h/l)")))
	help.WriteString(fmt.Sprintf("  %s           %s\n", keyStyle.Render("Tab"), descStyle.Render("Switch between grid and page bar")))
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("PgUp/PgDn"), descStyle.Render("Jump a screen of cards")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Home/End"), descStyle.Render("First/last card")))
	help.WriteString("\n")

	// Pages section
	help.WriteString(sectionStyle.Render("Pages"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s             %s\n", keyStyle.Render("n"), descStyle.Render("Next page")))
	help.WriteString(fmt.Sprintf("  %s             %s\n", keyStyle.Render("p"), descStyle.Render("Previous page")))
	help.WriteString(fmt.Sprintf("  %s             %s\n", keyStyle.Render("g"), descStyle.Render("Go to a page number")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("Enter"), descStyle.Render("Activate the focused page control")))
	help.WriteString("\n")

	// Products section
	help.WriteString(sectionStyle.Render("Products"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s   %s\n", keyStyle.Render("Enter/Space"), descStyle.Render("Show product details")))
	help.WriteString(fmt.Sprintf("  %s             %s\n", keyStyle.Render("o"), descStyle.Render("Open product page in browser")))
	help.WriteString("\n")

	// Other section
	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s             %s\n", keyStyle.Render("?"), descStyle.Render("Toggle this help")))
	help.WriteString(fmt.Sprintf("  %s             %s", keyStyle.Render("q"), descStyle.Render("Quit")))

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	// Create a reader from the help content string
	reader := strings.NewReader(helpContent)

	// Create oviewer root from the reader
	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false

	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}
