package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"shopgrid/internal/config"
	"shopgrid/internal/domain"
	"shopgrid/internal/eventbus"
	"shopgrid/internal/pagination"
	"shopgrid/internal/ui/handlers"
	"shopgrid/internal/ui/input"
	inputtypes "shopgrid/internal/ui/input/types"
	"shopgrid/internal/ui/state"
	"shopgrid/internal/ui/viewmodels"
	"shopgrid/internal/ui/views"
)

// statusClearDelay is how long transient status messages stay on screen.
// Failure messages never expire; they clear on the next applied result.
const statusClearDelay = 3 * time.Second

// Model is the Bubble Tea model for the whole application
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState

	width        int
	height       int
	spinnerFrame int
	inPagerMode  bool

	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	eventHandler *handlers.EventHandler
	helpRender   *HelpRenderer
	browser      *Browser

	program *tea.Program
}

// NewModel creates the UI model wired to the bus and config
func NewModel(bus eventbus.EventBus, cfg *config.Config) *Model {
	appState := state.NewAppState()

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		renderer:     views.NewRenderer(cfg.UISettings.ShowImages, cfg.UISettings.CardWidth),
		inputHandler: input.New(),
		helpRender:   NewHelpRenderer(),
		browser:      NewBrowser(),
	}

	m.eventHandler = handlers.NewEventHandler(appState, m.onResultApplied)

	// The view model renders from its own copy of the text input; the
	// handler owns the live one and pushes updates across.
	m.viewModel = viewmodels.NewViewModel(appState, cfg, textinput.New())

	return m
}

// SetProgram stores the program reference for terminal handoff to the pager
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Search issues an initial query before the first key is pressed.
func (m *Model) Search(keyword string) {
	m.startSearch(keyword, 1)
}

// Init starts the spinner tick loop
func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureGridVisible()
		return m, nil

	case tea.KeyMsg:
		// The detail popup swallows keys until it is dismissed
		if m.state.ShowDetail {
			return m, m.handleDetailKey(msg)
		}

		ctx := &input.ModelContext{State: m.state}
		actions, inputCmd := m.inputHandler.HandleKey(msg, ctx)

		var cmds []tea.Cmd
		if inputCmd != nil {
			cmds = append(cmds, inputCmd)
		}
		for _, action := range actions {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}

		if ti := m.inputHandler.TextInput(); ti != nil {
			m.viewModel.UpdateTextInput(*ti)
		}
		return m, tea.Batch(cmds...)

	default:
		// Text input consumes non-key messages like cursor blinks
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			if ti := m.inputHandler.TextInput(); ti != nil {
				m.viewModel.UpdateTextInput(*ti)
			}
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

// handleDetailKey processes keys while the product detail popup is open
func (m *Model) handleDetailKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "enter", "q", " ":
		m.state.ShowDetail = false
	case "o":
		return m.openProductLink()
	case "ctrl+c":
		return tea.Quit
	}
	return nil
}

// processAction executes a single action from the input layer
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	log.Debug().Str("action", action.Type()).Msg("processing action")

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.handleNavigate(a.Direction)

	case inputtypes.CycleFocusAction:
		m.cycleFocus()

	case inputtypes.PrevPageAction:
		// Out of bounds is silently ignored, not an error
		if m.state.CurrentPage > 1 {
			return m.startSearch(m.state.Keyword, m.state.CurrentPage-1)
		}

	case inputtypes.NextPageAction:
		if m.state.CurrentPage < m.state.TotalPages() {
			return m.startSearch(m.state.Keyword, m.state.CurrentPage+1)
		}

	case inputtypes.GoToPageAction:
		return m.goToPage(a.Page)

	case inputtypes.ActivateAction:
		return m.activate()

	case inputtypes.SubmitSearchAction:
		return m.submitSearch(a.Keyword)

	case inputtypes.RetryAction:
		return m.retry()

	case inputtypes.OpenLinkAction:
		return m.openProductLink()

	case inputtypes.ToggleHelpAction:
		return m.fetchHelpPager()

	case inputtypes.ClosePopupAction:
		if m.state.ShowDetail {
			m.state.ShowDetail = false
		} else if m.state.StatusMessage != "" {
			m.state.ClearStatus()
		}

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// startSearch issues a fetch for keyword and page through the event bus
func (m *Model) startSearch(keyword string, page int) tea.Cmd {
	query := domain.SearchQuery{
		Keyword: keyword,
		Page:    page,
		Pages:   m.config.PagesPerRequest,
	}
	seq := m.state.BeginSearch(query)
	m.state.ClearStatus()

	log.Debug().Uint64("seq", seq).Str("keyword", keyword).Int("page", page).Msg("requesting search")
	if m.bus != nil {
		m.bus.Publish(eventbus.SearchRequestedEvent{Seq: seq, Query: query})
	}
	return nil
}

// submitSearch validates the typed keyword and starts a fresh search on page 1
func (m *Model) submitSearch(raw string) tea.Cmd {
	keyword := strings.TrimSpace(raw)
	if keyword == "" {
		// No request leaves the model; the hint explains why
		return m.flashStatus("Type a keyword to search.", false)
	}
	return m.startSearch(keyword, 1)
}

// goToPage jumps to an absolute page number when it is valid and different
func (m *Model) goToPage(page int) tea.Cmd {
	total := m.state.TotalPages()
	if page < 1 || page > total {
		return m.flashStatus(fmt.Sprintf("Page must be between 1 and %d.", total), false)
	}
	if page == m.state.CurrentPage {
		return nil
	}
	return m.startSearch(m.state.Keyword, page)
}

// retry re-issues the most recent query, applied or not
func (m *Model) retry() tea.Cmd {
	q := m.state.PendingQuery
	if q.Keyword == "" {
		return m.flashStatus("Nothing to retry yet. Press / to search.", false)
	}
	return m.startSearch(q.Keyword, q.Page)
}

// activate runs Enter against whatever currently has focus
func (m *Model) activate() tea.Cmd {
	if m.state.Zone == state.ZonePagination {
		items := m.windowItems()
		idx := m.state.PaginationFocus
		if idx < 0 || idx >= len(items) || !items[idx].Focusable() {
			return nil
		}
		it := items[idx]
		switch it.Nav {
		case pagination.NavPrev:
			if m.state.CurrentPage > 1 {
				return m.startSearch(m.state.Keyword, it.Target)
			}
		case pagination.NavNext:
			if m.state.CurrentPage < m.state.TotalPages() {
				return m.startSearch(m.state.Keyword, it.Target)
			}
		default:
			if it.Target != m.state.CurrentPage {
				return m.startSearch(m.state.Keyword, it.Target)
			}
		}
		return nil
	}

	if _, ok := m.state.SelectedProduct(); ok {
		m.state.ShowDetail = true
	}
	return nil
}

// openProductLink hands the selected product's URL to the system browser
func (m *Model) openProductLink() tea.Cmd {
	p, ok := m.state.SelectedProduct()
	if !ok || p.URL == "" {
		return m.flashStatus("No link for this product.", false)
	}
	url := p.URL
	browser := m.browser
	return func() tea.Msg {
		err := browser.Open(url)
		return openLinkMsg{url: url, err: err}
	}
}

// fetchHelpPager shows help content in the ov pager
func (m *Model) fetchHelpPager() tea.Cmd {
	if m.program == nil {
		return nil
	}
	content := m.helpRender.RenderHelpContentPlain()
	helpOps := NewHelpOps(m.program)
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := helpOps.ShowHelpInPager(content)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

// flashStatus shows a transient status line that clears itself after a delay
func (m *Model) flashStatus(msg string, isError bool) tea.Cmd {
	id := m.state.SetStatus(msg, isError)
	return tea.Tick(statusClearDelay, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

// cycleFocus moves keyboard focus between the grid and the pagination bar
func (m *Model) cycleFocus() {
	if !m.state.HasResult() {
		return
	}
	if m.state.Zone == state.ZoneGrid {
		m.enterPaginationZone()
	} else {
		m.state.Zone = state.ZoneGrid
	}
}

// enterPaginationZone focuses the pagination bar, seeding focus if needed
func (m *Model) enterPaginationZone() {
	m.state.Zone = state.ZonePagination
	items := m.windowItems()
	idx := m.state.PaginationFocus
	if idx < 0 || idx >= len(items) || !items[idx].Focusable() {
		m.state.PaginationFocus = pagination.FirstFocusable(items)
	}
}

// windowItems computes the pagination window for the applied result
func (m *Model) windowItems() []pagination.Item {
	return pagination.Window(m.state.CurrentPage, m.state.TotalPages(), m.config.PageNeighbors)
}

// handleNavigate moves the cursor within the focused zone
func (m *Model) handleNavigate(direction string) {
	if !m.state.HasResult() {
		return
	}
	if m.state.Zone == state.ZonePagination {
		m.navigatePagination(direction)
		return
	}
	m.navigateGrid(direction)
}

func (m *Model) navigatePagination(dir string) {
	items := m.windowItems()
	switch dir {
	case "left":
		m.state.PaginationFocus = pagination.StepFocusable(items, m.state.PaginationFocus, -1)
	case "right":
		m.state.PaginationFocus = pagination.StepFocusable(items, m.state.PaginationFocus, 1)
	case "home":
		m.state.PaginationFocus = pagination.FirstFocusable(items)
	case "end":
		m.state.PaginationFocus = pagination.LastFocusable(items)
	case "up":
		m.state.Zone = state.ZoneGrid
	}
}

func (m *Model) navigateGrid(dir string) {
	count := m.state.ProductCount()
	if count == 0 {
		// An empty grid still lets the user reach the pagination bar
		if dir == "down" {
			m.enterPaginationZone()
		}
		return
	}

	cols := m.renderer.GridColumns(m.width)
	visible := m.renderer.GridRows(m.height)
	sel := m.state.GridSelection
	lastRow := (count - 1) / cols

	switch dir {
	case "up":
		if sel-cols >= 0 {
			sel -= cols
		}
	case "down":
		if sel/cols == lastRow {
			m.enterPaginationZone()
			return
		}
		sel += cols
		if sel > count-1 {
			sel = count - 1
		}
	case "left":
		if sel > 0 {
			sel--
		}
	case "right":
		if sel < count-1 {
			sel++
		}
	case "home":
		sel = 0
	case "end":
		sel = count - 1
	case "pageup":
		sel -= cols * visible
		if sel < 0 {
			sel = 0
		}
	case "pagedown":
		sel += cols * visible
		if sel > count-1 {
			sel = count - 1
		}
	}

	m.state.GridSelection = sel
	m.ensureGridVisible()
}

// ensureGridVisible scrolls the grid so the selection stays on screen
func (m *Model) ensureGridVisible() {
	count := m.state.ProductCount()
	if count == 0 || m.width == 0 {
		m.state.GridOffset = 0
		return
	}

	cols := m.renderer.GridColumns(m.width)
	visible := m.renderer.GridRows(m.height)
	row := m.state.GridSelection / cols
	totalRows := (count + cols - 1) / cols

	if row < m.state.GridOffset {
		m.state.GridOffset = row
	} else if row >= m.state.GridOffset+visible {
		m.state.GridOffset = row - visible + 1
	}
	if m.state.GridOffset > totalRows-1 {
		m.state.GridOffset = totalRows - 1
	}
	if m.state.GridOffset < 0 {
		m.state.GridOffset = 0
	}
}

// onResultApplied runs after the event handler installs a fresh result
func (m *Model) onResultApplied() {
	if m.state.Zone == state.ZonePagination {
		m.state.PaginationFocus = pagination.FirstFocusable(m.windowItems())
	}
	m.ensureGridVisible()
}

// handleNonKeyboardMsg handles all non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case tickMsg:
		// The pager owns the terminal; stop repainting under it
		if m.inPagerMode {
			return m, nil
		}
		m.spinnerFrame++
		return m, tickCmd()

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, tickCmd()

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
		}
		return m, nil

	case openLinkMsg:
		if msg.err != nil {
			log.Printf("Failed to open %s: %v", msg.url, msg.err)
			return m, m.flashStatus("Could not open the product link.", true)
		}
		return m, nil

	case clearStatusMsg:
		// Only the newest status owns its expiry
		if msg.id == m.state.StatusSeq {
			m.state.ClearStatus()
		}
		return m, nil

	default:
		return m, nil
	}
}

// View renders the current state
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetSpinnerFrame(m.spinnerFrame)

	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeSearch:
		m.viewModel.SetInputMode(viewmodels.InputModeSearch)
	case inputtypes.ModeGotoPage:
		m.viewModel.SetInputMode(viewmodels.InputModeGotoPage)
	default:
		m.viewModel.SetInputMode(viewmodels.InputModeNormal)
	}

	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.UpdateTextInput(*ti)
	}

	return m.renderer.Render(m.viewModel.BuildViewState())
}
