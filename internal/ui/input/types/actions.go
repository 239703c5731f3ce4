package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

type CycleFocusAction struct{}

func (a CycleFocusAction) Type() string { return "cycle_focus" }

// Paging actions carry the intent directly so the model never has to
// inspect rendered labels to work out what a key meant.
type PrevPageAction struct{}

func (a PrevPageAction) Type() string { return "prev_page" }

type NextPageAction struct{}

func (a NextPageAction) Type() string { return "next_page" }

type GoToPageAction struct {
	Page int
}

func (a GoToPageAction) Type() string { return "goto_page" }

// ActivateAction triggers the focused pagination item or opens the
// detail popup for the selected card.
type ActivateAction struct{}

func (a ActivateAction) Type() string { return "activate" }

// ChangeModeAction switches the input mode. The handler consumes it; it
// never reaches the model.
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

type SubmitSearchAction struct {
	Keyword string
}

func (a SubmitSearchAction) Type() string { return "submit_search" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Command actions
type RetryAction struct{}

func (a RetryAction) Type() string { return "retry" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

// OpenLinkAction opens the selected product's page in the browser
type OpenLinkAction struct{}

func (a OpenLinkAction) Type() string { return "open_link" }

type ClosePopupAction struct{}

func (a ClosePopupAction) Type() string { return "close_popup" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
