package modes

import (
	"shopgrid/internal/ui/input/types"

	tea "github.com/charmbracelet/bubbletea"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		// Esc closes whatever popup is open; the model ignores it otherwise
		return []types.Action{types.ClosePopupAction{}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyLeft:
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case tea.KeyRight:
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyTab:
		return []types.Action{types.CycleFocusAction{}}, true

	case tea.KeyEnter:
		return []types.Action{types.ActivateAction{}}, true
	}

	// Handle string keys
	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "h":
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case "l":
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case " ":
		return []types.Action{types.ActivateAction{}}, true

	case "/", "s":
		// Enter search mode
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "g":
		// Jump to a page by number
		if ctx.HasResult() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeGotoPage}}, true
		}
		return nil, true // Consume the key even if no action

	case "n":
		if ctx.HasResult() {
			return []types.Action{types.NextPageAction{}}, true
		}
		return nil, true

	case "p":
		if ctx.HasResult() {
			return []types.Action{types.PrevPageAction{}}, true
		}
		return nil, true

	case "r":
		// Re-run the last search
		return []types.Action{types.RetryAction{}}, true

	case "o":
		if ctx.HasResult() {
			return []types.Action{types.OpenLinkAction{}}, true
		}
		return nil, true

	case "?":
		// Toggle help
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		// Quit
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
