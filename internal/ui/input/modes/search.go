package modes

import (
	"shopgrid/internal/ui/input/types"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.String() == "enter" {
		// The model validates the keyword so the rejection message
		// lives in one place.
		return []types.Action{
			types.SubmitSearchAction{Keyword: m.Value()},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
