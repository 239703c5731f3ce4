package modes

import (
	"strconv"
	"strings"

	"shopgrid/internal/ui/input/types"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type GotoPageMode struct {
	TextInputMode
}

func NewGotoPageMode(ti *textinput.Model) *GotoPageMode {
	return &GotoPageMode{
		TextInputMode: NewTextInputMode(types.ModeGotoPage, "goto", "Go to page: ", ti),
	}
}

func (m *GotoPageMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.String() == "enter" {
		text := strings.TrimSpace(m.Value())
		if text == "" {
			return []types.Action{
				types.CancelTextAction{},
				types.ChangeModeAction{Mode: types.ModeNormal},
			}, true
		}
		// Atoi yields 0 on garbage, which the model rejects as out of range.
		page, _ := strconv.Atoi(text)
		return []types.Action{
			types.GoToPageAction{Page: page},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
