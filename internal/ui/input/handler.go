package input

import (
	"shopgrid/internal/ui/input/modes"
	"shopgrid/internal/ui/input/types"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Handler routes key events to the active mode and owns the shared text
// input the prompt modes type into.
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model
}

func New() *Handler {
	ti := textinput.New()

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeSearch] = modes.NewSearchMode(h.textInput)
	h.modes[types.ModeGotoPage] = modes.NewGotoPageMode(h.textInput)

	return h
}

// HandleKey hands the key to the active mode and applies any mode switch it
// requested. Mode-switch actions are consumed here; everything else is
// returned for the model to execute. Keys a prompt mode does not claim feed
// the text input so typing keeps working.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	mode := h.modes[h.currentMode]
	if mode == nil {
		return nil, nil
	}

	actions, consumed := mode.HandleKey(msg, ctx)
	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var out []types.Action
	var cmd tea.Cmd
	for _, action := range actions {
		change, ok := action.(types.ChangeModeAction)
		if !ok {
			out = append(out, action)
			continue
		}
		switchActions, switchCmd := h.switchMode(change.Mode, ctx)
		out = append(out, switchActions...)
		if switchCmd != nil {
			cmd = switchCmd
		}
	}

	if h.isTextMode(h.currentMode) && (!consumed || len(actions) == 0) {
		*h.textInput, cmd = h.textInput.Update(msg)
	}

	return out, cmd
}

// switchMode runs the exit and enter hooks around a mode change and moves
// text input focus with it.
func (h *Handler) switchMode(to types.Mode, ctx types.Context) ([]types.Action, tea.Cmd) {
	var out []types.Action

	if mode := h.modes[h.currentMode]; mode != nil {
		out = append(out, mode.Exit(ctx)...)
	}

	from := h.currentMode
	h.currentMode = to

	if mode := h.modes[to]; mode != nil {
		out = append(out, mode.Enter(ctx)...)
	}

	var cmd tea.Cmd
	if h.isTextMode(to) {
		h.textInput.Reset()
		h.textInput.Focus()
		cmd = textinput.Blink
	} else if h.isTextMode(from) {
		h.textInput.Blur()
	}

	return out, cmd
}

// CurrentMode returns the active input mode.
func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// TextInput exposes the shared text input while a prompt mode is active,
// nil otherwise.
func (h *Handler) TextInput() *textinput.Model {
	if h.isTextMode(h.currentMode) {
		return h.textInput
	}
	return nil
}

// Update forwards non-keyboard messages (cursor blink) to the text input.
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	switch mode {
	case types.ModeSearch, types.ModeGotoPage:
		return true
	default:
		return false
	}
}
