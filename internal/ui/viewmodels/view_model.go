package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"shopgrid/internal/config"
	"shopgrid/internal/pagination"
	"shopgrid/internal/ui/state"
	"shopgrid/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	config           *config.Config
	width            int
	height           int
	spinnerFrame     int
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:            appState,
		config:           cfg,
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetSpinnerFrame advances the loading spinner
func (vm *ViewModel) SetSpinnerFrame(frame int) {
	vm.spinnerFrame = frame
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode InputMode) {
	vm.inputTransformer.SetMode(mode)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	s := vm.state

	vs := views.ViewState{
		Width:  vm.width,
		Height: vm.height,

		Keyword:     s.Keyword,
		CurrentPage: s.CurrentPage,
		TotalPages:  s.TotalPages(),
		Products:    s.Products(),
		HasResult:   s.HasResult(),

		Searching:    s.Searching,
		SpinnerFrame: vm.spinnerFrame,

		PaginationFocus:   s.PaginationFocus,
		PaginationFocused: s.Zone == state.ZonePagination,

		GridSelection: s.GridSelection,
		GridOffset:    s.GridOffset,

		StatusMessage: s.StatusMessage,
		StatusIsError: s.StatusIsError,

		ShowDetail: s.ShowDetail,

		TextInput: vm.inputTransformer.GetInputText(),
		InputMode: vm.inputTransformer.GetInputModeString(),
		Prompt:    vm.inputTransformer.GetPrompt(),
	}

	if s.Result != nil {
		vs.Count = s.Result.ItemCount()
	}
	if vs.HasResult {
		vs.PageItems = pagination.Window(s.CurrentPage, s.TotalPages(), vm.config.PageNeighbors)
	}

	return vs
}
