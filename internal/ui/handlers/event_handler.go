package handlers

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"shopgrid/internal/domain"
	"shopgrid/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state         *state.AppState
	resultApplied func()
}

// NewEventHandler creates a new event handler. resultApplied runs after a
// search result lands in state so the model can re-seed focus and scroll.
func NewEventHandler(appState *state.AppState, resultApplied func()) *EventHandler {
	return &EventHandler{
		state:         appState,
		resultApplied: resultApplied,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event domain.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case domain.SearchStartedEvent:
		log.Debug().
			Uint64("seq", e.Seq).
			Str("keyword", e.Query.Keyword).
			Int("page", e.Query.Page).
			Msg("search started")

	case domain.SearchCompletedEvent:
		if !h.state.ApplyResult(e.Seq, e.Query, e.Result) {
			// A newer result already landed; this one is history
			log.Debug().Uint64("seq", e.Seq).Msg("dropping stale search result")
			return nil
		}
		h.state.ClearStatus()
		if h.resultApplied != nil {
			h.resultApplied()
		}

	case domain.SearchFailedEvent:
		if !h.state.FinishSearch(e.Seq) {
			// Failure of a superseded request never disturbs the view
			log.Debug().Uint64("seq", e.Seq).Msg("dropping stale search failure")
			return nil
		}
		log.Error().
			Err(e.Err).
			Uint64("seq", e.Seq).
			Str("keyword", e.Query.Keyword).
			Msg("search failed")
		h.state.SetStatus("Search failed. Press r to retry.", true)

	case domain.SearchSupersededEvent:
		// The replacement request carries the spinner from here on
		log.Debug().Uint64("seq", e.Seq).Msg("search superseded")

	case domain.ConfigLoadedEvent:
		log.Debug().Str("api_base", e.APIBase).Msg("config loaded")
	}

	return nil
}
