package state

import (
	"shopgrid/internal/domain"
)

// FocusZone identifies which region of the screen owns navigation keys.
type FocusZone int

const (
	ZoneGrid FocusZone = iota
	ZonePagination
)

// AppState contains all the application state
type AppState struct {
	// Applied search data
	Keyword     string // keyword of the last applied result
	CurrentPage int    // page of the last applied result
	Result      *domain.SearchResult

	// Request tracking
	NextSeq        uint64 // last sequence number handed out
	InFlightSeq    uint64 // request currently awaited, 0 when idle
	LastAppliedSeq uint64 // newest result applied to the view
	PendingQuery   domain.SearchQuery
	Searching      bool

	// Focus and selection
	Zone            FocusZone
	GridSelection   int // selected product card
	PaginationFocus int // focused pagination item index
	GridOffset      int // first visible card row

	// UI state
	ShowDetail    bool
	StatusMessage string
	StatusIsError bool
	StatusSeq     uint64 // bumps on every status change so stale clear timers miss
}

// SetStatus replaces the status line message and returns its sequence number.
func (s *AppState) SetStatus(msg string, isError bool) uint64 {
	s.StatusSeq++
	s.StatusMessage = msg
	s.StatusIsError = isError
	return s.StatusSeq
}

// ClearStatus removes the status line message.
func (s *AppState) ClearStatus() {
	s.StatusSeq++
	s.StatusMessage = ""
	s.StatusIsError = false
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		CurrentPage:     1,
		PaginationFocus: -1,
	}
}

// BeginSearch registers a new outbound request and returns its sequence number.
func (s *AppState) BeginSearch(query domain.SearchQuery) uint64 {
	s.NextSeq++
	s.InFlightSeq = s.NextSeq
	s.PendingQuery = query
	s.Searching = true
	return s.NextSeq
}

// ApplyResult installs a completed result. Results at or below the last
// applied sequence are ignored so a late response never overwrites a newer
// view.
func (s *AppState) ApplyResult(seq uint64, query domain.SearchQuery, result domain.SearchResult) bool {
	if seq <= s.LastAppliedSeq {
		return false
	}
	s.LastAppliedSeq = seq
	s.Keyword = query.Keyword
	s.CurrentPage = query.Page
	if s.CurrentPage < 1 {
		s.CurrentPage = 1
	}
	if pages := result.PageCount(); s.CurrentPage > pages {
		s.CurrentPage = pages
	}
	s.Result = &result
	s.GridSelection = 0
	s.GridOffset = 0
	s.PaginationFocus = -1
	s.ShowDetail = false
	if seq >= s.InFlightSeq {
		s.InFlightSeq = 0
		s.Searching = false
	}
	return true
}

// FinishSearch clears the in-flight marker for seq without touching the
// applied results. Returns false when seq is not the awaited request.
func (s *AppState) FinishSearch(seq uint64) bool {
	if s.InFlightSeq == 0 || seq < s.InFlightSeq {
		return false
	}
	s.InFlightSeq = 0
	s.Searching = false
	return true
}

// Products returns the applied product list, or nil before the first result.
func (s *AppState) Products() []domain.Product {
	if s.Result == nil {
		return nil
	}
	return s.Result.Products
}

// ProductCount returns how many products the applied result holds.
func (s *AppState) ProductCount() int {
	if s.Result == nil {
		return 0
	}
	return len(s.Result.Products)
}

// TotalPages reports how many pages the applied result spans.
func (s *AppState) TotalPages() int {
	if s.Result == nil {
		return 1
	}
	return s.Result.PageCount()
}

// HasResult reports whether any search result has been applied yet.
func (s *AppState) HasResult() bool {
	return s.Result != nil
}

// SelectedProduct returns the product under the grid cursor.
func (s *AppState) SelectedProduct() (domain.Product, bool) {
	products := s.Products()
	if s.GridSelection < 0 || s.GridSelection >= len(products) {
		return domain.Product{}, false
	}
	return products[s.GridSelection], true
}
