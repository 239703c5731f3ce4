package input

import (
	"shopgrid/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
}

// CurrentPage returns the page of the applied result
func (c *ModelContext) CurrentPage() int {
	return c.State.CurrentPage
}

// TotalPages returns the page count of the applied result
func (c *ModelContext) TotalPages() int {
	return c.State.TotalPages()
}

// ProductCount returns how many products are on the applied page
func (c *ModelContext) ProductCount() int {
	return c.State.ProductCount()
}

// HasResult reports whether a search result has been applied yet
func (c *ModelContext) HasResult() bool {
	return c.State.HasResult()
}
