package ui

import (
	"time"

	"shopgrid/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg is sent on a timer for animations
type tickMsg time.Time

// clearStatusMsg removes the transient status line
type clearStatusMsg struct {
	id uint64
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// openLinkMsg contains the result of opening a product link
type openLinkMsg struct {
	url string
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
