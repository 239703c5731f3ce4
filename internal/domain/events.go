package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchRequested  EventType = "SearchRequested"
	EventSearchStarted    EventType = "SearchStarted"
	EventSearchCompleted  EventType = "SearchCompleted"
	EventSearchFailed     EventType = "SearchFailed"
	EventSearchSuperseded EventType = "SearchSuperseded"
	EventConfigLoaded     EventType = "ConfigLoaded"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchRequestedEvent is emitted to request a fetch from the search API.
// Seq orders requests; later sequence numbers supersede earlier ones.
type SearchRequestedEvent struct {
	Seq   uint64
	Query SearchQuery
}

func (e SearchRequestedEvent) Type() EventType { return EventSearchRequested }

// SearchStartedEvent is emitted when a request actually goes on the wire
type SearchStartedEvent struct {
	Seq   uint64
	Query SearchQuery
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchCompletedEvent is emitted when a search returns successfully
type SearchCompletedEvent struct {
	Seq    uint64
	Query  SearchQuery
	Result SearchResult
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchFailedEvent is emitted when a search fails for any reason other
// than being superseded by a newer request
type SearchFailedEvent struct {
	Seq   uint64
	Query SearchQuery
	Err   error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// SearchSupersededEvent is emitted when an in-flight search is cancelled
// because a newer request replaced it
type SearchSupersededEvent struct {
	Seq   uint64
	Query SearchQuery
}

func (e SearchSupersededEvent) Type() EventType { return EventSearchSuperseded }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	APIBase string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }
