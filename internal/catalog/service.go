package catalog

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"shopgrid/internal/domain"
	"shopgrid/internal/eventbus"
)

// Service runs searches against the API and publishes the outcome on the
// event bus. Issuing a new search cancels any still-running one, so a
// stale response can never land after a newer one (supersede rather than
// queue). Requests carry caller-assigned sequence numbers; a request that
// arrives with a sequence at or below the newest seen is dropped as
// superseded without touching the wire.
type Service interface {
	StartSearch(ctx context.Context, seq uint64, q domain.SearchQuery)
	Stop()
}

// service is the concrete implementation
type service struct {
	bus      eventbus.EventBus
	searcher Searcher

	mu        sync.Mutex
	cancel    context.CancelFunc
	lastSeq   uint64
	lastQuery domain.SearchQuery
	wg        sync.WaitGroup
}

// NewService creates a search service wired to the bus
func NewService(bus eventbus.EventBus, searcher Searcher) Service {
	s := &service{
		bus:      bus,
		searcher: searcher,
	}

	// Subscribe to search requests
	bus.Subscribe(eventbus.EventSearchRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchRequestedEvent); ok {
			s.StartSearch(context.Background(), event.Seq, event.Query)
		}
	})

	return s
}

// StartSearch begins a fetch for the query. A request whose seq is not
// newer than the latest accepted one is announced as superseded and never
// issued. A superseded in-flight request publishes no completion or
// failure of its own.
func (s *service) StartSearch(ctx context.Context, seq uint64, q domain.SearchQuery) {
	s.mu.Lock()
	if seq <= s.lastSeq {
		s.mu.Unlock()
		log.Debug().Uint64("seq", seq).Uint64("latest", s.lastSeq).Msg("stale search request dropped")
		s.bus.Publish(eventbus.SearchSupersededEvent{Seq: seq, Query: q})
		return
	}

	prevCancel := s.cancel
	prevSeq := s.lastSeq
	prevQuery := s.lastQuery

	searchCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.lastSeq = seq
	s.lastQuery = q
	s.mu.Unlock()

	if prevCancel != nil {
		prevCancel()
		s.bus.Publish(eventbus.SearchSupersededEvent{Seq: prevSeq, Query: prevQuery})
	}

	s.bus.Publish(eventbus.SearchStartedEvent{Seq: seq, Query: q})

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			s.mu.Lock()
			if s.lastSeq == seq {
				s.cancel = nil
			}
			s.mu.Unlock()
		}()

		result, err := s.searcher.Search(searchCtx, q)

		// A canceled request was superseded; its outcome is not news
		if searchCtx.Err() != nil || errors.Is(err, context.Canceled) {
			log.Debug().Uint64("seq", seq).Str("keyword", q.Keyword).Msg("superseded search discarded")
			return
		}

		if err != nil {
			log.Warn().Err(err).Uint64("seq", seq).Str("keyword", q.Keyword).Int("page", q.Page).Msg("search failed")
			s.bus.Publish(eventbus.SearchFailedEvent{Seq: seq, Query: q, Err: err})
			return
		}

		s.bus.Publish(eventbus.SearchCompletedEvent{Seq: seq, Query: q, Result: result})
	}()
}

// Stop cancels any in-flight search and waits for it to wind down
func (s *service) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	s.wg.Wait()
}
