// Package catalog talks to the product search API: a thin HTTP client plus
// a service that runs fetches and publishes their outcome on the event bus.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"shopgrid/internal/domain"
)

// StatusError reports a non-2xx response from the search API. The code is
// carried for logging; user-facing messages stay generic.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("search API returned status %d", e.Code)
}

// Searcher fetches one page of results for a query
type Searcher interface {
	Search(ctx context.Context, q domain.SearchQuery) (domain.SearchResult, error)
}

// Client is the HTTP client for the search API
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client for the API at baseURL. The timeout bounds
// every request; a timed-out request surfaces like any other network
// failure.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Search fetches one page of products for the query. Page and Pages are
// omitted from the query string when below 1. Fields missing from the
// response body decode to their zero values; only an unreadable body is an
// error.
func (c *Client) Search(ctx context.Context, q domain.SearchQuery) (domain.SearchResult, error) {
	params := url.Values{}
	params.Set("keyword", q.Keyword)
	if q.Page >= 1 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Pages >= 1 {
		params.Set("pages", strconv.Itoa(q.Pages))
	}

	reqURL := fmt.Sprintf("%s/scrape?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("url", reqURL).Msg("search request failed")
		return domain.SearchResult{}, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Error().Int("status", resp.StatusCode).Str("url", reqURL).Msg("search API error status")
		return domain.SearchResult{}, &StatusError{Code: resp.StatusCode}
	}

	var result domain.SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Error().Err(err).Str("url", reqURL).Msg("search response decode failed")
		return domain.SearchResult{}, fmt.Errorf("decode response: %w", err)
	}

	log.Debug().
		Str("keyword", q.Keyword).
		Int("page", q.Page).
		Int("count", result.Count).
		Int("products", len(result.Products)).
		Msg("search completed")

	return result, nil
}
