//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
)

// mockProduct mirrors the wire shape of one product record
type mockProduct struct {
	Title   string   `json:"title"`
	Image   string   `json:"image"`
	URL     string   `json:"url"`
	ASIN    string   `json:"asin"`
	Rating  *float64 `json:"rating"`
	Reviews int      `json:"reviews"`
}

// mockResponse mirrors the wire shape of a search response
type mockResponse struct {
	Count      int           `json:"count"`
	TotalPages int           `json:"totalPages"`
	Products   []mockProduct `json:"products"`
}

// mockAPI is a stand-in for the search API with a switchable failure mode
type mockAPI struct {
	srv     *httptest.Server
	failing atomic.Bool
}

// newMockAPI serves deterministic products for any keyword across totalPages
// pages of 8 items each
func newMockAPI(totalPages int) *mockAPI {
	m := &mockAPI{}
	m.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/scrape" {
			http.NotFound(w, r)
			return
		}
		if m.failing.Load() {
			http.Error(w, "upstream unavailable", http.StatusInternalServerError)
			return
		}

		keyword := r.URL.Query().Get("keyword")
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page < 1 {
			page = 1
		}

		products := make([]mockProduct, 0, 8)
		for i := 0; i < 8; i++ {
			rating := 3.5 + float64(i%3)*0.5
			products = append(products, mockProduct{
				Title:   fmt.Sprintf("%s item %d-%d", keyword, page, i+1),
				URL:     fmt.Sprintf("%s/dp/MOCK%d%02d", m.srv.URL, page, i+1),
				ASIN:    fmt.Sprintf("B0%dMOCK%02d", page, i+1),
				Rating:  &rating,
				Reviews: 128 * (i + 1),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(mockResponse{
			Count:      totalPages * 8,
			TotalPages: totalPages,
			Products:   products,
		})
	}))
	return m
}

// URL returns the server's base URL
func (m *mockAPI) URL() string { return m.srv.URL }

// SetFailing toggles whether the API answers with a 500
func (m *mockAPI) SetFailing(v bool) { m.failing.Store(v) }

// Close shuts the server down
func (m *mockAPI) Close() { m.srv.Close() }
