package domain

// Product represents a single product record returned by the search API.
// Every field is optional on the wire; consumers treat the zero value as
// absence, except Rating, where nil (absent) and 0 (a real zero-star
// rating) mean different things.
type Product struct {
	Title   string   `json:"title"`
	Image   string   `json:"image"`
	URL     string   `json:"url"`
	ASIN    string   `json:"asin"`
	Rating  *float64 `json:"rating"`
	Reviews int      `json:"reviews"`
}

// HasRating reports whether the API supplied a rating at all.
func (p Product) HasRating() bool {
	return p.Rating != nil
}

// SearchResult is one page of search results. It lives for a single render
// cycle; nothing retains it between fetches.
type SearchResult struct {
	Count      int       `json:"count"`
	TotalPages int       `json:"totalPages"`
	Products   []Product `json:"products"`
}

// PageCount returns TotalPages coerced to a minimum of 1 so a response that
// omits the field still yields a renderable pagination bar.
func (r SearchResult) PageCount() int {
	if r.TotalPages < 1 {
		return 1
	}
	return r.TotalPages
}

// ItemCount returns Count coerced to a non-negative value.
func (r SearchResult) ItemCount() int {
	if r.Count < 0 {
		return 0
	}
	return r.Count
}

// SearchQuery identifies one request against the search API.
type SearchQuery struct {
	Keyword string
	Page    int // 1-based; values < 1 omit the parameter
	Pages   int // server-side pages per request; values < 1 omit the parameter
}
