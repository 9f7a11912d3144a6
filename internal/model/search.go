package model

// SearchResult represents a single hit on the upstream search page
type SearchResult struct {
	Title   string
	Ncode   string
	Author  string
	Summary string
}

// SearchPage is one page of search results
type SearchPage struct {
	Query      string
	Results    []SearchResult
	Total      string // decimal hit count, or a placeholder when unknown
	Page       int
	Pagination Pagination
}
