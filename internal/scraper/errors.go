package scraper

import "errors"

var (
	// ErrFetch indicates a page could not be retrieved from the cache or the network
	ErrFetch = errors.New("fetch failed")
	// ErrStructure indicates markup that lacks an expected table, cell or attribute
	ErrStructure = errors.New("unexpected page structure")
)
