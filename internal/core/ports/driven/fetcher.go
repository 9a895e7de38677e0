package driven

import "context"

// FetchedPage is a candidate source page reduced to its readable text.
type FetchedPage struct {
	// FinalURL is the URL after redirects, the one cited in the report.
	FinalURL string

	// Paragraphs are the page's readable text blocks in document order,
	// with boilerplate (scripts, navigation, ads) stripped.
	Paragraphs []string
}

// PageFetcher downloads a candidate page and extracts its paragraphs.
type PageFetcher interface {
	// Fetch retrieves the page at url. Unreachable or unparseable pages
	// return an error; callers treat that as "skip this candidate".
	Fetch(ctx context.Context, url string) (*FetchedPage, error)
}
