package driving

import "context"

// PrepareStats summarises a dictionary build.
type PrepareStats struct {
	// Articles is the number of articles processed.
	Articles int

	// Tokens is the number of distinct tokens recorded.
	Tokens int
}

// PrepareService builds the token document-frequency dictionary that the
// query builder's IDF computation depends on. Must be run once before
// the first finder run.
type PrepareService interface {
	// Prepare streams the corpus and rebuilds the dictionary.
	Prepare(ctx context.Context) (*PrepareStats, error)
}
