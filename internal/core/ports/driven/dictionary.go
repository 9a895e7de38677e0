package driven

import "context"

// DictionaryStore persists the token document-frequency dictionary built
// by `wikifinder prepare`. Backed by SQLite.
type DictionaryStore interface {
	// AddDocument records one document's distinct tokens, incrementing
	// each token's document frequency and the article count.
	AddDocument(ctx context.Context, tokens []string) error

	// DocumentFrequency returns how many documents contain the token,
	// or 0 if the token is unknown.
	DocumentFrequency(ctx context.Context, token string) (int, error)

	// DocumentFrequencies is the batch form of DocumentFrequency.
	// Unknown tokens map to 0.
	DocumentFrequencies(ctx context.Context, tokens []string) (map[string]int, error)

	// ArticleCount returns the total number of documents recorded.
	ArticleCount(ctx context.Context) (int, error)

	// TokenCount returns the number of distinct tokens recorded.
	TokenCount(ctx context.Context) (int, error)

	// Reset clears the dictionary so prepare can rebuild it.
	Reset(ctx context.Context) error

	// Close releases resources.
	Close() error
}
