package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/wikifinder/internal/core/ports/driven"
)

// Ensure DictionaryStore implements the interface.
var _ driven.DictionaryStore = (*DictionaryStore)(nil)

// DictionaryStore is an in-memory implementation of driven.DictionaryStore.
type DictionaryStore struct {
	mu       sync.RWMutex
	counts   map[string]int
	articles int
}

// NewDictionaryStore creates an empty in-memory dictionary.
func NewDictionaryStore() *DictionaryStore {
	return &DictionaryStore{counts: make(map[string]int)}
}

// AddDocument records one document's distinct tokens.
func (s *DictionaryStore) AddDocument(_ context.Context, tokens []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, token := range tokens {
		s.counts[token]++
	}
	s.articles++
	return nil
}

// DocumentFrequency returns how many documents contain the token.
func (s *DictionaryStore) DocumentFrequency(_ context.Context, token string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counts[token], nil
}

// DocumentFrequencies is the batch form of DocumentFrequency.
func (s *DictionaryStore) DocumentFrequencies(_ context.Context, tokens []string) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]int, len(tokens))
	for _, token := range tokens {
		result[token] = s.counts[token]
	}
	return result, nil
}

// ArticleCount returns the total number of documents recorded.
func (s *DictionaryStore) ArticleCount(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.articles, nil
}

// TokenCount returns the number of distinct tokens recorded.
func (s *DictionaryStore) TokenCount(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.counts), nil
}

// Reset clears the dictionary.
func (s *DictionaryStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counts = make(map[string]int)
	s.articles = 0
	return nil
}

// Close is a no-op for the in-memory store.
func (s *DictionaryStore) Close() error {
	return nil
}
