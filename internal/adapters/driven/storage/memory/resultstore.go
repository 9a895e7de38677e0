package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/wikifinder/internal/core/domain"
	"github.com/custodia-labs/wikifinder/internal/core/ports/driven"
)

// Ensure ResultStore implements the interface.
var _ driven.ResultStore = (*ResultStore)(nil)

// ResultStore is an in-memory implementation of driven.ResultStore,
// keyed by the path the report would have been written to.
type ResultStore struct {
	mu      sync.RWMutex
	reports map[string]*domain.Report
}

// NewResultStore creates an empty in-memory result store.
func NewResultStore() *ResultStore {
	return &ResultStore{reports: make(map[string]*domain.Report)}
}

// Save stores a copy of the report under path.
func (s *ResultStore) Save(_ context.Context, path string, report *domain.Report) error {
	if report == nil {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *report
	copied.Articles = append([]domain.Article(nil), report.Articles...)
	s.reports[path] = &copied
	return nil
}

// Load retrieves the report stored under path.
func (s *ResultStore) Load(_ context.Context, path string) (*domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report, ok := s.reports[path]
	if !ok {
		return nil, domain.ErrNotFound
	}

	copied := *report
	copied.Articles = append([]domain.Article(nil), report.Articles...)
	return &copied, nil
}
