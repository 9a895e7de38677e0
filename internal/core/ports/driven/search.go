package driven

import (
	"context"

	"github.com/custodia-labs/wikifinder/internal/core/domain"
)

// WebSearcher queries a web search API for candidate source pages.
// Implementations exclude the given sites from results and never return
// wikipedia.org itself.
type WebSearcher interface {
	// Search runs the keyword query and returns hits in ranking order.
	// An empty result is not an error.
	Search(ctx context.Context, query string, skipSites []string) ([]domain.WebResult, error)
}
