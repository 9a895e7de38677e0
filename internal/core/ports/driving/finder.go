package driving

import (
	"context"

	"github.com/custodia-labs/wikifinder/internal/core/domain"
)

// FinderOptions tunes a finder run.
type FinderOptions struct {
	// MaxArticles caps how many articles with claims are processed.
	// Zero means no cap.
	MaxArticles int

	// MaxSitesPerClaim caps how many candidate pages are fetched and
	// compared per claim. Zero means the provider's full result page.
	MaxSitesPerClaim int
}

// FinderStatus reports progress of a running finder pipeline.
type FinderStatus struct {
	// ArticlesProcessed counts articles fully processed so far.
	ArticlesProcessed int

	// ClaimsProcessed counts claims searched so far.
	ClaimsProcessed int

	// SitesMatched counts source matches accepted so far.
	SitesMatched int
}

// FinderService runs the whole source-finding pipeline: stream the dump,
// extract claims, build queries, search the web, fetch and compare
// candidate pages, and assemble the report.
type FinderService interface {
	// Find runs the pipeline over the corpus and returns the assembled
	// report. Article and claim order follows the dump.
	Find(ctx context.Context, opts FinderOptions) (*domain.Report, error)

	// Status returns a snapshot of the current run's progress.
	Status() FinderStatus
}
