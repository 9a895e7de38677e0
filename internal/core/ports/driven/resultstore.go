package driven

import (
	"context"

	"github.com/custodia-labs/wikifinder/internal/core/domain"
)

// ResultStore persists finder result sets so reports can be re-rendered
// and browsed without re-running the pipeline.
type ResultStore interface {
	// Save writes a result set to path.
	Save(ctx context.Context, path string, report *domain.Report) error

	// Load reads a previously saved result set from path.
	Load(ctx context.Context, path string) (*domain.Report, error)
}
