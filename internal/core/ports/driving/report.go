package driving

import (
	"context"

	"github.com/custodia-labs/wikifinder/internal/core/domain"
)

// ReportService renders result sets to HTML and moves them to and from disk.
type ReportService interface {
	// Render produces the HTML document for a report.
	Render(report *domain.Report) (string, error)

	// Load reads a saved result set.
	Load(ctx context.Context, path string) (*domain.Report, error)

	// Save persists a result set.
	Save(ctx context.Context, path string, report *domain.Report) error

	// WriteHTML renders the report and writes it to path.
	WriteHTML(report *domain.Report, path string) error
}
