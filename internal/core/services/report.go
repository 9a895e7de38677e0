package services

import (
	"context"
	"fmt"
	"os"

	"github.com/custodia-labs/wikifinder/internal/core/domain"
	"github.com/custodia-labs/wikifinder/internal/core/ports/driven"
	"github.com/custodia-labs/wikifinder/internal/core/ports/driving"
)

// Ensure Reporter implements the interface.
var _ driving.ReportService = (*Reporter)(nil)

// Reporter renders result sets to HTML and moves them to and from disk.
type Reporter struct {
	renderer driven.ReportRenderer
	results  driven.ResultStore
}

// NewReporter creates a report service.
func NewReporter(renderer driven.ReportRenderer, results driven.ResultStore) *Reporter {
	return &Reporter{renderer: renderer, results: results}
}

// Render produces the HTML document for a report.
func (r *Reporter) Render(report *domain.Report) (string, error) {
	return r.renderer.Render(report)
}

// Load reads a saved result set.
func (r *Reporter) Load(ctx context.Context, path string) (*domain.Report, error) {
	return r.results.Load(ctx, path)
}

// Save persists a result set.
func (r *Reporter) Save(ctx context.Context, path string, report *domain.Report) error {
	return r.results.Save(ctx, path, report)
}

// WriteHTML renders the report and writes it to path. Nothing is written
// when rendering fails, so a malformed report never leaves a partial
// document behind.
func (r *Reporter) WriteHTML(report *domain.Report, path string) error {
	html, err := r.renderer.Render(report)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
