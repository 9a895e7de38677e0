package driven

import "github.com/custodia-labs/wikifinder/internal/core/domain"

// ReportRenderer turns a result set into the HTML report document.
type ReportRenderer interface {
	// Render produces the full HTML document text for the report.
	// It validates the report first and returns a MissingFieldError
	// without producing any output if a required field is absent.
	// Rendering is deterministic and never mutates the report.
	Render(report *domain.Report) (string, error)
}
