package html

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/custodia-labs/wikifinder/internal/core/domain"
	"github.com/custodia-labs/wikifinder/internal/core/ports/driven"
)

//go:embed template.html
var templateFS embed.FS

// Ensure Renderer implements the interface.
var _ driven.ReportRenderer = (*Renderer)(nil)

// Renderer produces the HTML review document from a report.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer compiles the embedded report template.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "template.html")
	if err != nil {
		return nil, fmt.Errorf("parse report template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render validates the report and substitutes it into the template.
// Validation happens up front so a malformed report produces no output
// at all rather than a partial document. The report is not mutated;
// rendering the same report twice yields byte-identical output.
//
// User-provided text (titles, claim text, snippets, matched text) is
// HTML-escaped on the way into the document.
func (r *Renderer) Render(report *domain.Report) (string, error) {
	if report == nil {
		return "", fmt.Errorf("report is nil")
	}
	if err := report.Validate(); err != nil {
		return "", err
	}

	var buf strings.Builder
	if err := r.tmpl.Execute(&buf, report); err != nil {
		return "", fmt.Errorf("execute report template: %w", err)
	}
	return buf.String(), nil
}
