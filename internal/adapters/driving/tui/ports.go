// Package tui provides an interactive terminal browser for finder reports.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/wikifinder/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the browser.
// This provides a single injection point for dependency injection.
type Ports struct {
	// ResultAction provides the copy-citation and open-in-browser actions.
	ResultAction driving.ResultActionService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(resultAction driving.ResultActionService) *Ports {
	return &Ports{
		ResultAction: resultAction,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.ResultAction == nil {
		return ErrMissingActionService
	}
	return nil
}
