package tui

import "errors"

// Sentinel errors for missing dependencies.
var (
	// ErrMissingActionService indicates the result action service is not set.
	ErrMissingActionService = errors.New("result action service is required")

	// ErrMissingReport indicates no report was provided to browse.
	ErrMissingReport = errors.New("report is required")
)
