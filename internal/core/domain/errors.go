package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingField indicates a required field is absent on a report record.
	// Rendering fails fast on it; partial reports are never produced.
	ErrMissingField = errors.New("missing required field")

	// ErrSearchUnavailable indicates no web search provider is configured.
	// The finder cannot run without one.
	ErrSearchUnavailable = errors.New("web search unavailable")

	// ErrDictionaryUnavailable indicates the term dictionary has not been
	// built yet. Run `wikifinder prepare` first.
	ErrDictionaryUnavailable = errors.New("term dictionary unavailable; run prepare first")

	// ErrAPIKeyMissing indicates the search provider API key is not set.
	ErrAPIKeyMissing = errors.New("search API key not configured")

	// ErrRateLimited indicates the search API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrClipboardUnavailable indicates no clipboard utility could be used.
	// Callers at the UI boundary ignore it by policy.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
)

// MissingFieldError reports a required field absent on a report record.
// It names the record type and field so the producer can be fixed.
type MissingFieldError struct {
	// Record is the record type, e.g. "Claim".
	Record string

	// Field is the wire name of the missing field, e.g. "claim_text".
	Field string
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Record, e.Field, ErrMissingField)
}

// Unwrap allows errors.Is(err, ErrMissingField).
func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}
