// Package jsonfile persists finder result sets as JSON documents on
// disk. The JSON field names are the wire contract with the report
// template, so saved runs can be re-rendered by later versions.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/wikifinder/internal/core/domain"
	"github.com/custodia-labs/wikifinder/internal/core/ports/driven"
)

// Ensure ResultStore implements the interface.
var _ driven.ResultStore = (*ResultStore)(nil)

// ResultStore reads and writes result sets as JSON files.
type ResultStore struct{}

// NewResultStore creates a JSON file result store.
func NewResultStore() *ResultStore {
	return &ResultStore{}
}

// Save writes the report to path, creating parent directories as
// needed. The file is written to a temporary name first and renamed, so
// an interrupted save never leaves a truncated result set behind.
func (s *ResultStore) Save(ctx context.Context, path string, report *domain.Report) error {
	if report == nil {
		return domain.ErrInvalidInput
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("creating result directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing results: %w", err)
	}
	return nil
}

// Load reads a previously saved result set from path.
func (s *ResultStore) Load(ctx context.Context, path string) (*domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading results: %w", err)
	}

	var report domain.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("decoding results: %w", err)
	}
	return &report, nil
}
