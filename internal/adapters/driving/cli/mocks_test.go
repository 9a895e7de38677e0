package cli

import (
	"context"

	"github.com/custodia-labs/wikifinder/internal/core/domain"
	"github.com/custodia-labs/wikifinder/internal/core/ports/driving"
)

// mockFinder implements driving.FinderService for testing.
type mockFinder struct {
	report *domain.Report
	status driving.FinderStatus
	err    error
	opts   driving.FinderOptions
}

func (m *mockFinder) Find(_ context.Context, opts driving.FinderOptions) (*domain.Report, error) {
	m.opts = opts
	if m.err != nil {
		return nil, m.err
	}
	return m.report, nil
}

func (m *mockFinder) Status() driving.FinderStatus {
	return m.status
}

// mockPreparer implements driving.PrepareService for testing.
type mockPreparer struct {
	stats *driving.PrepareStats
	err   error
}

func (m *mockPreparer) Prepare(_ context.Context) (*driving.PrepareStats, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.stats, nil
}

// mockReportService implements driving.ReportService for testing.
type mockReportService struct {
	report    *domain.Report
	loadErr   error
	saveErr   error
	htmlErr   error
	savedPath string
	saved     *domain.Report
	htmlPath  string
}

func (m *mockReportService) Render(_ *domain.Report) (string, error) {
	return "<html></html>", nil
}

func (m *mockReportService) Load(_ context.Context, _ string) (*domain.Report, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.report, nil
}

func (m *mockReportService) Save(_ context.Context, path string, report *domain.Report) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.savedPath = path
	m.saved = report
	return nil
}

func (m *mockReportService) WriteHTML(_ *domain.Report, path string) error {
	if m.htmlErr != nil {
		return m.htmlErr
	}
	m.htmlPath = path
	return nil
}

// mockActionService implements driving.ResultActionService for testing.
type mockActionService struct {
	copied []string
	opened []string
	err    error
}

func (m *mockActionService) CopyCitation(_ context.Context, match *domain.SourceMatch) error {
	if m.err != nil {
		return m.err
	}
	m.copied = append(m.copied, match.Citation())
	return nil
}

func (m *mockActionService) OpenURL(_ context.Context, url string) error {
	if m.err != nil {
		return m.err
	}
	m.opened = append(m.opened, url)
	return nil
}

// mockConfigStore implements driven.ConfigStore for testing.
type mockConfigStore struct {
	values map[string]any
	setErr error
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{values: make(map[string]any)}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	if v, ok := m.values[key].(string); ok {
		return v
	}
	return ""
}

func (m *mockConfigStore) GetInt(key string) int {
	if v, ok := m.values[key].(int); ok {
		return v
	}
	return 0
}

func (m *mockConfigStore) GetBool(key string) bool {
	if v, ok := m.values[key].(bool); ok {
		return v
	}
	return false
}

func (m *mockConfigStore) GetStringSlice(key string) []string {
	if v, ok := m.values[key].([]string); ok {
		return v
	}
	return nil
}

func (m *mockConfigStore) Set(key string, value any) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func (m *mockConfigStore) Load() error {
	return nil
}

// testReport builds a small report for command tests.
func testReport() *domain.Report {
	return &domain.Report{
		BaseURL: "https://en.wikipedia.org",
		Articles: []domain.Article{
			{
				ID:    "A1",
				Title: "Test Article",
				Claims: []domain.Claim{
					{
						Key:        domain.ClaimKey{ArticleID: "A1", Ordinal: 0},
						Text:       "The sky is blue.",
						GoogleLink: "https://google.com/search?q=sky+blue",
						Sites: []domain.SourceMatch{
							{
								URL:         "https://example.com/sky",
								Title:       "Why the sky is blue",
								Snippet:     "An explanation.",
								MatchedText: "The sky appears blue.",
							},
						},
					},
				},
			},
		},
	}
}
