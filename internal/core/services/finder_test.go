package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wikifinder/internal/core/domain"
	"github.com/custodia-labs/wikifinder/internal/core/ports/driven"
	"github.com/custodia-labs/wikifinder/internal/core/ports/driving"
)

// --- Mock implementations ---

// mockCorpus implements driven.CorpusReader for testing.
type mockCorpus struct {
	baseURL  string
	articles []domain.CorpusArticle
	err      error
}

func (m *mockCorpus) BaseURL(_ context.Context) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.baseURL, nil
}

func (m *mockCorpus) Articles(ctx context.Context) (<-chan domain.CorpusArticle, <-chan error) {
	out := make(chan domain.CorpusArticle)
	errs := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errs)
		for _, a := range m.articles {
			select {
			case <-ctx.Done():
				return
			case out <- a:
			}
		}
	}()
	return out, errs
}

// mockSearcher implements driven.WebSearcher for testing.
type mockSearcher struct {
	results  []domain.WebResult
	err      error
	queries  []string
	skipSeen [][]string
}

func (m *mockSearcher) Search(_ context.Context, query string, skipSites []string) ([]domain.WebResult, error) {
	m.queries = append(m.queries, query)
	m.skipSeen = append(m.skipSeen, skipSites)
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

// mockFetcher implements driven.PageFetcher for testing.
type mockFetcher struct {
	pages map[string]*driven.FetchedPage
	err   error
}

func (m *mockFetcher) Fetch(_ context.Context, url string) (*driven.FetchedPage, error) {
	if m.err != nil {
		return nil, m.err
	}
	page, ok := m.pages[url]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return page, nil
}

// mockConfigStore implements driven.ConfigStore for testing.
type mockConfigStore struct {
	values map[string]any
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	s, _ := m.values[key].(string)
	return s
}

func (m *mockConfigStore) GetInt(key string) int {
	i, _ := m.values[key].(int)
	return i
}

func (m *mockConfigStore) GetBool(key string) bool {
	b, _ := m.values[key].(bool)
	return b
}

func (m *mockConfigStore) GetStringSlice(key string) []string {
	s, _ := m.values[key].([]string)
	return s
}

func (m *mockConfigStore) Set(key string, value any) error {
	if m.values == nil {
		m.values = make(map[string]any)
	}
	m.values[key] = value
	return nil
}

func (m *mockConfigStore) Load() error { return nil }

// --- Tests ---

func newTestFinder(corpus *mockCorpus, searcher *mockSearcher, fetcher *mockFetcher) *Finder {
	dict := &mockDictionaryStore{
		articles: 100,
		dfs:      map[string]int{"sky": 5, "blue": 5, "rayleigh": 2, "scattering": 2},
	}
	config := &mockConfigStore{values: map[string]any{
		KeySkipSites: []string{"wikipedia.org"},
	}}
	return NewFinder(corpus, searcher, fetcher, NewQueryBuilder(dict), config, nil)
}

func TestFinderFind(t *testing.T) {
	corpus := &mockCorpus{
		baseURL: "https://en.wikipedia.org",
		articles: []domain.CorpusArticle{{
			ID:    "A1",
			Title: "Test Article",
			Text:  "The sky is blue due to Rayleigh scattering$$CNMARK$$ and so on.",
		}},
	}
	searcher := &mockSearcher{
		results: []domain.WebResult{{
			URL:     "https://example.com/page",
			Title:   "Example Source",
			Snippet: "sky appears blue",
		}},
	}
	fetcher := &mockFetcher{
		pages: map[string]*driven.FetchedPage{
			"https://example.com/page": {
				FinalURL:   "https://example.com/page",
				Paragraphs: []string{"Unrelated text.", "The sky is blue due to scattering of light."},
			},
		},
	}

	finder := newTestFinder(corpus, searcher, fetcher)
	report, err := finder.Find(context.Background(), driving.FinderOptions{})
	require.NoError(t, err)

	assert.Equal(t, "https://en.wikipedia.org", report.BaseURL)
	require.Len(t, report.Articles, 1)

	article := report.Articles[0]
	assert.Equal(t, "A1", article.ID)
	assert.Equal(t, "Test Article", article.Title)
	require.Len(t, article.Claims, 1)

	claim := article.Claims[0]
	assert.Equal(t, domain.ClaimKey{ArticleID: "A1", Ordinal: 0}, claim.Key)
	assert.Equal(t, "A1-0", claim.Key.String())
	assert.Equal(t, "The sky is blue due to Rayleigh scattering", claim.Text)
	assert.Contains(t, claim.GoogleLink, "https://google.com/search?q=")
	assert.Contains(t, claim.GoogleLink, "-site%3Awikipedia.org")

	require.Len(t, claim.Sites, 1)
	site := claim.Sites[0]
	assert.Equal(t, "https://example.com/page", site.URL)
	assert.Equal(t, "Example Source", site.Title)
	assert.Equal(t, "sky appears blue", site.Snippet)
	assert.Equal(t, "The sky is blue due to scattering of light.", site.MatchedText)

	// Search was called with the configured skip list.
	require.Len(t, searcher.skipSeen, 1)
	assert.Equal(t, []string{"wikipedia.org"}, searcher.skipSeen[0])

	status := finder.Status()
	assert.Equal(t, 1, status.ArticlesProcessed)
	assert.Equal(t, 1, status.ClaimsProcessed)
	assert.Equal(t, 1, status.SitesMatched)
}

func TestFinderIncludesArticlesWithoutClaims(t *testing.T) {
	corpus := &mockCorpus{
		baseURL: "https://en.wikipedia.org",
		articles: []domain.CorpusArticle{
			{ID: "A1", Title: "No Claims", Text: "Nothing to cite here."},
		},
	}
	finder := newTestFinder(corpus, &mockSearcher{}, &mockFetcher{})

	report, err := finder.Find(context.Background(), driving.FinderOptions{})
	require.NoError(t, err)

	require.Len(t, report.Articles, 1)
	assert.Empty(t, report.Articles[0].Claims)
}

func TestFinderSearchFailureSkipsClaim(t *testing.T) {
	corpus := &mockCorpus{
		baseURL: "https://en.wikipedia.org",
		articles: []domain.CorpusArticle{{
			ID:    "A1",
			Title: "Test Article",
			Text:  "The sky is blue due to Rayleigh scattering$$CNMARK$$ done.",
		}},
	}
	searcher := &mockSearcher{err: errors.New("api down")}
	finder := newTestFinder(corpus, searcher, &mockFetcher{})

	report, err := finder.Find(context.Background(), driving.FinderOptions{})
	require.NoError(t, err)

	// The claim survives with no candidate sites; per-claim search
	// failures never abort the run.
	require.Len(t, report.Articles, 1)
	require.Len(t, report.Articles[0].Claims, 1)
	assert.Empty(t, report.Articles[0].Claims[0].Sites)
}

func TestFinderUnreachablePageSkipped(t *testing.T) {
	corpus := &mockCorpus{
		baseURL: "https://en.wikipedia.org",
		articles: []domain.CorpusArticle{{
			ID:    "A1",
			Title: "Test Article",
			Text:  "The sky is blue due to Rayleigh scattering$$CNMARK$$ done.",
		}},
	}
	searcher := &mockSearcher{
		results: []domain.WebResult{{URL: "https://dead.example.com", Title: "Dead"}},
	}
	fetcher := &mockFetcher{err: errors.New("timeout")}
	finder := newTestFinder(corpus, searcher, fetcher)

	report, err := finder.Find(context.Background(), driving.FinderOptions{})
	require.NoError(t, err)
	assert.Empty(t, report.Articles[0].Claims[0].Sites)
}

func TestFinderMaxArticlesCap(t *testing.T) {
	corpus := &mockCorpus{
		baseURL: "https://en.wikipedia.org",
		articles: []domain.CorpusArticle{
			{ID: "A1", Title: "One", Text: "plain"},
			{ID: "A2", Title: "Two", Text: "plain"},
			{ID: "A3", Title: "Three", Text: "plain"},
		},
	}
	finder := newTestFinder(corpus, &mockSearcher{}, &mockFetcher{})

	report, err := finder.Find(context.Background(), driving.FinderOptions{MaxArticles: 2})
	require.NoError(t, err)
	assert.Len(t, report.Articles, 2)
}

func TestFinderMaxSitesPerClaim(t *testing.T) {
	corpus := &mockCorpus{
		baseURL: "https://en.wikipedia.org",
		articles: []domain.CorpusArticle{{
			ID:    "A1",
			Title: "Test Article",
			Text:  "The sky is blue due to Rayleigh scattering$$CNMARK$$ done.",
		}},
	}
	searcher := &mockSearcher{
		results: []domain.WebResult{
			{URL: "https://a.example.com", Title: "A"},
			{URL: "https://b.example.com", Title: "B"},
			{URL: "https://c.example.com", Title: "C"},
		},
	}
	fetcher := &mockFetcher{pages: map[string]*driven.FetchedPage{
		"https://a.example.com": {FinalURL: "https://a.example.com", Paragraphs: []string{"sky blue"}},
		"https://b.example.com": {FinalURL: "https://b.example.com", Paragraphs: []string{"sky blue"}},
		"https://c.example.com": {FinalURL: "https://c.example.com", Paragraphs: []string{"sky blue"}},
	}}
	finder := newTestFinder(corpus, searcher, fetcher)

	report, err := finder.Find(context.Background(), driving.FinderOptions{MaxSitesPerClaim: 2})
	require.NoError(t, err)
	assert.Len(t, report.Articles[0].Claims[0].Sites, 2)
}

func TestFinderRequiresSearcher(t *testing.T) {
	finder := NewFinder(&mockCorpus{}, nil, &mockFetcher{}, NewQueryBuilder(&mockDictionaryStore{}), &mockConfigStore{}, nil)

	_, err := finder.Find(context.Background(), driving.FinderOptions{})
	assert.ErrorIs(t, err, domain.ErrSearchUnavailable)
}

func TestFinderEmptyDictionaryFails(t *testing.T) {
	corpus := &mockCorpus{
		baseURL: "https://en.wikipedia.org",
		articles: []domain.CorpusArticle{{
			ID:    "A1",
			Title: "Test Article",
			Text:  "The sky is blue due to Rayleigh scattering$$CNMARK$$ done.",
		}},
	}
	finder := NewFinder(corpus, &mockSearcher{}, &mockFetcher{},
		NewQueryBuilder(&mockDictionaryStore{articles: 0}), &mockConfigStore{}, nil)

	_, err := finder.Find(context.Background(), driving.FinderOptions{})
	assert.ErrorIs(t, err, domain.ErrDictionaryUnavailable)
}
