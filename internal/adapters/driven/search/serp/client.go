// Package serp queries Google through SerpApi as an alternative search
// provider.
package serp

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	g "github.com/serpapi/google-search-results-golang"

	"github.com/custodia-labs/wikifinder/internal/core/domain"
	"github.com/custodia-labs/wikifinder/internal/core/ports/driven"
)

// DefaultResultCount is how many hits one query asks for.
const DefaultResultCount = 20

// Ensure Client implements the interface.
var _ driven.WebSearcher = (*Client)(nil)

// Client is a wrapper around the SerpApi search service.
type Client struct {
	apiKey string
	count  int
}

// NewClient creates a SerpApi search client.
func NewClient(apiKey string, resultCount int) (*Client, error) {
	if apiKey == "" {
		return nil, domain.ErrAPIKeyMissing
	}
	if resultCount <= 0 {
		resultCount = DefaultResultCount
	}
	return &Client{apiKey: apiKey, count: resultCount}, nil
}

// Search runs the keyword query and returns organic results in ranking
// order. Skip sites are excluded with Google's -site: operator.
func (c *Client) Search(ctx context.Context, query string, skipSites []string) ([]domain.WebResult, error) {
	// The SerpApi client has no context support; honor cancellation at
	// least before the call.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parameter := map[string]string{
		"engine":        "google",
		"q":             buildQuery(query, skipSites),
		"num":           strconv.Itoa(c.count),
		"google_domain": "google.com",
		"hl":            "en",
	}

	search := g.NewGoogleSearch(parameter, c.apiKey)
	results, err := search.GetJSON()
	if err != nil {
		return nil, fmt.Errorf("serpapi search: %w", err)
	}

	organic, ok := results["organic_results"].([]interface{})
	if !ok {
		return nil, nil
	}
	return mapOrganicResults(organic), nil
}

// buildQuery appends -site: exclusions to the keyword query.
func buildQuery(keywords string, skipSites []string) string {
	var b strings.Builder
	b.WriteString(keywords)
	b.WriteString(" -site:wikipedia.org")
	for _, site := range skipSites {
		if site == "wikipedia.org" {
			continue
		}
		b.WriteString(" -site:")
		b.WriteString(site)
	}
	return b.String()
}

// mapOrganicResults converts SerpApi organic results to domain results.
// Entries without a title or link are dropped.
func mapOrganicResults(organic []interface{}) []domain.WebResult {
	results := make([]domain.WebResult, 0, len(organic))
	for _, item := range organic {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}

		title, _ := entry["title"].(string)
		link, _ := entry["link"].(string)
		snippet, _ := entry["snippet"].(string)
		if title == "" || link == "" {
			continue
		}

		results = append(results, domain.WebResult{
			URL:     link,
			Title:   title,
			Snippet: snippet,
		})
	}
	return results
}
