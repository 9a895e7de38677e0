// Package bing queries the Bing Web Search API for candidate source
// pages.
package bing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/wikifinder/internal/core/domain"
	"github.com/custodia-labs/wikifinder/internal/core/ports/driven"
)

const (
	// DefaultEndpoint is the Bing Web Search API endpoint.
	DefaultEndpoint = "https://api.bing.microsoft.com/v7.0/search"

	// DefaultResultCount is how many hits one query asks for.
	DefaultResultCount = 20

	// defaultPerSecond caps the request rate against the API quota.
	defaultPerSecond = 3

	// maxQueryLength caps the query string sent to the API. The
	// site-exclusion clause is truncated before the query exceeds it.
	maxQueryLength = 1400

	// clientID identifies this application to the API.
	clientID = "WikipediaSourceFinder"
)

// Ensure Client implements the interface.
var _ driven.WebSearcher = (*Client)(nil)

// Config holds Bing client settings.
type Config struct {
	// APIKey is the Bing subscription key. Required.
	APIKey string

	// Endpoint overrides DefaultEndpoint. Used by tests.
	Endpoint string

	// ResultCount overrides DefaultResultCount.
	ResultCount int

	// PerSecond overrides the default request rate limit.
	PerSecond float64
}

// Client talks to the Bing Web Search API.
type Client struct {
	apiKey   string
	endpoint string
	count    int
	client   *http.Client
	limiter  *rate.Limiter
}

// NewClient creates a Bing search client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, domain.ErrAPIKeyMissing
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.ResultCount <= 0 {
		cfg.ResultCount = DefaultResultCount
	}
	if cfg.PerSecond <= 0 {
		cfg.PerSecond = defaultPerSecond
	}

	return &Client{
		apiKey:   cfg.APIKey,
		endpoint: cfg.Endpoint,
		count:    cfg.ResultCount,
		client:   &http.Client{Timeout: 15 * time.Second},
		limiter:  rate.NewLimiter(rate.Limit(cfg.PerSecond), 1),
	}, nil
}

// searchResponse is the subset of the API response wikifinder reads.
type searchResponse struct {
	WebPages struct {
		Value []struct {
			Name    string `json:"name"`
			URL     string `json:"url"`
			Snippet string `json:"snippet"`
		} `json:"value"`
	} `json:"webPages"`
}

// Search runs the keyword query and returns hits in ranking order.
func (c *Client) Search(ctx context.Context, query string, skipSites []string) ([]domain.WebResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", buildQuery(query, skipSites))
	params.Set("count", strconv.Itoa(c.count))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.apiKey)
	req.Header.Set("X-MSEdge-ClientID", clientID)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bing search: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("%w: bing rejected the API key", domain.ErrAPIKeyMissing)
	case http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: bing search quota exhausted", domain.ErrRateLimited)
	default:
		return nil, fmt.Errorf("bing search: status %d", resp.StatusCode)
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode bing response: %w", err)
	}

	results := make([]domain.WebResult, 0, len(decoded.WebPages.Value))
	for _, page := range decoded.WebPages.Value {
		if page.URL == "" {
			continue
		}
		results = append(results, domain.WebResult{
			URL:     page.URL,
			Title:   page.Name,
			Snippet: page.Snippet,
		})
	}
	return results, nil
}

// buildQuery appends a site-exclusion clause to the keyword query.
// Wikipedia itself is always excluded. The clause is cut off before the
// query would exceed maxQueryLength.
func buildQuery(keywords string, skipSites []string) string {
	var b strings.Builder
	b.WriteString(keywords)
	b.WriteString(" NOT (site:wikipedia.org")

	length := b.Len()
	for _, site := range skipSites {
		if site == "wikipedia.org" {
			continue
		}
		clause := " OR site:" + site
		length += len(clause)
		if length > maxQueryLength {
			break
		}
		b.WriteString(clause)
	}
	b.WriteString(")")
	return b.String()
}
