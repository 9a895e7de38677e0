// Package fetch downloads candidate source pages and reduces them to
// readable paragraphs.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/custodia-labs/wikifinder/internal/core/ports/driven"
)

// DefaultTimeout bounds a single page download. Slow sites are skipped
// rather than waited on.
const DefaultTimeout = 7 * time.Second

// userAgent mimics a browser; many sites refuse requests without one.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Ensure Fetcher implements the interface.
var _ driven.PageFetcher = (*Fetcher)(nil)

// Fetcher retrieves pages over HTTP and extracts their paragraphs.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a page fetcher. A non-positive timeout uses
// DefaultTimeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch downloads the page at url and extracts its text paragraphs.
// Redirects are followed; FinalURL is the URL that actually served the
// page, which is the one worth citing.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*driven.FetchedPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}

	// Boilerplate carries no citable text.
	doc.Find("script, style, nav, footer, header, aside").Remove()

	var paragraphs []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text != "" {
			paragraphs = append(paragraphs, text)
		}
	})

	return &driven.FetchedPage{
		FinalURL:   resp.Request.URL.String(),
		Paragraphs: paragraphs,
	}, nil
}
