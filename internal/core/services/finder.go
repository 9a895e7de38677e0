package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/custodia-labs/wikifinder/internal/core/domain"
	"github.com/custodia-labs/wikifinder/internal/core/ports/driven"
	"github.com/custodia-labs/wikifinder/internal/core/ports/driving"
	"github.com/custodia-labs/wikifinder/internal/logger"
)

// Configuration keys read by the finder.
const (
	// KeySkipSites lists domains excluded from search results.
	KeySkipSites = "search.skip_sites"
)

// Ensure Finder implements the interface.
var _ driving.FinderService = (*Finder)(nil)

// Finder coordinates the source-finding pipeline.
type Finder struct {
	corpus   driven.CorpusReader
	searcher driven.WebSearcher
	fetcher  driven.PageFetcher
	builder  *QueryBuilder
	config   driven.ConfigStore
	watcher  driven.SkipListWatcher

	// Live skip list; updated by the watcher while a run is in progress.
	skipMu    sync.RWMutex
	skipSites []string

	statusMu sync.RWMutex
	status   driving.FinderStatus
}

// NewFinder creates a finder pipeline. The watcher is optional; without
// it the skip list loaded at startup is used for the whole run.
func NewFinder(
	corpus driven.CorpusReader,
	searcher driven.WebSearcher,
	fetcher driven.PageFetcher,
	builder *QueryBuilder,
	config driven.ConfigStore,
	watcher driven.SkipListWatcher,
) *Finder {
	return &Finder{
		corpus:   corpus,
		searcher: searcher,
		fetcher:  fetcher,
		builder:  builder,
		config:   config,
		watcher:  watcher,
	}
}

// Find runs the pipeline over the corpus and assembles the report.
// Article and claim order follows the dump. Per-site and per-claim
// failures are logged and skipped; corpus and dictionary failures abort
// the run.
func (f *Finder) Find(ctx context.Context, opts driving.FinderOptions) (*domain.Report, error) {
	if f.searcher == nil {
		return nil, domain.ErrSearchUnavailable
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	baseURL, err := f.corpus.BaseURL(ctx)
	if err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}
	logger.Info("Wiki base URL: %s", baseURL)

	f.setSkipSites(f.config.GetStringSlice(KeySkipSites))
	stopWatch := f.watchSkipList(ctx)
	defer stopWatch()

	f.resetStatus()

	report := &domain.Report{BaseURL: baseURL}

	articles, errs := f.corpus.Articles(ctx)
	for article := range articles {
		rendered, err := f.processArticle(ctx, article, opts)
		if err != nil {
			return nil, err
		}
		report.Articles = append(report.Articles, *rendered)
		f.bumpArticles()

		status := f.Status()
		logger.Progress(status.ArticlesProcessed, status.ClaimsProcessed, status.SitesMatched)

		if opts.MaxArticles > 0 && len(report.Articles) >= opts.MaxArticles {
			logger.Info("Article cap reached (%d), stopping", opts.MaxArticles)
			cancel()
			break
		}
	}

	select {
	case err, ok := <-errs:
		if ok && err != nil && !errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("corpus: %w", err)
		}
	default:
	}
	if err := ctx.Err(); err != nil && opts.MaxArticles == 0 {
		return nil, err
	}

	status := f.Status()
	logger.Info("Run complete: %d articles, %d claims, %d source matches",
		status.ArticlesProcessed, status.ClaimsProcessed, status.SitesMatched)

	return report, nil
}

// processArticle extracts an article's claims and finds sources for each.
func (f *Finder) processArticle(
	ctx context.Context, article domain.CorpusArticle, opts driving.FinderOptions,
) (*domain.Article, error) {
	extracted := ExtractClaims(article)
	logger.Debug("Article %s (%s): %d claims", article.ID, article.Title, len(extracted.Claims))

	result := &domain.Article{ID: article.ID, Title: article.Title}

	for i := range extracted.Claims {
		claim := &extracted.Claims[i]

		query, err := f.builder.Build(ctx, claim)
		if err != nil {
			if errors.Is(err, domain.ErrDictionaryUnavailable) {
				return nil, err
			}
			return nil, fmt.Errorf("build query for %s: %w", article.ID, err)
		}
		claim.Query = query

		skipSites := f.currentSkipSites()
		sites := f.findSources(ctx, claim, skipSites, opts.MaxSitesPerClaim)
		if err := ctx.Err(); err != nil {
			return result, nil
		}

		result.Claims = append(result.Claims, domain.Claim{
			Key:        domain.ClaimKey{ArticleID: article.ID, Ordinal: i},
			Text:       claim.Text,
			GoogleLink: GoogleLink(query, skipSites),
			Sites:      sites,
		})
		f.bumpClaims()
	}

	return result, nil
}

// findSources searches for the claim's query and compares each candidate
// page against the claim. Unreachable candidates are skipped.
func (f *Finder) findSources(
	ctx context.Context, claim *domain.ExtractedClaim, skipSites []string, maxSites int,
) []domain.SourceMatch {
	results, err := f.searcher.Search(ctx, claim.Query, skipSites)
	if err != nil {
		logger.Warn("Search failed for %q: %v", claim.Query, err)
		return nil
	}
	logger.Debug("Query %q: %d results", claim.Query, len(results))

	var sites []domain.SourceMatch
	for _, result := range results {
		if ctx.Err() != nil {
			return sites
		}
		if maxSites > 0 && len(sites) >= maxSites {
			break
		}

		page, err := f.fetcher.Fetch(ctx, result.URL)
		if err != nil {
			logger.Debug("Skipping %s: %v", result.URL, err)
			continue
		}

		matched, score := BestParagraph(claim.Text, page.Paragraphs)
		logger.Debug("Best paragraph for %s scored %.3f", page.FinalURL, score)

		sites = append(sites, domain.SourceMatch{
			URL:         page.FinalURL,
			Title:       result.Title,
			Snippet:     result.Snippet,
			MatchedText: matched,
		})
		f.bumpSites()
	}
	return sites
}

// watchSkipList subscribes to live skip-list updates. Returns a stop
// function; a no-op when no watcher is configured.
func (f *Finder) watchSkipList(ctx context.Context) func() {
	if f.watcher == nil {
		return func() {}
	}

	updates, err := f.watcher.Watch()
	if err != nil {
		logger.Warn("Skip list watch unavailable: %v", err)
		return func() {}
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case sites, ok := <-updates:
				if !ok {
					return
				}
				logger.Info("Skip list updated: %d sites", len(sites))
				f.setSkipSites(sites)
			}
		}
	}()

	return func() {
		_ = f.watcher.Close()
		<-done
	}
}

// Status returns a snapshot of the current run's progress.
func (f *Finder) Status() driving.FinderStatus {
	f.statusMu.RLock()
	defer f.statusMu.RUnlock()
	return f.status
}

func (f *Finder) resetStatus() {
	f.statusMu.Lock()
	defer f.statusMu.Unlock()
	f.status = driving.FinderStatus{}
}

func (f *Finder) bumpArticles() {
	f.statusMu.Lock()
	defer f.statusMu.Unlock()
	f.status.ArticlesProcessed++
}

func (f *Finder) bumpClaims() {
	f.statusMu.Lock()
	defer f.statusMu.Unlock()
	f.status.ClaimsProcessed++
}

func (f *Finder) bumpSites() {
	f.statusMu.Lock()
	defer f.statusMu.Unlock()
	f.status.SitesMatched++
}

func (f *Finder) setSkipSites(sites []string) {
	f.skipMu.Lock()
	defer f.skipMu.Unlock()
	f.skipSites = append([]string(nil), sites...)
}

func (f *Finder) currentSkipSites() []string {
	f.skipMu.RLock()
	defer f.skipMu.RUnlock()
	return append([]string(nil), f.skipSites...)
}
