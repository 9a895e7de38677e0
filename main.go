// wikifinder finds web sources for Wikipedia claims marked "citation
// needed" and renders the candidates as an HTML report.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/custodia-labs/wikifinder/internal/adapters/driven/config/file"
	"github.com/custodia-labs/wikifinder/internal/adapters/driven/corpus/wikidump"
	"github.com/custodia-labs/wikifinder/internal/adapters/driven/fetch"
	"github.com/custodia-labs/wikifinder/internal/adapters/driven/report/html"
	"github.com/custodia-labs/wikifinder/internal/adapters/driven/search/bing"
	"github.com/custodia-labs/wikifinder/internal/adapters/driven/search/serp"
	"github.com/custodia-labs/wikifinder/internal/adapters/driven/storage/jsonfile"
	"github.com/custodia-labs/wikifinder/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wikifinder/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/wikifinder/internal/adapters/driving/cli"
	"github.com/custodia-labs/wikifinder/internal/core/ports/driven"
	"github.com/custodia-labs/wikifinder/internal/core/ports/driving"
	"github.com/custodia-labs/wikifinder/internal/core/services"
	"github.com/custodia-labs/wikifinder/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	if err := config.EnsureDefaults(); err != nil {
		return fmt.Errorf("apply default config: %w", err)
	}

	dict, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("open dictionary: %w", err)
	}

	renderer, err := html.NewRenderer()
	if err != nil {
		return fmt.Errorf("load report template: %w", err)
	}

	reporter := services.NewReporter(renderer, jsonfile.NewResultStore())
	actions := services.NewResultActionService()
	builder := services.NewQueryBuilder(dict)

	newCorpus := func(dumpPath string) (*wikidump.Reader, error) {
		return wikidump.NewReader(dumpPath, wikidump.Options{
			CitationTemplates: config.GetStringSlice(file.KeyCitationNeeded),
			QuoteTemplate:     config.GetString(file.KeyQuoteTemplate),
			QuoteTextParam:    config.GetString(file.KeyQuoteTextParam),
		})
	}

	cli.SetServices(cli.Services{
		NewFinder: func(dumpPath string) (driving.FinderService, error) {
			corpus, err := newCorpus(dumpPath)
			if err != nil {
				return nil, err
			}

			searcher, err := newSearcher(config)
			if err != nil {
				logger.Warn("Search provider not configured: %v", err)
			}

			timeout := time.Duration(config.GetInt(file.KeyFetchTimeoutSecs)) * time.Second
			fetcher := fetch.NewFetcher(timeout)
			watcher := file.NewSkipListWatcher(config, file.KeySkipSites)

			return services.NewFinder(corpus, searcher, fetcher, builder, config, watcher), nil
		},
		NewPreparer: func(dumpPath string, dryRun bool) (driving.PrepareService, error) {
			corpus, err := newCorpus(dumpPath)
			if err != nil {
				return nil, err
			}
			if dryRun {
				return services.NewPreparer(corpus, memory.NewDictionaryStore()), nil
			}
			return services.NewPreparer(corpus, dict), nil
		},
		Reports: reporter,
		Actions: actions,
		Config:  config,
	})

	return cli.Execute(version)
}

// newSearcher builds the configured web search client. A missing API key
// is reported here but only aborts a run when find actually needs it.
func newSearcher(config *file.ConfigStore) (driven.WebSearcher, error) {
	apiKey := config.GetString(file.KeySearchAPIKey)
	resultCount := config.GetInt(file.KeySearchResults)

	switch provider := config.GetString(file.KeySearchProvider); provider {
	case "google":
		client, err := serp.NewClient(apiKey, resultCount)
		if err != nil {
			return nil, err
		}
		return client, nil
	case "bing", "":
		client, err := bing.NewClient(bing.Config{
			APIKey:      apiKey,
			ResultCount: resultCount,
			PerSecond:   float64(config.GetInt(file.KeySearchPerSecond)),
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown search provider %q", provider)
	}
}
