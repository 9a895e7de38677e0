package file

// Configuration keys understood by wikifinder.
const (
	KeySearchProvider   = "search.provider"
	KeySearchAPIKey     = "search.api_key"
	KeySearchResults    = "search.result_count"
	KeySearchPerSecond  = "search.requests_per_second"
	KeySkipSites        = "search.skip_sites"
	KeyFetchTimeoutSecs = "fetch.timeout_seconds"
	KeyCitationNeeded   = "corpus.citation_templates"
	KeyQuoteTemplate    = "corpus.quote_template"
	KeyQuoteTextParam   = "corpus.quote_text_param"
)

// defaultCitationTemplates are the template names Wikipedia editors use
// to mark an unsubstantiated claim.
var defaultCitationTemplates = []string{
	"citation needed",
	"cn",
	"fact",
	"citeneeded",
	"citation missing",
	"cb",
}

// defaultSkipSites are Wikipedia itself and its best-known mirrors.
// A source that only repeats the article back is not a source.
var defaultSkipSites = []string{
	"wikipedia.org",
	"wikiwand.com",
	"everipedia.org",
	"wiki2.org",
	"dbpedia.org",
}

// EnsureDefaults fills in settings the user has not configured yet.
// Existing values are left untouched.
func (s *ConfigStore) EnsureDefaults() error {
	defaults := []struct {
		key   string
		value any
	}{
		{KeySearchProvider, "bing"},
		{KeySearchResults, 20},
		{KeySearchPerSecond, 3},
		{KeySkipSites, defaultSkipSites},
		{KeyFetchTimeoutSecs, 7},
		{KeyCitationNeeded, defaultCitationTemplates},
		{KeyQuoteTemplate, "quote"},
		{KeyQuoteTextParam, "text"},
	}

	for _, d := range defaults {
		if err := s.SetDefault(d.key, d.value); err != nil {
			return err
		}
	}
	return nil
}
