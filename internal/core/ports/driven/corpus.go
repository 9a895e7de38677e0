package driven

import (
	"context"

	"github.com/custodia-labs/wikifinder/internal/core/domain"
)

// CorpusReader streams articles out of a Wikipedia XML dump.
// Backed by the bz2 wikidump adapter.
type CorpusReader interface {
	// BaseURL returns the wiki base URL from the dump's siteinfo header,
	// e.g. "https://en.wikipedia.org".
	BaseURL(ctx context.Context) (string, error)

	// Articles streams namespace-0, non-redirect articles in dump order,
	// cleaned to plaintext with domain.ClaimMarker in place of
	// citation-needed templates. The articles channel is closed when the
	// dump is exhausted; a fatal parse error is delivered on the errors
	// channel before close.
	Articles(ctx context.Context) (<-chan domain.CorpusArticle, <-chan error)
}
