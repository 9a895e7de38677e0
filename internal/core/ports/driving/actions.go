package driving

import (
	"context"

	"github.com/custodia-labs/wikifinder/internal/core/domain"
)

// ResultActionService provides actions on report entries.
type ResultActionService interface {
	// CopyCitation copies the source's citation fragment to the system
	// clipboard. The returned error is advisory: UI callers ignore it
	// beyond showing a status message, per the report's best-effort
	// clipboard policy.
	CopyCitation(ctx context.Context, match *domain.SourceMatch) error

	// OpenURL opens a source URL in the default browser.
	OpenURL(ctx context.Context, url string) error
}
