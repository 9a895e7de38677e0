// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/wikifinder/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewArticles lists the articles of the loaded report.
	ViewArticles ViewType = iota
	// ViewClaims lists the claims of the selected article.
	ViewClaims
	// ViewSources lists candidate sources for the selected claim.
	ViewSources
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewArticles:
		return "articles"
	case ViewClaims:
		return "claims"
	case ViewSources:
		return "sources"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ArticleSelected signals an article was selected for its claim list.
type ArticleSelected struct {
	Article domain.Article
}

// ClaimSelected signals a claim was selected for its source list.
type ClaimSelected struct {
	Claim domain.Claim
}

// CitationCopied signals a copy-citation attempt finished.
// Err is advisory: the browser shows a status message and moves on.
type CitationCopied struct {
	Citation string
	Err      error
}

// URLOpened signals an open-in-browser attempt finished.
type URLOpened struct {
	URL string
	Err error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
