package domain

// ClaimMarker replaces {{citation needed}} templates in cleaned article
// text. The claim extractor splits paragraphs on it.
const ClaimMarker = "$$CNMARK$$"

// CorpusArticle is a single article streamed from a Wikipedia dump after
// markup cleaning. Only namespace-0, non-redirect pages are produced.
type CorpusArticle struct {
	// ID is the Wikipedia page ID.
	ID string

	// Title is the article title.
	Title string

	// Text is the article plaintext with ClaimMarker in place of
	// citation-needed templates.
	Text string
}

// ClaimKind says which side of the citation-needed marker a claim was
// harvested from.
type ClaimKind string

const (
	// ClaimBefore marks a claim taken from the text preceding the marker.
	// This is the common case: the template follows the statement it tags.
	ClaimBefore ClaimKind = "B"

	// ClaimFollowing marks a claim whose substance follows the marker,
	// detected by a ':' just before it (a quote, list or example).
	ClaimFollowing ClaimKind = "F"
)

// ExtractedClaim is a claim harvested from a cleaned article, carrying
// the context the query builder needs.
type ExtractedClaim struct {
	// Title is the owning article's title.
	Title string

	// Text is the claim text.
	Text string

	// Kind records which extraction rule produced the claim.
	Kind ClaimKind

	// ArticleText is the full plaintext of the owning article, used for
	// term frequency computation.
	ArticleText string

	// Query is the keyword query built for the claim. Empty until the
	// query builder has run.
	Query string
}

// ArticleClaims groups the claims extracted from one article.
type ArticleClaims struct {
	// ID is the Wikipedia page ID.
	ID string

	// Title is the article title.
	Title string

	// Claims are the extracted claims in document order.
	Claims []ExtractedClaim
}

// WebResult is a single hit returned by a web search provider.
type WebResult struct {
	// URL is the result URL.
	URL string

	// Title is the page title as reported by the provider.
	Title string

	// Snippet is the provider's result snippet.
	Snippet string
}
