package domain

import "fmt"

// Report is the root object handed to the report renderer.
// It is assembled once by the finder pipeline and consumed exactly once
// to produce a single HTML document. The renderer never mutates it.
type Report struct {
	// RunID identifies the finder run that produced this report.
	RunID string `json:"run_id,omitempty"`

	// BaseURL is the base Wikipedia URL used to build links back to the
	// original articles, e.g. "https://en.wikipedia.org".
	BaseURL string `json:"base_url"`

	// Articles are rendered in order. Insertion order is display order.
	Articles []Article `json:"articles"`
}

// Article wraps everything found for a single Wikipedia article.
type Article struct {
	// ID is the original Wikipedia page ID. It doubles as the toggle key
	// in the rendered report, so it must be unique within a report.
	// Uniqueness is the producer's responsibility.
	ID string `json:"article_id"`

	// Title is the article title, used as the toggle label.
	Title string `json:"article_title"`

	// Claims holds the unsubstantiated claims found in the article.
	// May be empty; an article with no claims renders an empty panel.
	Claims []Claim `json:"claims"`
}

// ClaimKey identifies a claim within a report. Toggle keys in the rendered
// output are derived from it, so the pair must be unique per report.
type ClaimKey struct {
	// ArticleID is the ID of the owning article.
	ArticleID string `json:"article_id"`

	// Ordinal is the zero-based position of the claim within the article.
	Ordinal int `json:"ordinal"`
}

// String returns the display form used as a DOM toggle key.
func (k ClaimKey) String() string {
	return fmt.Sprintf("%s-%d", k.ArticleID, k.Ordinal)
}

// Claim wraps a single claim of an article together with its candidate
// sources.
type Claim struct {
	// Key uniquely identifies the claim within the report.
	Key ClaimKey `json:"key"`

	// Text is the text of the claim as extracted from the article.
	Text string `json:"claim_text"`

	// GoogleLink is a prebuilt Google search URL for the claim's keyword
	// query, for reviewers who want to dig further by hand.
	GoogleLink string `json:"google_link"`

	// Sites are the candidate source pages, in the order they were found.
	// May be empty.
	Sites []SourceMatch `json:"valid_sites"`
}

// SourceMatch is a web page judged to corroborate a claim.
//
// The wire contract with the report template treats it as the positional
// 4-tuple (url, title, snippet, matched text); Tuple preserves that order.
type SourceMatch struct {
	// URL is the final URL of the source page (after redirects).
	URL string `json:"url"`

	// Title is the page title as reported by the search engine.
	Title string `json:"title"`

	// Snippet is the search engine result snippet.
	Snippet string `json:"snippet"`

	// MatchedText is the paragraph of the page judged most similar to
	// the claim.
	MatchedText string `json:"matched_text"`
}

// Tuple returns the positional (url, title, snippet, matched text) form.
func (m SourceMatch) Tuple() [4]string {
	return [4]string{m.URL, m.Title, m.Snippet, m.MatchedText}
}

// Citation returns the wiki-markup citation fragment for the source.
//
// The format must stay bit-exact for downstream wiki-editing workflows,
// including the single space before the title:
//
//	<ref>{{cite web|url=URL|title= TITLE}}</ref>
func (m SourceMatch) Citation() string {
	return fmt.Sprintf("<ref>{{cite web|url=%s|title= %s}}</ref>", m.URL, m.Title)
}

// Validate checks that every required field of the report is present.
// It returns the first MissingFieldError found, walking articles, claims
// and sources in order. A nil Articles slice is valid and renders as an
// empty report shell.
func (r *Report) Validate() error {
	if r.BaseURL == "" {
		return &MissingFieldError{Record: "Report", Field: "base_url"}
	}
	for i := range r.Articles {
		if err := r.Articles[i].validate(); err != nil {
			return err
		}
	}
	return nil
}

func (a *Article) validate() error {
	if a.ID == "" {
		return &MissingFieldError{Record: "Article", Field: "article_id"}
	}
	if a.Title == "" {
		return &MissingFieldError{Record: "Article", Field: "article_title"}
	}
	for i := range a.Claims {
		if err := a.Claims[i].validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Claim) validate() error {
	if c.Text == "" {
		return &MissingFieldError{Record: "Claim", Field: "claim_text"}
	}
	if c.GoogleLink == "" {
		return &MissingFieldError{Record: "Claim", Field: "google_link"}
	}
	for i := range c.Sites {
		if err := c.Sites[i].validate(); err != nil {
			return err
		}
	}
	return nil
}

func (m *SourceMatch) validate() error {
	if m.URL == "" {
		return &MissingFieldError{Record: "SourceMatch", Field: "url"}
	}
	if m.Title == "" {
		return &MissingFieldError{Record: "SourceMatch", Field: "title"}
	}
	return nil
}
