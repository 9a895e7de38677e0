// Package domain defines the core business entities for WikiFinder.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Report: The full result of a finder run, bound to the HTML report
//   - Article, Claim, SourceMatch: The report's nesting levels
//   - CorpusArticle: A cleaned article streamed from a Wikipedia dump
//   - ExtractedClaim, ArticleClaims: Claims harvested from cleaned articles
//   - WebResult: A hit from a web search provider
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
