// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - CorpusReader: Streams articles from a Wikipedia XML dump
//   - WebSearcher: Queries a web search API for candidate sources
//   - PageFetcher: Downloads candidate pages and extracts their paragraphs
//   - DictionaryStore: Token document-frequency persistence (SQLite)
//   - ResultStore: Finder result set persistence
//   - ReportRenderer: Turns a result set into the HTML report
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - SkipListWatcher: Live reload of the skip-site list during a run.
//     Without it, the list loaded at startup is used throughout.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
