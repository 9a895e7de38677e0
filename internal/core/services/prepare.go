package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/wikifinder/internal/core/ports/driven"
	"github.com/custodia-labs/wikifinder/internal/core/ports/driving"
	"github.com/custodia-labs/wikifinder/internal/logger"
)

// progressInterval is how often dictionary build progress is logged.
const progressInterval = 1000

// Ensure Preparer implements the interface.
var _ driving.PrepareService = (*Preparer)(nil)

// Preparer builds the token document-frequency dictionary the query
// builder's IDF computation depends on.
type Preparer struct {
	corpus driven.CorpusReader
	dict   driven.DictionaryStore
}

// NewPreparer creates a prepare service.
func NewPreparer(corpus driven.CorpusReader, dict driven.DictionaryStore) *Preparer {
	return &Preparer{corpus: corpus, dict: dict}
}

// Prepare streams the corpus once and rebuilds the dictionary. Each
// article contributes its distinct tokens to the document frequencies.
func (p *Preparer) Prepare(ctx context.Context) (*driving.PrepareStats, error) {
	if err := p.dict.Reset(ctx); err != nil {
		return nil, fmt.Errorf("reset dictionary: %w", err)
	}

	logger.Section("Dictionary Build")

	processed := 0
	articles, errs := p.corpus.Articles(ctx)
	for article := range articles {
		tokens := distinct(Tokenize(article.Text))
		if err := p.dict.AddDocument(ctx, tokens); err != nil {
			return nil, fmt.Errorf("add document %s: %w", article.ID, err)
		}
		processed++
		if processed%progressInterval == 0 {
			logger.Info("Processed %d articles", processed)
		}
	}

	select {
	case err, ok := <-errs:
		if ok && err != nil {
			return nil, fmt.Errorf("corpus: %w", err)
		}
	default:
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tokenCount, err := p.dict.TokenCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("token count: %w", err)
	}

	logger.Info("Dictionary built: %d articles, %d tokens", processed, tokenCount)
	return &driving.PrepareStats{Articles: processed, Tokens: tokenCount}, nil
}

// distinct deduplicates tokens, preserving first-seen order.
func distinct(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	var out []string
	for _, t := range tokens {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}
