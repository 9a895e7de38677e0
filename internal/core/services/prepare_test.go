package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wikifinder/internal/core/domain"
)

// failingCorpus reports an error after emitting its articles.
type failingCorpus struct {
	mockCorpus
	streamErr error
}

func (c *failingCorpus) Articles(ctx context.Context) (<-chan domain.CorpusArticle, <-chan error) {
	out := make(chan domain.CorpusArticle)
	errs := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errs)
		for _, a := range c.articles {
			select {
			case <-ctx.Done():
				return
			case out <- a:
			}
		}
		errs <- c.streamErr
	}()
	return out, errs
}

func TestPrepareBuildsDictionary(t *testing.T) {
	corpus := &mockCorpus{articles: []domain.CorpusArticle{
		{ID: "1", Title: "One", Text: "the sky is blue the sky"},
		{ID: "2", Title: "Two", Text: "the grass is green"},
	}}
	dict := &mockDictionaryStore{tokens: 7}

	stats, err := NewPreparer(corpus, dict).Prepare(context.Background())
	require.NoError(t, err)

	assert.True(t, dict.resetDone)
	assert.Equal(t, 2, stats.Articles)
	assert.Equal(t, 7, stats.Tokens)

	// Each article contributes its distinct tokens, once each.
	require.Len(t, dict.added, 2)
	assert.Equal(t, []string{"the", "sky", "is", "blue"}, dict.added[0])
	assert.Equal(t, []string{"the", "grass", "is", "green"}, dict.added[1])
}

func TestPrepareCorpusError(t *testing.T) {
	streamErr := errors.New("truncated dump")
	corpus := &failingCorpus{
		mockCorpus: mockCorpus{articles: []domain.CorpusArticle{
			{ID: "1", Title: "One", Text: "alpha beta"},
		}},
		streamErr: streamErr,
	}

	_, err := NewPreparer(corpus, &mockDictionaryStore{}).Prepare(context.Background())
	assert.ErrorIs(t, err, streamErr)
}

func TestPrepareCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	corpus := &mockCorpus{articles: []domain.CorpusArticle{
		{ID: "1", Title: "One", Text: "alpha beta"},
	}}

	_, err := NewPreparer(corpus, &mockDictionaryStore{}).Prepare(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
