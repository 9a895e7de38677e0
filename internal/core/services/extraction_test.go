package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wikifinder/internal/core/domain"
)

func TestExtractClaimsBefore(t *testing.T) {
	article := domain.CorpusArticle{
		ID:    "A1",
		Title: "Test Article",
		Text:  "This is a claim about physics$$CNMARK$$ and more text.",
	}

	claims := ExtractClaims(article)

	require.Len(t, claims.Claims, 1)
	assert.Equal(t, "This is a claim about physics", claims.Claims[0].Text)
	assert.Equal(t, domain.ClaimBefore, claims.Claims[0].Kind)
	assert.Equal(t, "Test Article", claims.Claims[0].Title)
	assert.Equal(t, article.Text, claims.Claims[0].ArticleText)
}

func TestExtractClaimsShortFragmentSkipped(t *testing.T) {
	article := domain.CorpusArticle{
		ID:    "A1",
		Title: "Short",
		Text:  "too short$$CNMARK$$ rest of the paragraph",
	}

	claims := ExtractClaims(article)
	assert.Empty(t, claims.Claims)
}

func TestExtractClaimsJoinsConsecutive(t *testing.T) {
	// Consecutive claims in one paragraph are likely semantically
	// connected: the second claim carries the first appended.
	article := domain.CorpusArticle{
		ID:    "A1",
		Title: "Joined",
		Text:  "First claim with enough text$$CNMARK$$Second claim with enough text$$CNMARK$$ trailing",
	}

	claims := ExtractClaims(article)

	require.Len(t, claims.Claims, 2)
	assert.Equal(t, "First claim with enough text", claims.Claims[0].Text)
	assert.Equal(t,
		"First claim with enough textSecond claim with enough text",
		claims.Claims[1].Text)
}

func TestExtractClaimsFollowingQuote(t *testing.T) {
	article := domain.CorpusArticle{
		ID:    "A1",
		Title: "Quote",
		Text:  "In 1999 he said the following:$$CNMARK$$This is the quoted text",
	}

	claims := ExtractClaims(article)

	require.Len(t, claims.Claims, 1)
	assert.Equal(t, domain.ClaimFollowing, claims.Claims[0].Kind)
	assert.Equal(t,
		"In 1999 he said the following:This is the quoted text",
		claims.Claims[0].Text)
}

func TestExtractClaimsFollowingList(t *testing.T) {
	article := domain.CorpusArticle{
		ID:    "A1",
		Title: "List",
		Text:  "The notable reasons include:$$CNMARK$$\n* one reason\n* another reason\nplain paragraph",
	}

	claims := ExtractClaims(article)

	require.Len(t, claims.Claims, 1)
	assert.Equal(t, domain.ClaimFollowing, claims.Claims[0].Kind)
	assert.Equal(t,
		"The notable reasons include:* one reason* another reason",
		claims.Claims[0].Text)
}

func TestExtractClaimsNoMarker(t *testing.T) {
	article := domain.CorpusArticle{
		ID:    "A1",
		Title: "Plain",
		Text:  "Nothing to cite here.\nJust prose.",
	}

	claims := ExtractClaims(article)
	assert.Empty(t, claims.Claims)
	assert.Equal(t, "A1", claims.ID)
}
