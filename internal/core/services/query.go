package services

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"sort"
	"strings"

	"github.com/custodia-labs/wikifinder/internal/core/domain"
	"github.com/custodia-labs/wikifinder/internal/core/ports/driven"
	"github.com/custodia-labs/wikifinder/internal/logger"
)

// Keyword selection limits. Position in the query affects search engine
// results, so keywords keep their order of appearance in the claim and
// the article title is prepended.
const (
	// maxPrequeryKeywords caps the candidate keyword set.
	maxPrequeryKeywords = 10

	// maxQueryKeywords is the hard cap on claim keywords; when exceeded
	// the query is cut back to maxTrimmedKeywords.
	maxQueryKeywords   = 8
	maxTrimmedKeywords = 7

	// sentenceDistanceCoefficient decays token weight with the distance
	// of its sentence from the citation-needed marker.
	sentenceDistanceCoefficient = 0.6

	// introTokenWeight is given to tokens from the opening sentence of a
	// kind-F claim (an introduction to a quote or list).
	introTokenWeight = 0.7
)

// QueryBuilder turns extracted claims into keyword search queries using
// TF-IDF over the prepared term dictionary.
type QueryBuilder struct {
	dict driven.DictionaryStore
}

// NewQueryBuilder creates a query builder backed by the dictionary store.
func NewQueryBuilder(dict driven.DictionaryStore) *QueryBuilder {
	return &QueryBuilder{dict: dict}
}

// Build computes the keyword query for a claim.
//
// Term frequencies are weighted by sentence distance from the marker
// (1, 0.36, 0.216 for the three closest sentences), damped with
// log(tf+14)/log(15) so article length has limited influence, multiplied
// by IDF log2(N/df) from the dictionary, and normalised. Keywords are
// admitted in decreasing TF-IDF order down to a percentile cutoff, kept
// in claim order, and the title tokens are prepended.
func (b *QueryBuilder) Build(ctx context.Context, claim *domain.ExtractedClaim) (string, error) {
	articleCount, err := b.dict.ArticleCount(ctx)
	if err != nil {
		return "", fmt.Errorf("article count: %w", err)
	}
	if articleCount == 0 {
		return "", domain.ErrDictionaryUnavailable
	}

	sentences := SplitSentences(claim.Text)
	if len(sentences) == 0 {
		return joinKeywords(prependTitle(nil, claim.Title)), nil
	}

	tokens, tfs := tokensWithTFs(sentences, claim.ArticleText, claim.Kind)

	dfs, err := b.dict.DocumentFrequencies(ctx, tokens)
	if err != nil {
		return "", fmt.Errorf("document frequencies: %w", err)
	}

	tfidfs := make([]float64, len(tokens))
	for x, token := range tokens {
		idf := 0.0
		if df := dfs[token]; df > 0 {
			idf = math.Log2(float64(articleCount) / float64(df))
		}
		tfidfs[x] = tfs[x] * idf
	}
	normalize(tfidfs)

	keywords := selectKeywords(tokens, tfidfs)
	logger.Debug("Selected %d keywords for claim %q...", len(keywords), truncateForLog(claim.Text))

	return joinKeywords(prependTitle(keywords, claim.Title)), nil
}

// tokensWithTFs collects the claim's tokens with their weighted, damped
// and normalised term frequencies over the whole article text.
func tokensWithTFs(sentences []string, articleText string, kind domain.ClaimKind) ([]string, []float64) {
	var tokens []string
	var weights []float64
	index := make(map[string]int)

	// Weight decreases the further the sentence is from the marker, as
	// the semantic weight probably decreases with distance as well.
	for i := 1; i < 4 && i <= len(sentences); i++ {
		for _, token := range Tokenize(sentences[len(sentences)-i]) {
			if x, ok := index[token]; ok {
				if i != 1 {
					weights[x] += math.Pow(sentenceDistanceCoefficient, float64(i))
				}
				continue
			}
			index[token] = len(tokens)
			tokens = append(tokens, token)
			if i == 1 {
				weights = append(weights, 1)
			} else {
				weights = append(weights, math.Pow(sentenceDistanceCoefficient, float64(i)))
			}
		}
		if sentences[len(sentences)-i] == sentences[0] {
			break
		}
	}

	// A kind-F claim's opening sentence introduces the quote or list and
	// still carries useful terms.
	if kind == domain.ClaimFollowing && len(sentences) > 3 {
		for _, token := range Tokenize(sentences[0]) {
			if _, ok := index[token]; !ok {
				index[token] = len(tokens)
				tokens = append(tokens, token)
				weights = append(weights, introTokenWeight)
			}
		}
	}

	tfs := make([]float64, len(tokens))
	for _, word := range Tokenize(articleText) {
		if x, ok := index[word]; ok {
			tfs[x]++
		}
	}

	for x := range tfs {
		tfs[x] = math.Log(tfs[x]+14) / math.Log(15) * weights[x]
	}
	normalize(tfs)

	return tokens, tfs
}

// selectKeywords admits tokens in decreasing TF-IDF order down to the
// percentile cutoff, then returns them in claim order.
func selectKeywords(tokens []string, tfidfs []float64) []string {
	type scored struct {
		token string
		value float64
	}
	ranked := make([]scored, len(tokens))
	for x, token := range tokens {
		ranked[x] = scored{token: token, value: tfidfs[x]}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].value > ranked[j].value })

	cutoff := queryCutoff(tfidfs)
	threshold := percentile(tfidfs, float64(cutoff))

	prequery := make(map[string]bool)
	for _, s := range ranked {
		if s.value < threshold {
			break
		}
		prequery[s.token] = true
		if len(prequery) >= maxPrequeryKeywords {
			break
		}
	}

	var query []string
	for _, token := range tokens {
		if prequery[token] {
			query = append(query, token)
		}
	}
	if len(query) > maxQueryKeywords {
		query = query[:maxTrimmedKeywords]
	}
	return query
}

// queryCutoff returns the TF-IDF percentile at which to stop adding
// keywords: the decile where the ranked values decrease most rapidly.
func queryCutoff(tfidfs []float64) int {
	position := 0
	curMax := 0.0

	for percValue := 90; percValue >= 0; percValue -= 10 {
		diff := percentile(tfidfs, float64(percValue+10)) - percentile(tfidfs, float64(percValue))
		if diff > curMax {
			position = percValue
			curMax = diff
		}
	}

	return position
}

// percentile computes the p-th percentile with linear interpolation
// between closest ranks.
func percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// normalize scales values in place so they sum to 1. A zero vector is
// left unchanged.
func normalize(values []float64) {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	if sum == 0 {
		return
	}
	for x := range values {
		values[x] /= sum
	}
}

// prependTitle inserts the title's tokens at the front of the query,
// preserving title order, skipping tokens already present. Position has
// an effect on search results, so the title leads.
func prependTitle(keywords []string, title string) []string {
	titleTokens := Tokenize(title)
	for i := len(titleTokens) - 1; i >= 0; i-- {
		token := titleTokens[i]
		if !containsToken(keywords, token) {
			keywords = append([]string{token}, keywords...)
		}
	}
	return keywords
}

func containsToken(tokens []string, token string) bool {
	for _, t := range tokens {
		if t == token {
			return true
		}
	}
	return false
}

func joinKeywords(keywords []string) string {
	return strings.Join(keywords, " ")
}

// GoogleLink builds a Google search URL for the query with the skip
// sites excluded, for reviewers who want to dig further by hand.
func GoogleLink(keywords string, skipSites []string) string {
	query := keywords
	for _, site := range skipSites {
		query += " -site:" + site
	}
	return "https://google.com/search?q=" + url.QueryEscape(query)
}

// truncateForLog shortens claim text for log lines.
func truncateForLog(text string) string {
	const max = 60
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
