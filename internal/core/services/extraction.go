package services

import (
	"strings"

	"github.com/custodia-labs/wikifinder/internal/core/domain"
)

// minClaimLength is the shortest fragment worth treating as a claim.
// Shorter fragments carry too little semantic information to search for.
const minClaimLength = 15

// ExtractClaims harvests citation-needed claims from a cleaned article.
//
// Paragraphs in cleaned wikitext are newline-separated. Within a
// paragraph, the text is split on domain.ClaimMarker and each fragment
// preceding a marker becomes a claim candidate:
//
//   - A ':' within the last four characters means the citation relates to
//     what FOLLOWS the marker (a quote, list or the next paragraph); only
//     the last sentence before the ':' is kept and the following material
//     is appended (kind F).
//   - Otherwise the citation relates to the text BEFORE it (kind B). Up
//     to three consecutive claims in the same paragraph are joined, as
//     they are likely semantically connected: the second claim carries
//     the first appended, the third carries the first and second.
func ExtractClaims(article domain.CorpusArticle) domain.ArticleClaims {
	result := domain.ArticleClaims{
		ID:    article.ID,
		Title: article.Title,
	}

	lines := strings.Split(article.Text, "\n")

	for lineNo, line := range lines {
		if !strings.Contains(line, domain.ClaimMarker) {
			continue
		}

		parts := strings.Split(line, domain.ClaimMarker)

		for claimNo := 0; claimNo < len(parts)-1; claimNo++ {
			claim := parts[claimNo]
			if len([]rune(claim)) < minClaimLength {
				continue
			}

			var kind domain.ClaimKind
			if hasTrailingColon(claim) {
				kind = domain.ClaimFollowing
				claim = followingClaim(claim, parts, claimNo, lines, lineNo)
			} else {
				kind = domain.ClaimBefore
				claim = joinPreceding(parts, claimNo)
			}

			result.Claims = append(result.Claims, domain.ExtractedClaim{
				Title:       article.Title,
				Text:        claim,
				Kind:        kind,
				ArticleText: article.Text,
			})
		}
	}

	return result
}

// hasTrailingColon reports whether a ':' appears in the last four
// characters of the fragment, indicating the citation relates to what
// follows it.
func hasTrailingColon(claim string) bool {
	runes := []rune(claim)
	tail := runes
	if len(runes) > 4 {
		tail = runes[len(runes)-4:]
	}
	return strings.ContainsRune(string(tail), ':')
}

// followingClaim assembles a kind-F claim: the last sentence before the
// marker plus the quote, list or paragraph that follows it.
func followingClaim(claim string, parts []string, claimNo int, lines []string, lineNo int) string {
	sents := SplitSentences(claim)
	if len(sents) > 0 {
		claim = sents[len(sents)-1]
	}

	// A large following fragment is probably the quote or example itself.
	if len([]rune(parts[claimNo+1])) > 5 {
		return claim + parts[claimNo+1]
	}

	// Small fragment: the ':' relates to a list or the next paragraph.
	if lineNo+1 < len(lines) && strings.Contains(lines[lineNo+1], "*") {
		for i := lineNo + 1; i < len(lines) && strings.Contains(lines[i], "*"); i++ {
			claim += lines[i]
		}
		return claim
	}
	if lineNo+1 < len(lines) {
		return claim + " " + lines[lineNo+1]
	}
	return claim
}

// joinPreceding assembles a kind-B claim from up to the three preceding
// marker-delimited fragments of the paragraph.
func joinPreceding(parts []string, claimNo int) string {
	var b strings.Builder
	for i := claimNo - 2; i <= claimNo; i++ {
		if i >= 0 {
			b.WriteString(parts[i])
		}
	}
	return b.String()
}
