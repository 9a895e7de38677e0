package services

import "math"

// maxMatchedTextLength caps the matched paragraph carried into the
// report, so a single giant paragraph does not dominate the page.
const maxMatchedTextLength = 1000

// bagOfWords counts token occurrences.
func bagOfWords(tokens []string) map[string]float64 {
	bow := make(map[string]float64, len(tokens))
	for _, t := range tokens {
		bow[t]++
	}
	return bow
}

// Cosine returns the cosine similarity of two bags of words, in [0, 1].
// An empty bag on either side yields 0.
func Cosine(a, b map[string]float64) float64 {
	var dot, normA, normB float64
	for t, va := range a {
		normA += va * va
		if vb, ok := b[t]; ok {
			dot += va * vb
		}
	}
	for _, vb := range b {
		normB += vb * vb
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// BestParagraph returns the paragraph most similar to the claim text and
// its similarity score. The returned paragraph is truncated to
// maxMatchedTextLength characters.
func BestParagraph(claimText string, paragraphs []string) (string, float64) {
	claimBow := bagOfWords(Tokenize(claimText))

	best := ""
	bestScore := 0.0
	for _, p := range paragraphs {
		score := Cosine(bagOfWords(Tokenize(p)), claimBow)
		if score > bestScore {
			bestScore = score
			best = p
		}
	}

	if runes := []rune(best); len(runes) > maxMatchedTextLength {
		best = string(runes[:maxMatchedTextLength])
	}
	return best, bestScore
}
