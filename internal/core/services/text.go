package services

import (
	"strings"
	"unicode"
)

// Tokenize splits text into lowercase alphabetic tokens. Digits,
// punctuation and underscores act as separators and never appear in
// tokens, so "socialist]s" and "Socialists" tokenize identically.
func Tokenize(text string) []string {
	var tokens []string
	var b strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	if b.Len() > 0 {
		tokens = append(tokens, b.String())
	}
	return tokens
}

// SplitSentences splits text into sentences on '.', with a heuristic to
// keep abbreviations and decimal-style breaks together: a part is joined
// to the previous one when the next part is a single word, starts with a
// lowercase word, or the current part ends in a short capitalised word
// (an abbreviation such as "Dr" or "U.S").
func SplitSentences(text string) []string {
	var parts []string
	for _, p := range strings.Split(text, ".") {
		if p != "" {
			parts = append(parts, p)
		}
	}

	var sentences []string
	var pending []string

	for x, part := range parts {
		pending = append(pending, part)

		if x == len(parts)-1 {
			sentences = append(sentences, strings.Join(pending, "."))
			break
		}

		next := strings.Fields(parts[x+1])

		switch {
		case len(next) < 1:
			sentences = append(sentences, strings.Join(pending, "."))
			pending = nil
		case len(next) == 1,
			strings.ToLower(next[0]) == next[0],
			endsInAbbreviation(pending[len(pending)-1]):
			// Not a sentence boundary; keep accumulating.
		default:
			sentences = append(sentences, strings.Join(pending, "."))
			pending = nil
		}
	}

	return sentences
}

// endsInAbbreviation reports whether the part's trailing word contains an
// uppercase letter and the part itself is short, which indicates an
// abbreviation rather than a sentence end.
func endsInAbbreviation(part string) bool {
	words := strings.Split(part, " ")
	last := words[len(words)-1]
	return strings.ToLower(last) != last && len([]rune(part)) < 5
}
