package wikidump

import (
	"html"
	"regexp"
	"strings"

	"github.com/custodia-labs/wikifinder/internal/core/domain"
)

// cleanupPasses bounds the markup-removal loop. Wiki markup nests, so
// the cleanup regexes run repeatedly, innermost expressions first,
// until a pass changes nothing.
const cleanupPasses = 3

var (
	// Trailing interlanguage link block at the end of an article.
	reLanguageLinks = regexp.MustCompile(`(\n\[\[[a-z][a-z][\w-]*:[^:\]]+\]\])+$`)

	// File and image links, dropped whole.
	reFileLinks = regexp.MustCompile(`\[\[([fF]ile:|[iI]mage)[^]]*(\]\])`)

	reComments   = regexp.MustCompile(`(?s)<!--.*?-->`)
	reFootnotes  = regexp.MustCompile(`(?s)<ref([> ].*?)(</ref>|/>)`)
	reNowiki     = regexp.MustCompile(`(?s)<nowiki([> ].*?)(</nowiki>|/>)`)
	reMath       = regexp.MustCompile(`(?s)<math([> ].*?)(</math>|/>)`)
	reTags       = regexp.MustCompile(`(?s)<(.*?)>`)
	reCategories = regexp.MustCompile(`\[\[Category:[^][]*\]\]`)

	// External links: drop the URL, keep the description.
	reExternalLinks = regexp.MustCompile(`\[(\w+)://(.*?)(( (.*?))|())\]`)

	// Piped internal links: keep the label only.
	rePipedLinks = regexp.MustCompile(`(?s)\[([^][]*)\|([^][]*)\]`)

	reNewlinesOnly = regexp.MustCompile(`^\n+$`)
)

// cleaner reduces wikitext to plaintext, substituting domain.ClaimMarker
// for citation-needed templates.
type cleaner struct {
	citation  map[string]bool
	quote     string
	textParam string
}

func newCleaner(opts Options) *cleaner {
	citation := make(map[string]bool, len(opts.CitationTemplates))
	for _, name := range opts.CitationTemplates {
		citation[strings.ToLower(name)] = true
	}
	return &cleaner{
		citation:  citation,
		quote:     strings.ToLower(opts.QuoteTemplate),
		textParam: strings.ToLower(opts.QuoteTextParam),
	}
}

// Clean converts one article's wikitext to plaintext.
func (c *cleaner) Clean(text string) string {
	text = html.UnescapeString(text)
	text = reLanguageLinks.ReplaceAllString(text, "")
	text = c.replaceTemplates(text)
	text = reFileLinks.ReplaceAllString(text, "")

	for i := 0; i < cleanupPasses; i++ {
		old := text
		text = reComments.ReplaceAllString(text, "")
		text = reFootnotes.ReplaceAllString(text, "")
		text = reNowiki.ReplaceAllString(text, "")
		text = reMath.ReplaceAllString(text, "")
		text = reTags.ReplaceAllString(text, "")
		text = reCategories.ReplaceAllString(text, "")
		text = reExternalLinks.ReplaceAllString(text, "${3}")
		text = rePipedLinks.ReplaceAllString(text, "${2}")
		text = stripTableMarkup(text)
		text = strings.ReplaceAll(text, "[]", "")
		if text == old {
			break
		}
	}

	// Promote remaining markup to plain text so the tokenizer sees
	// "[[socialist]]s" as a single word.
	text = strings.ReplaceAll(text, "[", "")
	text = strings.ReplaceAll(text, "]", "")
	return text
}

// replaceTemplates removes {{...}} templates, which nest and so cannot
// be matched by a regular expression. Citation-needed templates become
// domain.ClaimMarker; quote templates keep their text.
func (c *cleaner) replaceTemplates(s string) string {
	var parts []string
	i, last := 0, 0
	for i < len(s) {
		if !(s[i] == '{' && i+1 < len(s) && s[i+1] == '{') {
			i++
			continue
		}

		depth := 0
		j := i
		for ; j < len(s); j++ {
			switch s[j] {
			case '{':
				depth++
			case '}':
				depth--
			}
			if depth == 0 && s[j] == '}' {
				break
			}
		}
		if j >= len(s) {
			// Unbalanced braces; keep the tail untouched.
			break
		}

		parts = append(parts, s[last:i])
		template := s[i : j+1]
		switch {
		case c.citation[templateName(template)]:
			parts = append(parts, domain.ClaimMarker)
		case c.quote != "" && templateName(template) == c.quote:
			// Drop blank segments so the quote attaches to the text
			// before it.
			for len(parts) > 0 && reNewlinesOnly.MatchString(parts[len(parts)-1]) {
				parts = parts[:len(parts)-1]
			}
			parts = append(parts, "\n", c.quoteText(template))
		}
		i = j + 1
		last = i
	}
	parts = append(parts, s[last:])
	return strings.Join(parts, "")
}

// templateName extracts the lowercase template name from "{{Name|...}}".
func templateName(template string) string {
	name := strings.SplitN(strings.ToLower(template), "|", 2)[0]
	name = strings.ReplaceAll(name, "{", "")
	name = strings.ReplaceAll(name, "}", "")
	return strings.TrimSpace(name)
}

// quoteText pulls the text parameter out of a quote template. Without a
// named text parameter everything after the template name is kept, so
// some metadata may slip through.
func (c *cleaner) quoteText(template string) string {
	parts := strings.Split(template, "|")

	param := c.textParam + "="
	for _, part := range parts {
		lower := strings.ToLower(part)
		if idx := strings.Index(lower, param); idx >= 0 {
			value := strings.ReplaceAll(part[idx+len(param):], "}", "")
			return strings.TrimSpace(value)
		}
	}

	if len(parts) < 2 {
		return ""
	}
	rest := strings.Join(parts[1:], "")
	rest = strings.ReplaceAll(rest, "}", "")
	return strings.TrimSpace(rest)
}

// stripTableMarkup drops wiki table formatting, leaving cell content
// on its own lines.
func stripTableMarkup(text string) string {
	// Put each table cell on a separate line.
	text = strings.ReplaceAll(text, "||", "\n|")

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "{|"), strings.HasPrefix(line, "|}"),
			strings.HasPrefix(line, "|-"):
			continue
		case strings.HasPrefix(line, "|"), strings.HasPrefix(line, "!"):
			// Keep only the cell content after any formatting prefix.
			if idx := strings.LastIndex(line, "|"); idx >= 0 {
				line = line[idx+1:]
			}
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
