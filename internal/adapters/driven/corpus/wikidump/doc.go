// Package wikidump streams articles out of a MediaWiki XML database
// dump, plain or bz2-compressed.
//
// Pages are decoded one at a time, so arbitrarily large dumps are
// processed in constant memory. Each namespace-0, non-redirect page is
// reduced from wikitext to plaintext, with citation-needed templates
// replaced by a marker the claim extractor looks for.
package wikidump
