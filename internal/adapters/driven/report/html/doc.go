// Package html renders a finished report as a standalone HTML document.
//
// The document is self-contained: styling and the two client-side
// behaviors (panel toggling, citation copying) are embedded, so the file
// can be opened directly in a browser with no server. The markup
// skeleton lives in template.html and is compiled into the binary.
package html
