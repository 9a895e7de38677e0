package wikidump

import (
	"compress/bzip2"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/custodia-labs/wikifinder/internal/core/domain"
	"github.com/custodia-labs/wikifinder/internal/core/ports/driven"
	"github.com/custodia-labs/wikifinder/internal/logger"
)

// Ensure Reader implements the interface.
var _ driven.CorpusReader = (*Reader)(nil)

// Options configures which templates the cleaner recognizes.
type Options struct {
	// CitationTemplates are lowercase template names treated as
	// citation-needed markers, e.g. "citation needed", "cn".
	CitationTemplates []string

	// QuoteTemplate is the lowercase name of the quote template whose
	// text should be preserved in the plaintext.
	QuoteTemplate string

	// QuoteTextParam is the name of the quote template's text parameter.
	QuoteTextParam string
}

// Reader reads a MediaWiki XML dump from disk. Files ending in .bz2
// are decompressed on the fly.
type Reader struct {
	path    string
	cleaner *cleaner
}

// NewReader creates a dump reader for the file at path.
func NewReader(path string, opts Options) (*Reader, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: dump path is empty", domain.ErrInvalidInput)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("dump file: %w", err)
	}
	return &Reader{path: path, cleaner: newCleaner(opts)}, nil
}

// open returns a fresh decoder over the dump. Each pipeline pass reads
// the dump from the start.
func (r *Reader) open() (*xml.Decoder, io.Closer, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, nil, err
	}

	var src io.Reader = f
	if strings.HasSuffix(r.path, ".bz2") {
		src = bzip2.NewReader(f)
	}
	return xml.NewDecoder(src), f, nil
}

// siteInfo is the dump header element carrying wiki metadata.
type siteInfo struct {
	Base string `xml:"base"`
}

// page is one <page> element of the dump.
type page struct {
	Title    string    `xml:"title"`
	NS       int       `xml:"ns"`
	ID       string    `xml:"id"`
	Redirect *struct{} `xml:"redirect"`
	Revision struct {
		Text string `xml:"text"`
	} `xml:"revision"`
}

// BaseURL extracts the wiki base URL from the dump's siteinfo header,
// e.g. "https://en.wikipedia.org". The siteinfo <base> value is a full
// page URL; only scheme and host are kept.
func (r *Reader) BaseURL(ctx context.Context) (string, error) {
	dec, closer, err := r.open()
	if err != nil {
		return "", err
	}
	defer closer.Close()

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: dump has no siteinfo header", domain.ErrInvalidInput)
		}
		if err != nil {
			return "", fmt.Errorf("parse dump: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local == "page" {
			// siteinfo precedes all pages; if we got here there is none.
			return "", fmt.Errorf("%w: dump has no siteinfo header", domain.ErrInvalidInput)
		}
		if start.Name.Local != "siteinfo" {
			continue
		}

		var info siteInfo
		if err := dec.DecodeElement(&info, &start); err != nil {
			return "", fmt.Errorf("parse siteinfo: %w", err)
		}
		base, err := url.Parse(info.Base)
		if err != nil || base.Host == "" {
			return "", fmt.Errorf("%w: siteinfo base %q", domain.ErrInvalidInput, info.Base)
		}
		return base.Scheme + "://" + base.Host, nil
	}
}

// Articles streams namespace-0, non-redirect articles in dump order,
// cleaned to plaintext. The articles channel is closed when the dump is
// exhausted; a fatal parse error is delivered on the errors channel
// before close.
func (r *Reader) Articles(ctx context.Context) (<-chan domain.CorpusArticle, <-chan error) {
	out := make(chan domain.CorpusArticle)
	errs := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errs)

		dec, closer, err := r.open()
		if err != nil {
			errs <- err
			return
		}
		defer closer.Close()

		skipped := 0
		for {
			if ctx.Err() != nil {
				return
			}

			tok, err := dec.Token()
			if errors.Is(err, io.EOF) {
				logger.Debug("Dump exhausted, %d pages skipped", skipped)
				return
			}
			if err != nil {
				errs <- fmt.Errorf("parse dump: %w", err)
				return
			}

			start, ok := tok.(xml.StartElement)
			if !ok || start.Name.Local != "page" {
				continue
			}

			var p page
			if err := dec.DecodeElement(&p, &start); err != nil {
				errs <- fmt.Errorf("parse page: %w", err)
				return
			}
			if p.NS != 0 || p.Redirect != nil {
				skipped++
				continue
			}

			article := domain.CorpusArticle{
				ID:    p.ID,
				Title: p.Title,
				Text:  r.cleaner.Clean(p.Revision.Text),
			}
			select {
			case <-ctx.Done():
				return
			case out <- article:
			}
		}
	}()

	return out, errs
}
