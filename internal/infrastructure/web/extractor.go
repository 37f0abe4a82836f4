package web

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ersonp/patchnotes/internal/domain/entities"
	"github.com/ersonp/patchnotes/internal/domain/ports"
)

// layout names the selectors holding a post's date and body on one site.
type layout struct {
	date    string
	content string
}

var layouts = map[string]layout{
	"www.dota2.com": {date: ".entry-meta", content: ".entry-content"},
	"dota2.com":     {date: ".entry-meta", content: ".entry-content"},
	"store.steampowered.com": {
		date:    ".headline .date",
		content: ".body",
	},
}

// Extractor implements ports.SectionExtractor with goquery.
type Extractor struct{}

// NewExtractor creates an Extractor for the supported sites.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Supports reports whether host has a known layout.
func (e *Extractor) Supports(host string) bool {
	_, ok := layouts[strings.ToLower(host)]
	return ok
}

// Extract returns the plain-text date and content of the post. Unknown hosts
// and missing sections yield entities.ErrDocumentSectionMissing.
func (e *Extractor) Extract(postURL *url.URL, document []byte) (ports.PostSections, error) {
	if postURL == nil {
		return ports.PostSections{}, fmt.Errorf("%w: no post url", entities.ErrDocumentSectionMissing)
	}

	host := strings.ToLower(postURL.Hostname())
	l, ok := layouts[host]
	if !ok {
		return ports.PostSections{}, fmt.Errorf("%w: unsupported site %q", entities.ErrDocumentSectionMissing, host)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(document))
	if err != nil {
		return ports.PostSections{}, fmt.Errorf("parsing html: %w", err)
	}

	date, err := sectionText(doc, l.date)
	if err != nil {
		return ports.PostSections{}, err
	}
	contents, err := sectionText(doc, l.content)
	if err != nil {
		return ports.PostSections{}, err
	}

	return ports.PostSections{RawDate: date, RawContents: contents}, nil
}

func sectionText(doc *goquery.Document, selector string) (string, error) {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", fmt.Errorf("%w: %s", entities.ErrDocumentSectionMissing, selector)
	}
	return strings.TrimSpace(sel.Text()), nil
}
