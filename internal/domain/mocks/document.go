package mocks

import (
	"context"
	"net/url"

	"github.com/ersonp/patchnotes/internal/domain/ports"
)

// DocumentFetcher is a mock implementation of ports.DocumentFetcher.
// Documents maps URLs to bodies; unknown URLs return Err.
type DocumentFetcher struct {
	Documents map[string][]byte
	Err       error
}

// Fetch returns the configured document for postURL.
func (m *DocumentFetcher) Fetch(_ context.Context, postURL string) ([]byte, error) {
	if doc, ok := m.Documents[postURL]; ok {
		return doc, nil
	}
	return nil, m.Err
}

// SectionExtractor is a mock implementation of ports.SectionExtractor.
// It returns the document itself as the contents.
type SectionExtractor struct {
	RawDate string
	Err     error
}

// Extract returns the configured date and the document as contents.
func (m *SectionExtractor) Extract(_ *url.URL, document []byte) (ports.PostSections, error) {
	if m.Err != nil {
		return ports.PostSections{}, m.Err
	}
	return ports.PostSections{RawDate: m.RawDate, RawContents: string(document)}, nil
}
