// Package web fetches patch posts and extracts their date and content.
package web

import (
	"context"
	"fmt"

	"github.com/ersonp/patchnotes/internal/infrastructure/httpclient"
)

// Fetcher implements ports.DocumentFetcher over HTTP.
type Fetcher struct {
	http *httpclient.Client
}

// NewFetcher creates a Fetcher that shares the given client.
func NewFetcher(http *httpclient.Client) *Fetcher {
	return &Fetcher{http: http}
}

// Fetch downloads the post at postURL.
func (f *Fetcher) Fetch(ctx context.Context, postURL string) ([]byte, error) {
	body, err := f.http.Get(ctx, postURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", postURL, err)
	}
	return body, nil
}
