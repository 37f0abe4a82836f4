package ports

import (
	"context"
	"net/url"
)

// DocumentFetcher retrieves the raw bytes of a patch post.
type DocumentFetcher interface {
	Fetch(ctx context.Context, postURL string) ([]byte, error)
}

// PostSections is the plain text extracted from a patch post.
type PostSections struct {
	RawDate     string
	RawContents string
}

// SectionExtractor locates the date and content sections of a post.
// It returns entities.ErrDocumentSectionMissing when either is absent.
type SectionExtractor interface {
	Extract(postURL *url.URL, document []byte) (PostSections, error)
}
