package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrCatalogUnavailable means no catalog snapshot exists and no remote load
	// succeeded. Nothing can be classified without a catalog.
	ErrCatalogUnavailable = errors.New("entity catalog unavailable")

	// ErrDocumentSectionMissing means the date or content section of a post
	// could not be located. The document is unusable.
	ErrDocumentSectionMissing = errors.New("document section missing")

	// ErrMalformedDocument means the title/changelog separator was not found.
	// It matches ErrDocumentSectionMissing under errors.Is.
	ErrMalformedDocument = fmt.Errorf("%w: title separator not found", ErrDocumentSectionMissing)

	// ErrRemoteFetchFailed wraps failures talking to a remote source.
	ErrRemoteFetchFailed = errors.New("remote fetch failed")

	// ErrUnknownEntity is returned when querying changes for a name that was
	// never recorded.
	ErrUnknownEntity = errors.New("unknown entity")
)
