package parsers

import (
	"fmt"
	"io"
	"strings"
)

// Header lines recognised at the top of a text post.
const (
	dateHeader = "date:"
	urlHeader  = "url:"
)

// TextParser reads a plain-text post. Optional "Date:" and "URL:" header
// lines may precede the body; everything after them is the contents.
type TextParser struct{}

// Parse reads text from the reader and returns the post.
func (p *TextParser) Parse(r io.Reader) (*RawPost, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading text: %w", err)
	}

	var post RawPost
	rest := string(data)
	for {
		line, remaining, found := strings.Cut(rest, "\n")
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)

		switch {
		case strings.HasPrefix(lower, dateHeader) && post.Date == "":
			post.Date = strings.TrimSpace(trimmed[len(dateHeader):])
		case strings.HasPrefix(lower, urlHeader) && post.URL == "":
			post.URL = strings.TrimSpace(trimmed[len(urlHeader):])
		default:
			post.Contents = rest
			return &post, nil
		}

		if !found {
			return &post, nil
		}
		rest = remaining
	}
}
