package parsers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// JSONParser reads a post stored as {"url", "date", "contents"}.
type JSONParser struct{}

// Parse reads JSON from the reader and returns the post.
func (p *JSONParser) Parse(r io.Reader) (*RawPost, error) {
	var post RawPost

	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&post); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	if post.Contents == "" {
		return nil, errors.New("parsing JSON: contents is required")
	}

	return &post, nil
}
