// Package parsers reads saved patch posts from local files.
package parsers

import (
	"io"
	"path/filepath"
	"strings"
)

// RawPost is a patch post read from a local file before parsing.
type RawPost struct {
	URL      string `json:"url,omitempty"`
	Date     string `json:"date,omitempty"`
	Contents string `json:"contents"`
}

// Parser defines the interface for reading posts from various formats.
type Parser interface {
	Parse(r io.Reader) (*RawPost, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "text".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "text", "txt":
		return &TextParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
// Saved HTML pages are handled by the web extractor instead.
func ForFile(filename string) Parser {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return &JSONParser{}
	case ".txt", ".text", ".md", "":
		return &TextParser{}
	default:
		return nil
	}
}

// IsHTML reports whether filename looks like a saved HTML page.
func IsHTML(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".html", ".htm":
		return true
	}
	return false
}
