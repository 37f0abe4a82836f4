package main

// Default limits for CLI commands.
const (
	DefaultHistoryLimit = 20
)

// Valid input formats for the parse command.
var validFormats = []string{"auto", "text", "json", "html"}

// Valid catalog categories for catalog show.
var validCategories = []string{"all", "heroes", "items"}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
