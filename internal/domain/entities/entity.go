// Package entities contains core domain data structures.
package entities

import "strings"

// CanonicalKey is the normalized form of a display name used for matching.
// It is never shown to users; the original display name is kept separately.
type CanonicalKey string

// sanitizer drops the characters that do not take part in name identity.
var sanitizer = strings.NewReplacer(" ", "", "'", "", ":", "", "-", "")

// Sanitize converts a display name into its canonical key by lower-casing it
// and removing spaces, apostrophes, colons and hyphens.
// "Nature's Prophet", "natures prophet" and "Natures-Prophet" share a key.
func Sanitize(rawName string) CanonicalKey {
	return CanonicalKey(sanitizer.Replace(strings.ToLower(rawName)))
}

// String returns the key as a plain string.
func (k CanonicalKey) String() string {
	return string(k)
}
