// Package services contains the domain logic for building patch records.
package services

import (
	"strings"

	"github.com/ersonp/patchnotes/internal/domain/entities"
)

const (
	bulletMarker     = "* "
	subjectSeparator = ": "
)

// ParseChangelog splits a changelog body into bullet units and attributes
// each one to a cataloged hero, a cataloged item, or the general bucket.
//
// A unit of the form "Subject: detail" whose subject sanitizes to a catalog
// key has its trimmed detail appended under that key. Units without the
// separator are kept trimmed as general changes. Units whose subject is not
// cataloged are kept whole and untrimmed, since the colon was incidental.
// Text before the first bullet is discarded.
func ParseChangelog(rawText string, catalog *entities.Catalog) entities.ParseResult {
	result := entities.ParseResult{
		GeneralChanges: []string{},
		ChangesByKey:   make(map[entities.CanonicalKey][]string),
		TouchedHeroes:  []string{},
		TouchedItems:   []string{},
	}

	units := strings.Split(rawText, bulletMarker)
	for _, unit := range units[1:] {
		subject, detail, found := strings.Cut(unit, subjectSeparator)
		if !found {
			result.GeneralChanges = append(result.GeneralChanges, strings.TrimSpace(unit))
			continue
		}

		key := entities.Sanitize(subject)
		switch catalog.Classify(key) {
		case entities.CategoryHero:
			result.AddChange(key, strings.TrimSpace(detail))
			result.TouchedHeroes = append(result.TouchedHeroes, subject)
		case entities.CategoryItem:
			result.AddChange(key, strings.TrimSpace(detail))
			result.TouchedItems = append(result.TouchedItems, subject)
		default:
			result.GeneralChanges = append(result.GeneralChanges, unit)
		}
	}

	return result
}
