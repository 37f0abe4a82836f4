package services

import (
	"sort"

	"github.com/ersonp/patchnotes/internal/domain/entities"
)

// OrderChanged sorts display names ordinally and keeps one name per canonical
// key. Sorting first makes the surviving spelling deterministic: the
// lexicographically smallest variant of each key wins.
func OrderChanged(names []string) []string {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)

	out := make([]string, 0, len(sorted))
	seen := make(map[entities.CanonicalKey]struct{}, len(sorted))
	for _, name := range sorted {
		key := entities.Sanitize(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}
	return out
}

// BuildRecord orders the touched entity names of a parse and wraps the result
// in an immutable PatchRecord.
func BuildRecord(meta entities.PatchMeta, parsed entities.ParseResult) *entities.PatchRecord {
	return entities.NewPatchRecord(
		meta,
		OrderChanged(parsed.TouchedHeroes),
		OrderChanged(parsed.TouchedItems),
		parsed.ChangesByKey,
		parsed.GeneralChanges,
	)
}
