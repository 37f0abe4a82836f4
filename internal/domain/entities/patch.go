package entities

import (
	"fmt"
	"time"
)

// ParseResult is the raw output of a changelog parse, before ordering.
// TouchedHeroes and TouchedItems hold display names in arrival order and may
// repeat.
type ParseResult struct {
	GeneralChanges []string
	ChangesByKey   map[CanonicalKey][]string
	TouchedHeroes  []string
	TouchedItems   []string
}

// AddChange appends detail under key, creating the entry on first use.
func (p *ParseResult) AddChange(key CanonicalKey, detail string) {
	if p.ChangesByKey == nil {
		p.ChangesByKey = make(map[CanonicalKey][]string)
	}
	p.ChangesByKey[key] = append(p.ChangesByKey[key], detail)
}

// PatchMeta identifies a patch post.
type PatchMeta struct {
	ReleaseID   string    // Upper-case identifier, e.g. "7.01B"
	ReleaseDate time.Time // Best-effort; today when the post date is unreadable
	URL         string
}

// ChangedEntity pairs a display name with its changes in arrival order.
type ChangedEntity struct {
	Name    string
	Key     CanonicalKey
	Changes []string
}

// PatchRecord is the immutable result of parsing one patch post.
// All accessors return copies.
type PatchRecord struct {
	meta           PatchMeta
	heroesChanged  []string
	itemsChanged   []string
	changesByKey   map[CanonicalKey][]string
	generalChanges []string
}

// NewPatchRecord builds a record. heroesChanged and itemsChanged must already
// be sorted and de-duplicated.
func NewPatchRecord(meta PatchMeta, heroesChanged, itemsChanged []string, changesByKey map[CanonicalKey][]string, general []string) *PatchRecord {
	byKey := make(map[CanonicalKey][]string, len(changesByKey))
	for k, v := range changesByKey {
		byKey[k] = append([]string(nil), v...)
	}
	return &PatchRecord{
		meta:           meta,
		heroesChanged:  append([]string{}, heroesChanged...),
		itemsChanged:   append([]string{}, itemsChanged...),
		changesByKey:   byKey,
		generalChanges: append([]string{}, general...),
	}
}

// ReleaseID returns the upper-case patch identifier.
func (r *PatchRecord) ReleaseID() string { return r.meta.ReleaseID }

// ReleaseDate returns the release date.
func (r *PatchRecord) ReleaseDate() time.Time { return r.meta.ReleaseDate }

// URL returns the source post URL, if any.
func (r *PatchRecord) URL() string { return r.meta.URL }

// Meta returns the record's metadata.
func (r *PatchRecord) Meta() PatchMeta { return r.meta }

// HeroesChanged returns the sorted display names of changed heroes.
func (r *PatchRecord) HeroesChanged() []string {
	return append([]string{}, r.heroesChanged...)
}

// ItemsChanged returns the sorted display names of changed items.
func (r *PatchRecord) ItemsChanged() []string {
	return append([]string{}, r.itemsChanged...)
}

// GeneralChanges returns the changes not attributed to any entity.
func (r *PatchRecord) GeneralChanges() []string {
	return append([]string{}, r.generalChanges...)
}

// ChangesFor returns the changes recorded for displayName, matched by
// canonical key.
func (r *PatchRecord) ChangesFor(displayName string) ([]string, error) {
	changes, ok := r.changesByKey[Sanitize(displayName)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntity, displayName)
	}
	return append([]string(nil), changes...), nil
}

// HasGeneralChanges reports whether any general change was recorded.
func (r *PatchRecord) HasGeneralChanges() bool { return len(r.generalChanges) > 0 }

// HasHeroChanges reports whether any hero was changed.
func (r *PatchRecord) HasHeroChanges() bool { return len(r.heroesChanged) > 0 }

// HasItemChanges reports whether any item was changed.
func (r *PatchRecord) HasItemChanges() bool { return len(r.itemsChanged) > 0 }

// HeroEntries returns changed heroes with their changes, in presentation order.
func (r *PatchRecord) HeroEntries() []ChangedEntity {
	return r.entries(r.heroesChanged)
}

// ItemEntries returns changed items with their changes, in presentation order.
func (r *PatchRecord) ItemEntries() []ChangedEntity {
	return r.entries(r.itemsChanged)
}

func (r *PatchRecord) entries(names []string) []ChangedEntity {
	out := make([]ChangedEntity, 0, len(names))
	for _, name := range names {
		key := Sanitize(name)
		out = append(out, ChangedEntity{
			Name:    name,
			Key:     key,
			Changes: append([]string(nil), r.changesByKey[key]...),
		})
	}
	return out
}
