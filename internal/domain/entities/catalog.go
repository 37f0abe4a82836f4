package entities

// Category identifies which catalog set a key belongs to.
type Category string

const (
	// CategoryNone marks a key that is not cataloged.
	CategoryNone Category = ""
	// CategoryHero is the primary subject set (playable characters).
	CategoryHero Category = "hero"
	// CategoryItem is the secondary subject set (equippable items).
	CategoryItem Category = "item"
)

// CatalogRecord is one known entity as stored in a catalog snapshot.
// Field names follow the Steam Web API payload.
type CatalogRecord struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`           // Internal reference, e.g. "npc_dota_hero_axe"
	DisplayName string       `json:"localized_name"` // Display name, e.g. "Axe"
	Key         CanonicalKey `json:"sanitised_name"`
}

// Catalog is the set of known entity keys split into heroes and items.
// A Catalog is immutable after construction and safe to share between
// concurrent parses.
type Catalog struct {
	heroes    []CatalogRecord
	items     []CatalogRecord
	primary   map[CanonicalKey]struct{}
	secondary map[CanonicalKey]struct{}
}

// NewCatalog builds a catalog from hero and item records. Records without a
// precomputed key are keyed by sanitizing their display name.
func NewCatalog(heroes, items []CatalogRecord) *Catalog {
	c := &Catalog{
		heroes:    normalizeRecords(heroes),
		items:     normalizeRecords(items),
		primary:   make(map[CanonicalKey]struct{}, len(heroes)),
		secondary: make(map[CanonicalKey]struct{}, len(items)),
	}
	for _, r := range c.heroes {
		c.primary[r.Key] = struct{}{}
	}
	for _, r := range c.items {
		c.secondary[r.Key] = struct{}{}
	}
	return c
}

func normalizeRecords(records []CatalogRecord) []CatalogRecord {
	out := make([]CatalogRecord, len(records))
	for i, r := range records {
		if r.Key == "" {
			r.Key = Sanitize(r.DisplayName)
		}
		out[i] = r
	}
	return out
}

// Classify reports which set contains key. Heroes are checked first, so a key
// present in both sets resolves to CategoryHero.
func (c *Catalog) Classify(key CanonicalKey) Category {
	if _, ok := c.primary[key]; ok {
		return CategoryHero
	}
	if _, ok := c.secondary[key]; ok {
		return CategoryItem
	}
	return CategoryNone
}

// IsHero reports whether key is a primary subject.
func (c *Catalog) IsHero(key CanonicalKey) bool {
	_, ok := c.primary[key]
	return ok
}

// IsItem reports whether key is a secondary subject.
func (c *Catalog) IsItem(key CanonicalKey) bool {
	_, ok := c.secondary[key]
	return ok
}

// Heroes returns a copy of the hero records.
func (c *Catalog) Heroes() []CatalogRecord {
	return append([]CatalogRecord(nil), c.heroes...)
}

// Items returns a copy of the item records.
func (c *Catalog) Items() []CatalogRecord {
	return append([]CatalogRecord(nil), c.items...)
}

// Len returns the number of hero and item records.
func (c *Catalog) Len() (heroes, items int) {
	return len(c.heroes), len(c.items)
}

// Overlap returns keys present in both sets, which the upstream registry
// should never produce.
func (c *Catalog) Overlap() []CanonicalKey {
	var keys []CanonicalKey
	for _, r := range c.heroes {
		if _, ok := c.secondary[r.Key]; ok {
			keys = append(keys, r.Key)
		}
	}
	return keys
}
