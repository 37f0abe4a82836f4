package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ersonp/patchnotes/internal/domain/entities"
)

// exportDateLayout is the date format of the JSON mirror.
const exportDateLayout = "02-01-2006"

// PatchJSON is the JSON mirror of a patch record. Change maps are keyed by
// display name.
type PatchJSON struct {
	URL            string              `json:"url"`
	ID             string              `json:"id"`
	Date           string              `json:"date"`
	HeroesChanged  []string            `json:"heroes_changed"`
	ItemsChanged   []string            `json:"items_changed"`
	HeroChanges    map[string][]string `json:"hero_changes"`
	ItemChanges    map[string][]string `json:"item_changes"`
	GeneralChanges []string            `json:"general_changes"`
}

// NewPatchJSON builds the JSON mirror of record.
func NewPatchJSON(record *entities.PatchRecord) PatchJSON {
	return PatchJSON{
		URL:            record.URL(),
		ID:             record.ReleaseID(),
		Date:           record.ReleaseDate().Format(exportDateLayout),
		HeroesChanged:  record.HeroesChanged(),
		ItemsChanged:   record.ItemsChanged(),
		HeroChanges:    changeMap(record.HeroEntries()),
		ItemChanges:    changeMap(record.ItemEntries()),
		GeneralChanges: record.GeneralChanges(),
	}
}

func changeMap(entries []entities.ChangedEntity) map[string][]string {
	out := make(map[string][]string, len(entries))
	for _, e := range entries {
		out[e.Name] = e.Changes
	}
	return out
}

// JSONExporter implements ports.Exporter.
type JSONExporter struct{}

// Export writes record as indented JSON.
func (JSONExporter) Export(w io.Writer, record *entities.PatchRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(NewPatchJSON(record)); err != nil {
		return fmt.Errorf("encoding patch json: %w", err)
	}
	return nil
}
