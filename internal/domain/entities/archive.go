package entities

import "time"

// ArchivedPatch is a generated patch page kept in the local archive.
type ArchivedPatch struct {
	ID          string    `json:"id"`
	ReleaseID   string    `json:"release_id"`
	ReleaseDate time.Time `json:"release_date"`
	URL         string    `json:"url"`
	OutputDir   string    `json:"output_dir"`
	Heroes      int       `json:"heroes"`
	Items       int       `json:"items"`
	General     int       `json:"general"`
	CreatedAt   time.Time `json:"created_at"`
}
