package ports

import (
	"io"

	"github.com/ersonp/patchnotes/internal/domain/entities"
)

// PageRenderer writes a patch record as a static page.
type PageRenderer interface {
	RenderPage(w io.Writer, record *entities.PatchRecord) error
}

// Exporter writes a machine-readable mirror of a patch record.
type Exporter interface {
	Export(w io.Writer, record *entities.PatchRecord) error
}
