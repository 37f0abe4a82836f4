// Package render writes patch records as a static HTML page and a JSON mirror.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/ersonp/patchnotes/internal/domain/entities"
)

// DefaultBanner is the header image used when none is configured.
const DefaultBanner = "http://cdn.dota2.com/apps/dota2/images/blogfiles/bg_five_heroes.jpg"

// StylesheetName is the file the page links to.
const StylesheetName = "patch.css"

//go:embed templates/page.html.tmpl templates/patch.css
var templatesFS embed.FS

var templateFuncs = template.FuncMap{
	"shortDate": func(t time.Time) string { return t.Format("02/01/06") },
}

// pageData is the view model passed to the page template.
type pageData struct {
	ReleaseID   string
	ReleaseDate time.Time
	URL         string
	Banner      string
	General     []string
	Items       []entities.ChangedEntity
	Heroes      []entities.ChangedEntity
}

// HTMLRenderer implements ports.PageRenderer.
type HTMLRenderer struct {
	tmpl   *template.Template
	banner string
}

// NewHTMLRenderer parses the embedded page template.
func NewHTMLRenderer() (*HTMLRenderer, error) {
	tmpl, err := template.New("page.html.tmpl").Funcs(templateFuncs).ParseFS(templatesFS, "templates/page.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	return &HTMLRenderer{tmpl: tmpl, banner: DefaultBanner}, nil
}

// RenderPage writes record as a complete HTML document. Sections without
// changes are omitted.
func (h *HTMLRenderer) RenderPage(w io.Writer, record *entities.PatchRecord) error {
	data := pageData{
		ReleaseID:   record.ReleaseID(),
		ReleaseDate: record.ReleaseDate(),
		URL:         record.URL(),
		Banner:      h.banner,
		General:     record.GeneralChanges(),
		Items:       record.ItemEntries(),
		Heroes:      record.HeroEntries(),
	}
	if err := h.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("execute page template: %w", err)
	}
	return nil
}

// WriteStylesheet writes the page stylesheet.
func WriteStylesheet(w io.Writer) error {
	data, err := templatesFS.ReadFile("templates/patch.css")
	if err != nil {
		return fmt.Errorf("read stylesheet: %w", err)
	}
	_, err = w.Write(data)
	return err
}
