// Package view implements echo's Renderer interface over the embedded
// HTML templates. Handlers stay template-agnostic: they hand over plain
// maps and records, and every display concern (datetime formatting, the
// fixed genre choice list, flash markup) lives here or in the templates.
package view

import (
	"embed"
	"html/template"
	"io"
	"time"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html templates/errors/*.html
var templatesFS embed.FS

// Genres is the fixed choice list offered by the venue and artist forms.
// Free-text labels still reconcile fine; the list only drives the select
// widgets.
var Genres = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk",
	"Funk", "Hip-Hop", "Heavy Metal", "Instrumental", "Jazz",
	"Musical Theatre", "Pop", "Punk", "R&B", "Reggae", "Rock n Roll",
	"Soul", "Other",
}

// Renderer renders named templates parsed once at startup.
type Renderer struct {
	templates *template.Template
}

// New parses all embedded templates and returns a ready Renderer.
func New() (*Renderer, error) {
	t := template.New("").Funcs(template.FuncMap{
		"datetime": formatDatetime,
		"has":      contains,
	})
	t, err := t.ParseFS(templatesFS, "templates/*.html", "templates/errors/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// formatDatetime renders show times the way the directory displays them,
// e.g. "Mon Jan 2, 2006 3:04PM".
func formatDatetime(t time.Time) string {
	return t.Format("Mon Jan 2, 2006 3:04PM")
}

// contains reports whether the string slice holds the given value. Used
// by the edit forms to mark an entity's genres as selected.
func contains(items []string, v string) bool {
	for _, it := range items {
		if it == v {
			return true
		}
	}
	return false
}
