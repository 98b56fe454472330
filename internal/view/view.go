// Package view renders result payloads to HTML. It is the render
// collaborator of the dispatch pipeline: handlers hand it a view name
// and a data map, and it owns the markup.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer renders named views from the embedded template set.
type Renderer struct {
	templates *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	t, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// Render writes the named view with the given data.
func (r *Renderer) Render(w io.Writer, view string, data map[string]any) error {
	if err := r.templates.ExecuteTemplate(w, view+".html", data); err != nil {
		return fmt.Errorf("render view %q: %w", view, err)
	}
	return nil
}
