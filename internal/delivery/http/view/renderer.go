package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

type Renderer struct {
	directory *template.Template
}

func NewRenderer() (*Renderer, error) {
	directory, err := template.ParseFS(templateFS, "templates/directory.html")
	if err != nil {
		return nil, fmt.Errorf("parse directory template: %w", err)
	}
	return &Renderer{directory: directory}, nil
}

func (r *Renderer) RenderDirectory(w io.Writer, page Page) error {
	if err := r.directory.Execute(w, page); err != nil {
		return fmt.Errorf("render directory: %w", err)
	}
	return nil
}
