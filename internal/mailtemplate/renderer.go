// Package mailtemplate renders the HTML bodies of transactional emails.
package mailtemplate

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"

	"github.com/aliskhannn/jobden/internal/config"
)

//go:embed templates/*.html
var embedded embed.FS

const layoutFile = "layout.html"

var ErrUnknownTemplate = errors.New("unknown email template")

// Renderer executes named templates with app-wide values merged into the task context.
type Renderer struct {
	templates map[string]*template.Template
	defaults  map[string]any
}

// New parses the embedded templates.
func New(app config.App) (*Renderer, error) {
	return NewFromFS(embedded, "templates", app)
}

// NewFromFS parses every *.html file in dir. The layout file is shared by all templates.
func NewFromFS(fsys fs.FS, dir string, app config.App) (*Renderer, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	layout := path.Join(dir, layoutFile)
	hasLayout := false
	for _, f := range files {
		if f == layout {
			hasLayout = true
		}
	}

	templates := make(map[string]*template.Template, len(files))
	for _, f := range files {
		if f == layout {
			continue
		}

		name := strings.TrimSuffix(path.Base(f), ".html")
		patterns := []string{f}
		if hasLayout {
			patterns = append(patterns, layout)
		}

		t, err := template.New(path.Base(f)).ParseFS(fsys, patterns...)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		templates[name] = t
	}

	return &Renderer{
		templates: templates,
		defaults: map[string]any{
			"app_name":      app.Name,
			"app_url":       app.URL,
			"support_email": app.SupportEmail,
		},
	}, nil
}

// Render executes the template called name. Keys in data override the app-wide values.
func (r *Renderer) Render(name string, data map[string]any) (string, error) {
	t, ok := r.templates[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTemplate, name)
	}

	merged := make(map[string]any, len(r.defaults)+len(data))
	for k, v := range r.defaults {
		merged[k] = v
	}
	for k, v := range data {
		merged[k] = v
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, merged); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}

	return buf.String(), nil
}
