// Package render writes the documentation model out as static HTML: one
// overview page, one index per type group and one page per component, plus
// the stylesheet. All cross-reference addresses come from the link resolver;
// the renderer only decides page placement, which follows the same scheme
// (component pages in their group's subdirectory, indexes at its root).
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/aunkrig/antdoclet/doclet"
)

//go:embed templates static
var embeddedFS embed.FS

// Renderer turns one built model into a page tree under an output directory.
type Renderer struct {
	model     *doclet.Model
	resolver  *doclet.Resolver
	title     string
	templates *template.Template
}

func New(model *doclet.Model, resolver *doclet.Resolver, title string) (*Renderer, error) {
	r := &Renderer{model: model, resolver: resolver, title: title}

	funcMap := template.FuncMap{
		"firstSentence": firstSentenceOf,
	}
	tmpl, err := template.New("").Funcs(funcMap).ParseFS(embeddedFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.templates = tmpl
	return r, nil
}

// RenderAll writes the complete page tree. Groups without components produce
// no pages and do not appear on the overview.
func (r *Renderer) RenderAll(outputDir string) error {
	if err := r.writeStylesheet(outputDir); err != nil {
		return err
	}
	if err := r.writePage(filepath.Join(outputDir, "index.html"), "overview.html", r.overviewData()); err != nil {
		return err
	}

	for _, g := range r.model.Groups {
		if len(g.Components) == 0 {
			continue
		}
		dir := filepath.Join(outputDir, g.Subdir)
		if err := r.writePage(filepath.Join(dir, "index.html"), "group.html", r.groupData(g)); err != nil {
			return err
		}
		for _, c := range g.Components {
			if err := r.writePage(filepath.Join(dir, c.Page()), "component.html", r.componentData(c, g)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Renderer) writePage(path, templateName string, data any) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func (r *Renderer) writeStylesheet(outputDir string) error {
	css, err := embeddedFS.ReadFile("static/stylesheet.css")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outputDir, "stylesheet.css"), css, 0o644)
}
