package render

import (
	"html/template"
	"strings"

	"github.com/aunkrig/antdoclet/decl"
	"github.com/aunkrig/antdoclet/doclet"
	"github.com/aunkrig/antdoclet/javadoc"
)

// docHTML converts a doc comment body into HTML. Text nodes pass through
// verbatim, since doc comment prose is HTML by convention. Inline links go
// through the resolver; unresolvable ones degrade to their label, the
// diagnostic having been reported by the resolver already.
func (r *Renderer) docHTML(nodes []javadoc.Node, from *doclet.Component, g *doclet.TypeGroup) template.HTML {
	var sb strings.Builder
	for _, node := range nodes {
		switch n := node.(type) {
		case javadoc.Text:
			sb.WriteString(n.Content)
		case javadoc.Code:
			sb.WriteString("<code>")
			sb.WriteString(template.HTMLEscapeString(n.Content))
			sb.WriteString("</code>")
		case javadoc.Link:
			sb.WriteString(r.linkHTML(n, from, g))
		}
	}
	return template.HTML(strings.TrimSpace(sb.String()))
}

func (r *Renderer) linkHTML(n javadoc.Link, from *doclet.Component, g *doclet.TypeGroup) string {
	pos := decl.Position{}
	if from != nil {
		pos = from.Pos
	}
	link := r.resolver.ResolveReference(from, g, n.Reference, pos)

	label := n.Label
	if label == "" {
		label = link.Label
	}
	escaped := template.HTMLEscapeString(label)
	if link.Code && !n.Plain {
		escaped = "<code>" + escaped + "</code>"
	}

	if !link.IsResolved() {
		return escaped
	}
	return `<a href="` + template.HTMLEscapeString(link.Address) + `">` + escaped + `</a>`
}
