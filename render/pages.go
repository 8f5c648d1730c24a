package render

import (
	"html/template"

	"github.com/aunkrig/antdoclet/decl"
	"github.com/aunkrig/antdoclet/doclet"
	"github.com/aunkrig/antdoclet/javadoc"
)

// Per-page view data. Assembled in Go so the templates stay declarative.

type overviewData struct {
	Title  string
	Groups []overviewGroup
}

type overviewGroup struct {
	Heading    string
	Components []overviewComponent
}

type overviewComponent struct {
	Name    string
	Address string
	Summary string
}

type groupData struct {
	Title      string
	Heading    string
	Stylesheet string
	Components []overviewComponent
}

type componentData struct {
	Title         string
	Heading       string
	Stylesheet    string
	Description   template.HTML
	AdaptTo       string
	Attributes    []attributeSection
	Subelements   []subelementRow
	CharacterData template.HTML
	HasText       bool
}

type attributeSection struct {
	Label string // "" for the unlabeled default section
	Rows  []attributeRow
}

type attributeRow struct {
	Name        string
	Anchor      string
	Type        template.HTML
	Description template.HTML
	Default     string
	Hint        string
}

type subelementRow struct {
	Display     string // element name, or type name for typed subelements
	Anchor      string
	Code        bool // element names render in code font, type names do not
	Type        template.HTML
	Description template.HTML
}

func (r *Renderer) overviewData() overviewData {
	data := overviewData{Title: r.title}
	for _, g := range r.model.Groups {
		if len(g.Components) == 0 {
			continue
		}
		og := overviewGroup{Heading: g.Heading}
		for _, c := range g.Components {
			og.Components = append(og.Components, overviewComponent{
				Name:    c.Name,
				Address: g.Subdir + "/" + c.Page(),
				Summary: r.summary(c),
			})
		}
		data.Groups = append(data.Groups, og)
	}
	return data
}

func (r *Renderer) groupData(g *doclet.TypeGroup) groupData {
	data := groupData{
		Title:      g.Heading,
		Heading:    g.Heading,
		Stylesheet: "../stylesheet.css",
	}
	for _, c := range g.Components {
		data.Components = append(data.Components, overviewComponent{
			Name:    c.Name,
			Address: c.Page(),
			Summary: r.summary(c),
		})
	}
	return data
}

func (r *Renderer) componentData(c *doclet.Component, g *doclet.TypeGroup) componentData {
	store := r.model.Store()
	data := componentData{
		Title:       g.Title(c.Name),
		Heading:     g.ComponentHeading(c.Name),
		Stylesheet:  "../stylesheet.css",
		Description: r.docHTML(store.Doc(c.Implementation).Body, c, g),
		Attributes:  r.attributeSections(c, g),
		Subelements: r.subelementRows(c, g),
	}
	if c.AdaptTo != nil {
		data.AdaptTo = c.AdaptTo.Name
	}
	if c.CharacterData != nil {
		data.HasText = true
		data.CharacterData = r.docHTML(store.Doc(c.CharacterData).Body, c, g)
	}
	return data
}

// attributeSections partitions attributes by their visual group label,
// keeping declaration order both across and within sections. The unlabeled
// section comes first.
func (r *Renderer) attributeSections(c *doclet.Component, g *doclet.TypeGroup) []attributeSection {
	store := r.model.Store()
	index := map[string]int{}
	var sections []attributeSection

	section := func(label string) *attributeSection {
		if at, ok := index[label]; ok {
			return &sections[at]
		}
		index[label] = len(sections)
		sections = append(sections, attributeSection{Label: label})
		return &sections[len(sections)-1]
	}
	if hasUnlabeled(c.Attributes) {
		section("")
	}

	for _, attr := range c.Attributes {
		s := section(attr.Group)
		s.Rows = append(s.Rows, attributeRow{
			Name:        attr.Name,
			Anchor:      "attr." + attr.Name,
			Type:        r.typeHTML(attr.Type, c, g),
			Description: r.docHTML(store.Doc(attr.Member).Body, c, g),
			Default:     attr.Default,
			Hint:        attr.Hint,
		})
	}
	return sections
}

func hasUnlabeled(attrs []*doclet.Attribute) bool {
	for _, a := range attrs {
		if a.Group == "" {
			return true
		}
	}
	return false
}

func (r *Renderer) subelementRows(c *doclet.Component, g *doclet.TypeGroup) []subelementRow {
	store := r.model.Store()
	var rows []subelementRow
	for _, sub := range c.Subelements {
		row := subelementRow{
			Display:     sub.Type.SimpleName(),
			Type:        r.typeHTML(sub.Type, c, g),
			Description: r.docHTML(store.Doc(sub.Member).Body, c, g),
		}
		if sub.Name != "" {
			row.Display = sub.Name
			row.Anchor = "elem." + sub.Name
			row.Code = true
		} else {
			row.Anchor = "elem." + sub.Type.SimpleName()
		}
		rows = append(rows, row)
	}
	return rows
}

func (r *Renderer) summary(c *doclet.Component) string {
	return javadoc.FirstSentence(r.model.Store().Text(c.Implementation))
}

func firstSentenceOf(text string) string {
	return javadoc.FirstSentence(text)
}

// typeHTML renders a type name, linked when the type backs a documented
// component or an externally documented class, plain otherwise.
func (r *Renderer) typeHTML(t decl.Type, from *doclet.Component, g *doclet.TypeGroup) template.HTML {
	escaped := template.HTMLEscapeString(t.SimpleName())

	d := r.model.Store().FindDeclaration(t.Name)
	if d == nil || t.ArrayDepth != 0 {
		return template.HTML(escaped)
	}
	link := r.componentLink(d, from, g)
	if link == "" {
		return template.HTML(escaped)
	}
	return template.HTML(`<a href="` + template.HTMLEscapeString(link) + `">` + escaped + `</a>`)
}

func (r *Renderer) componentLink(d *decl.Declaration, from *doclet.Component, g *doclet.TypeGroup) string {
	if component, group := r.model.ComponentFor(d, g); component != nil && component != from {
		prefix := ""
		if group != g {
			prefix = "../" + group.Subdir + "/"
		}
		return prefix + component.Page()
	}
	if target, ok := r.resolver.External.Lookup(d.Name); ok {
		return target.URL
	}
	return ""
}
