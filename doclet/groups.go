package doclet

import (
	"github.com/aunkrig/antdoclet/decl"
)

// Group metadata tags read from a group-root ancestor's doc comment. The
// first three are required; the two templates default to forms derived from
// the group name.
const (
	tagGroupSubdir   = "ant.typeGroupSubdir"
	tagGroupName     = "ant.typeGroupName"
	tagGroupHeading  = "ant.typeGroupHeading"
	tagTitleTemplate = "ant.typeTitleMf"
	tagHeadTemplate  = "ant.typeHeadingMf"
)

// GroupsFor walks the declaration's ancestor chain and returns every type
// group it belongs to, in ancestor-chain order. Extending the root task class
// means Task-group membership unconditionally; any other ancestor carrying
// the complete group metadata roots a group, built once and reused. With no
// match at all the result is the singleton catch-all group.
func (m *Model) GroupsFor(d *decl.Declaration, sink Sink) []*TypeGroup {
	var groups []*TypeGroup
	seen := make(map[*TypeGroup]bool)

	for _, ancestor := range m.store.Ancestors(d) {
		g := m.groupAt(ancestor, sink)
		if g == nil || seen[g] {
			continue
		}
		seen[g] = true
		groups = append(groups, g)
	}

	if len(groups) == 0 {
		return []*TypeGroup{m.otherGroup}
	}
	return groups
}

// groupAt returns the group rooted at the given ancestor, building and
// registering it on first sight. Ancestors without group metadata yield nil;
// partial metadata is a configuration error and also yields nil.
func (m *Model) groupAt(ancestor *decl.Declaration, sink Sink) *TypeGroup {
	if g, ok := m.byAncestor[ancestor.Name]; ok {
		return g
	}

	doc := m.store.Doc(ancestor)
	subdir := doc.TagValue(tagGroupSubdir)
	name := doc.TagValue(tagGroupName)
	heading := doc.TagValue(tagGroupHeading)
	title := doc.TagValue(tagTitleTemplate)
	componentHeading := doc.TagValue(tagHeadTemplate)

	if subdir == "" && name == "" && heading == "" && title == "" && componentHeading == "" {
		m.byAncestor[ancestor.Name] = nil // not a group root
		return nil
	}
	if subdir == "" || name == "" || heading == "" {
		errorf(sink, ancestor.Pos,
			"%s declares incomplete type group metadata: %s, %s and %s are all required",
			ancestor.Name, tagGroupSubdir, tagGroupName, tagGroupHeading)
		m.byAncestor[ancestor.Name] = nil
		return nil
	}

	if title == "" {
		title = name + ` "{0}"`
	}
	if componentHeading == "" {
		componentHeading = `<{0}> ` + name
	}

	g := &TypeGroup{
		Ancestor:        ancestor.Name,
		Subdir:          subdir,
		Name:            name,
		Heading:         heading,
		TitleTemplate:   title,
		HeadingTemplate: componentHeading,
	}
	m.byAncestor[ancestor.Name] = g
	m.Groups = append(m.Groups, g)
	return g
}
