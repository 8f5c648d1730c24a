package doclet

import (
	"strings"

	"github.com/aunkrig/antdoclet/decl"
)

// Link is the resolved form of one cross-reference: a relative address (""
// means label-only, the reference renders as plain text) and a default
// display label. Code marks labels that render in code font, like component
// tag names.
type Link struct {
	Address string
	Label   string
	Code    bool
}

// IsResolved reports whether the link carries an address.
func (l Link) IsResolved() bool { return l.Address != "" }

// ExternalLinks maps qualified declaration names to documentation hosted
// elsewhere. Built once before model building, read-only afterwards.
type ExternalLinks struct {
	byName map[string]ExternalTarget
}

type ExternalTarget struct {
	URL   string
	Label string
}

func NewExternalLinks() *ExternalLinks {
	return &ExternalLinks{byName: make(map[string]ExternalTarget)}
}

func (e *ExternalLinks) Add(qualifiedName string, target ExternalTarget) {
	e.byName[qualifiedName] = target
}

func (e *ExternalLinks) Lookup(qualifiedName string) (ExternalTarget, bool) {
	t, ok := e.byName[qualifiedName]
	return t, ok
}

// Resolver computes addresses and labels for cross-references. For a fixed
// model and external registry, resolution is a pure function of the (from,
// to) pair; the only side effect is diagnostics for unresolvable targets.
type Resolver struct {
	Model    *Model
	External *ExternalLinks
	Sink     Sink
}

// ResolveDecl resolves a reference to a declaration, consulting in order:
// locally documented components, externally documented declarations, the
// current component's subelements, and type-group identities. An
// unresolvable declaration degrades to a label-only link and one error
// diagnostic; it never aborts generation.
func (r *Resolver) ResolveDecl(from *Component, fromGroup *TypeGroup, to *decl.Declaration, pos decl.Position) Link {
	if component, group := r.Model.ComponentFor(to, fromGroup); component != nil {
		address := r.pathTo(fromGroup, group) + component.Page()
		if component == from {
			// Self-reference, stays on the current page.
			address = "#"
		}
		return Link{
			Address: address,
			Label:   "<" + component.Name + ">",
			Code:    true,
		}
	}

	if target, ok := r.External.Lookup(to.Name); ok {
		return Link{Address: target.URL, Label: capitalize(target.Label)}
	}

	if from != nil {
		for _, sub := range from.Subelements {
			if sub.Type.Name != to.Name || sub.Type.ArrayDepth != 0 {
				continue
			}
			if sub.Name != "" {
				return Link{Address: "#elem." + sub.Name, Label: "<" + sub.Name + ">", Code: true}
			}
			if g := r.Model.GroupFor(to.Name); g != nil {
				return Link{Address: r.pathTo(fromGroup, g) + "index.html", Label: "Any " + g.Name}
			}
		}
	}

	if g := r.Model.GroupFor(to.Name); g != nil {
		return Link{Address: r.pathTo(fromGroup, g) + "index.html", Label: "Any " + g.Name}
	}

	errorf(r.Sink, pos, "cannot resolve reference to %s", to.Name)
	return Link{Label: to.SimpleName()}
}

// ResolveMember resolves a reference to a member: the current component's
// own character-data hook, attributes and subelements first, then every
// component in every group, including attributes and subelements declared on
// a subelement's own type. A member no component declares degrades to a
// label-only link and one warning.
func (r *Resolver) ResolveMember(from *Component, fromGroup *TypeGroup, to *decl.Member, pos decl.Position) Link {
	if from != nil {
		if link, ok := r.memberLinkIn(from, to, ""); ok {
			return link
		}
	}

	for _, g := range r.Model.Groups {
		for _, component := range g.Components {
			if component == from {
				continue
			}
			prefix := r.pathTo(fromGroup, g) + component.Page()
			if link, ok := r.memberLinkIn(component, to, prefix); ok {
				return link
			}
		}
	}

	warnf(r.Sink, pos, "no documented component declares %s.%s as attribute or subelement",
		to.Owner.Name, to.Name)
	return Link{Label: to.Name, Code: true}
}

// memberLinkIn looks for the member among one component's hooks. pagePrefix
// is "" when addressing within the component's own page.
func (r *Resolver) memberLinkIn(component *Component, to *decl.Member, pagePrefix string) (Link, bool) {
	if component.CharacterData != nil && r.sameMember(component.CharacterData, to) {
		return Link{Address: pagePrefix + "#text", Label: "text", Code: true}, true
	}
	for _, attr := range component.Attributes {
		if r.sameMember(attr.Member, to) {
			return Link{Address: pagePrefix + "#attr." + attr.Name, Label: attr.Name, Code: true}, true
		}
	}
	for _, sub := range component.Subelements {
		if r.sameMember(sub.Member, to) {
			return Link{Address: pagePrefix + "#" + sub.fragment(), Label: sub.label(), Code: true}, true
		}
	}
	// The member may configure one of this component's subelements rather
	// than the component itself.
	for _, sub := range component.Subelements {
		typ := r.Model.store.FindDeclaration(sub.Type.Name)
		if typ == nil || sub.Type.ArrayDepth != 0 {
			continue
		}
		nested := r.Model.Classification(typ)
		for _, attr := range nested.Attributes {
			if r.sameMember(attr.Member, to) {
				return Link{Address: pagePrefix + "#" + sub.fragment(), Label: attr.Name, Code: true}, true
			}
		}
		for _, nestedSub := range nested.Subelements {
			if r.sameMember(nestedSub.Member, to) {
				return Link{Address: pagePrefix + "#" + sub.fragment(), Label: nestedSub.label(), Code: true}, true
			}
		}
	}
	return Link{}, false
}

func (sub *Subelement) fragment() string {
	if sub.Name != "" {
		return "elem." + sub.Name
	}
	return "elem." + sub.Type.SimpleName()
}

func (sub *Subelement) label() string {
	if sub.Name != "" {
		return "<" + sub.Name + ">"
	}
	return sub.Type.SimpleName()
}

// sameMember matches a classified member against a reference target. The two
// may be distinct declarations of the same logical member (one overriding
// the other), so identity falls back to equal erased signatures on related
// declarations.
func (r *Resolver) sameMember(classified, to *decl.Member) bool {
	if classified == to {
		return true
	}
	if classified.Signature() != to.Signature() {
		return false
	}
	return r.related(classified.Owner, to.Owner)
}

func (r *Resolver) related(a, b *decl.Declaration) bool {
	if a == b {
		return true
	}
	for _, ancestor := range r.Model.store.Ancestors(a) {
		if ancestor == b {
			return true
		}
	}
	for _, ancestor := range r.Model.store.Ancestors(b) {
		if ancestor == a {
			return true
		}
	}
	return false
}

// pathTo returns the directory prefix for addressing a page in the target
// group: empty within the same group, parent-relative across groups, and
// rooted at the output directory when there is no from context.
func (r *Resolver) pathTo(fromGroup, toGroup *TypeGroup) string {
	switch {
	case fromGroup == toGroup:
		return ""
	case fromGroup == nil:
		return toGroup.Subdir + "/"
	default:
		return "../" + toGroup.Subdir + "/"
	}
}

// ResolveReference resolves a textual reference of the javadoc form
// "pkg.Class", "Class", "pkg.Class#member" or "#member" against the model.
func (r *Resolver) ResolveReference(from *Component, fromGroup *TypeGroup, ref string, pos decl.Position) Link {
	ref = strings.TrimSpace(ref)
	className, memberName := splitReference(ref)

	var target *decl.Declaration
	if className == "" {
		if from == nil {
			errorf(r.Sink, pos, "reference %q has no class and no enclosing component", ref)
			return Link{Label: ref}
		}
		target = from.Implementation
	} else {
		target = r.findDeclaration(className, from)
		if target == nil {
			errorf(r.Sink, pos, "cannot resolve reference to %q", ref)
			return Link{Label: simpleName(ref)}
		}
	}

	if memberName == "" {
		return r.ResolveDecl(from, fromGroup, target, pos)
	}

	member := r.findMember(target, memberName)
	if member == nil {
		warnf(r.Sink, pos, "%s has no member %q", target.Name, memberName)
		return Link{Label: memberName, Code: true}
	}
	return r.ResolveMember(from, fromGroup, member, pos)
}

// findDeclaration resolves a possibly unqualified class reference: verbatim
// first, then relative to the referring component's package, then by unique
// simple name anywhere in the store.
func (r *Resolver) findDeclaration(name string, from *Component) *decl.Declaration {
	store := r.Model.store
	if d := store.FindDeclaration(name); d != nil {
		return d
	}
	if from != nil {
		if d := store.FindDeclaration(from.Implementation.Package + "." + name); d != nil {
			return d
		}
	}
	if strings.Contains(name, ".") {
		return nil
	}
	var found *decl.Declaration
	for _, d := range store.All() {
		if d.SimpleName() == name {
			if found != nil {
				return nil // ambiguous
			}
			found = d
		}
	}
	return found
}

// findMember finds a declared or inherited member by name, most-derived
// first. A "(...)" suffix on the reference narrows by parameter count.
func (r *Resolver) findMember(d *decl.Declaration, ref string) *decl.Member {
	name := ref
	argCount := -1
	if open := strings.Index(ref, "("); open >= 0 {
		name = ref[:open]
		args := strings.TrimSuffix(ref[open+1:], ")")
		if strings.TrimSpace(args) == "" {
			argCount = 0
		} else {
			argCount = strings.Count(args, ",") + 1
		}
	}
	for _, m := range r.Model.store.Members(d, true) {
		if m.Name != name {
			continue
		}
		if argCount >= 0 && len(m.Parameters) != argCount {
			continue
		}
		return m
	}
	return nil
}

func splitReference(ref string) (className, memberName string) {
	if hash := strings.Index(ref, "#"); hash >= 0 {
		return ref[:hash], ref[hash+1:]
	}
	return ref, ""
}

func simpleName(ref string) string {
	if hash := strings.Index(ref, "#"); hash >= 0 {
		ref = ref[:hash]
	}
	if dot := strings.LastIndex(ref, "."); dot >= 0 {
		ref = ref[dot+1:]
	}
	return ref
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
