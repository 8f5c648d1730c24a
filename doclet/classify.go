package doclet

import (
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"

	"github.com/aunkrig/antdoclet/decl"
)

// Classification is the result of scanning one declaration's members for
// configuration conventions.
type Classification struct {
	Attributes    []*Attribute
	Subelements   []*Subelement
	CharacterData *decl.Member
}

// Classifier derives attributes and subelements from member naming
// conventions. Results are memoized per declaration for the lifetime of the
// classifier (one run).
type Classifier struct {
	store *decl.Store
	sink  Sink
	cache map[string]*Classification
}

func NewClassifier(store *decl.Store, sink Sink) *Classifier {
	return &Classifier{
		store: store,
		sink:  sink,
		cache: make(map[string]*Classification),
	}
}

// rule is one (predicate, action) pair of the classification table. Rules
// are tried in table order and the first match consumes the member.
type rule struct {
	matches func(m *decl.Member) bool
	apply   func(st *classifyState, m *decl.Member)
}

// The table order is load-bearing: addText before setters, setters before
// creators, named adders before bare adders.
var rules = []rule{
	{matchCharacterData, (*classifyState).addCharacterData},
	{matchSetter, (*classifyState).addAttribute},
	{matchCreator, (*classifyState).addCreatedSubelement},
	{matchNamedAdder, (*classifyState).addNamedSubelement},
	{matchTypedAdder, (*classifyState).addTypedSubelement},
}

// Classify scans the declaration's members, inherited included, most-derived
// first. Overriding declarations do NOT hide the overridden ones here: every
// declaration in the chain is visited, and the documentation tie-break in the
// dedup decides which one represents a colliding attribute or subelement.
// Classify never fails; per-member problems degrade to diagnostics.
func (cl *Classifier) Classify(d *decl.Declaration) *Classification {
	if cached, ok := cl.cache[d.Name]; ok {
		return cached
	}

	st := &classifyState{
		classifier:  cl,
		declaration: d,
		attrIndex:   make(map[string]int),
		subIndex:    make(map[string]int),
	}

	st.scan(d)
	for _, ancestor := range cl.store.Ancestors(d) {
		st.scan(ancestor)
	}

	result := &Classification{
		Attributes:    st.attributes,
		Subelements:   st.subelements,
		CharacterData: st.characterData,
	}
	cl.applyOrderDirective(d, result)

	cl.cache[d.Name] = result
	return result
}

// applyOrderDirective honors the per-declaration subelement ordering
// directive: with "inline", subelements declared on the component's own class
// precede inherited ones. Applied once, after all dedup decisions.
func (cl *Classifier) applyOrderDirective(d *decl.Declaration, c *Classification) {
	order := cl.store.Tags(d, "ant.subelementOrder")
	if len(order) == 0 {
		return
	}
	if order[0] != "inline" {
		warnf(cl.sink, d.Pos, "unknown subelement order %q on %s (only \"inline\" is understood)", order[0], d.Name)
		return
	}

	var own, inherited []*Subelement
	for _, sub := range c.Subelements {
		if sub.Member.Owner == d {
			own = append(own, sub)
		} else {
			inherited = append(inherited, sub)
		}
	}
	c.Subelements = append(own, inherited...)
}

type classifyState struct {
	classifier  *Classifier
	declaration *decl.Declaration

	attributes    []*Attribute
	subelements   []*Subelement
	characterData *decl.Member
	attrIndex     map[string]int // subKey -> position in attributes
	subIndex      map[string]int // subKey -> position in subelements
}

func (st *classifyState) scan(owner *decl.Declaration) {
	for _, m := range owner.Members {
		for _, r := range rules {
			if r.matches(m) {
				r.apply(st, m)
				break
			}
		}
	}
}

func (st *classifyState) addCharacterData(m *decl.Member) {
	// Several addText hooks can surface through an inheritance chain; the
	// most-derived one (seen first) wins, the rest are ignored.
	if st.characterData == nil {
		st.characterData = m
	}
}

func (st *classifyState) addAttribute(m *decl.Member) {
	name := strcase.ToLowerCamel(strings.TrimPrefix(m.Name, "set"))
	attr := &Attribute{
		Name:    name,
		Member:  m,
		Type:    m.Parameters[0].Type,
		Group:   st.groupLabel(m),
		Hint:    m.Parameters[0].Name,
		Default: st.defaultValue(m),
	}

	key := subKey(name, attr.Type)
	if at, exists := st.attrIndex[key]; exists {
		if st.replaces(m, st.attributes[at].Member) {
			st.attributes[at] = attr
		}
		return
	}
	st.attrIndex[key] = len(st.attributes)
	st.attributes = append(st.attributes, attr)
}

func (st *classifyState) addCreatedSubelement(m *decl.Member) {
	st.putSubelement(&Subelement{
		Member: m,
		Type:   m.ReturnType,
		Group:  st.groupLabel(m),
	})
}

func (st *classifyState) addNamedSubelement(m *decl.Member) {
	word := strings.TrimPrefix(m.Name, "addConfigured")
	if word == m.Name {
		word = strings.TrimPrefix(m.Name, "add")
	}
	st.putSubelement(&Subelement{
		Name:   strcase.ToLowerCamel(word),
		Member: m,
		Type:   m.Parameters[0].Type,
		Group:  st.groupLabel(m),
	})
}

func (st *classifyState) addTypedSubelement(m *decl.Member) {
	st.putSubelement(&Subelement{
		Member: m,
		Type:   m.Parameters[0].Type,
		Group:  st.groupLabel(m),
	})
}

func (st *classifyState) putSubelement(sub *Subelement) {
	key := subKey(sub.Name, sub.Type)
	if at, exists := st.subIndex[key]; exists {
		if st.replaces(sub.Member, st.subelements[at].Member) {
			st.subelements[at] = sub
		}
		return
	}
	st.subIndex[key] = len(st.subelements)
	st.subelements = append(st.subelements, sub)
}

// replaces decides the documentation tie-break for a (name, type) collision:
// the candidate displaces the accepted (more derived, first-seen) member only
// when it is documented and the accepted one is not.
func (st *classifyState) replaces(candidate, accepted *decl.Member) bool {
	return !st.documented(accepted) && st.documented(candidate)
}

func (st *classifyState) documented(m *decl.Member) bool {
	return !st.classifier.store.Doc(m).IsEmpty()
}

func (st *classifyState) groupLabel(m *decl.Member) string {
	return st.classifier.store.Doc(m).TagValue("ant.group")
}

// defaultValue reads the declared default of an attribute and validates it
// against the attribute's value domain when that domain is an enum.
func (st *classifyState) defaultValue(m *decl.Member) string {
	value := st.classifier.store.Doc(m).TagValue("ant.default")
	if value == "" {
		return ""
	}
	typ := st.classifier.store.FindDeclaration(m.Parameters[0].Type.Name)
	if typ == nil || typ.Kind != decl.KindEnum {
		return value
	}
	for _, constant := range typ.EnumConstants {
		if strings.EqualFold(constant, value) {
			return value
		}
	}
	warnf(st.classifier.sink, m.Pos,
		"default %q of %s.%s is not a constant of enum %s", value, m.Owner.Name, m.Name, typ.Name)
	return value
}

func matchCharacterData(m *decl.Member) bool {
	return m.Name == "addText" &&
		len(m.Parameters) == 1 &&
		m.Parameters[0].Type == decl.Type{Name: "java.lang.String"}
}

func matchSetter(m *decl.Member) bool {
	if m.Name == "setProject" {
		// Framework wiring, present on every project component.
		return false
	}
	return hasCapitalizedSuffix(m.Name, "set") && len(m.Parameters) == 1
}

func matchCreator(m *decl.Member) bool {
	return hasCapitalizedSuffix(m.Name, "create") &&
		len(m.Parameters) == 0 &&
		!m.ReturnType.IsVoid()
}

func matchNamedAdder(m *decl.Member) bool {
	if len(m.Parameters) != 1 {
		return false
	}
	return hasCapitalizedSuffix(m.Name, "addConfigured") || hasCapitalizedSuffix(m.Name, "add")
}

func matchTypedAdder(m *decl.Member) bool {
	if len(m.Parameters) != 1 {
		return false
	}
	return m.Name == "add" || m.Name == "addConfigured"
}

// hasCapitalizedSuffix reports whether name is prefix followed by a
// capitalized word, e.g. "setMessage" for prefix "set".
func hasCapitalizedSuffix(name, prefix string) bool {
	if !strings.HasPrefix(name, prefix) || len(name) == len(prefix) {
		return false
	}
	return unicode.IsUpper(rune(name[len(prefix)]))
}
