package decl

import (
	"sort"

	"github.com/aunkrig/antdoclet/javadoc"
)

// Store is a read-only index of declarations by qualified name. It is built
// once per run; ancestor chains are memoized per Store instance and never
// persisted across runs.
type Store struct {
	byName    map[string]*Declaration
	names     []string
	ancestors map[string][]*Declaration
	docs      map[string]*javadoc.DocComment
}

func NewStore() *Store {
	return &Store{
		byName:    make(map[string]*Declaration),
		ancestors: make(map[string][]*Declaration),
		docs:      make(map[string]*javadoc.DocComment),
	}
}

// Add registers a declaration. A later registration of the same qualified
// name replaces the earlier one (last scan wins), matching source-over-stub
// precedence when the same class appears in several source roots.
func (s *Store) Add(d *Declaration) {
	if _, seen := s.byName[d.Name]; !seen {
		s.names = append(s.names, d.Name)
	}
	s.byName[d.Name] = d
	delete(s.ancestors, d.Name)
}

// FindDeclaration returns the declaration with the given qualified name, or
// nil if the store has never seen it.
func (s *Store) FindDeclaration(qualifiedName string) *Declaration {
	return s.byName[qualifiedName]
}

// All returns every known declaration, sorted by qualified name.
func (s *Store) All() []*Declaration {
	names := make([]string, len(s.names))
	copy(names, s.names)
	sort.Strings(names)
	result := make([]*Declaration, 0, len(names))
	for _, n := range names {
		result = append(result, s.byName[n])
	}
	return result
}

// Ancestors returns the declaration's ancestor chain, most-derived first:
// the direct superclass and interfaces, then theirs, breadth-first, with
// duplicates (diamonds through interfaces) removed on first sight. Ancestors
// not present in the store are silently absent from the result.
func (s *Store) Ancestors(d *Declaration) []*Declaration {
	if cached, ok := s.ancestors[d.Name]; ok {
		return cached
	}

	var result []*Declaration
	seen := map[string]bool{d.Name: true}
	queue := s.parents(d)
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if seen[next.Name] {
			continue
		}
		seen[next.Name] = true
		result = append(result, next)
		queue = append(queue, s.parents(next)...)
	}

	s.ancestors[d.Name] = result
	return result
}

func (s *Store) parents(d *Declaration) []*Declaration {
	var parents []*Declaration
	if d.SuperClass != "" {
		if super := s.byName[d.SuperClass]; super != nil {
			parents = append(parents, super)
		}
	}
	for _, name := range d.Interfaces {
		if iface := s.byName[name]; iface != nil {
			parents = append(parents, iface)
		}
	}
	return parents
}

// Members returns the declaration's members. With includeInherited the
// ancestor chain is walked most-derived first and members overridden by an
// already-collected member (same erased signature) are suppressed, so each
// logical member appears exactly once, represented by its most-derived
// declaration.
func (s *Store) Members(d *Declaration, includeInherited bool) []*Member {
	if !includeInherited {
		return d.Members
	}

	var result []*Member
	seen := make(map[string]bool)
	collect := func(owner *Declaration) {
		for _, m := range owner.Members {
			sig := m.Signature()
			if seen[sig] {
				continue
			}
			seen[sig] = true
			result = append(result, m)
		}
	}

	collect(d)
	for _, ancestor := range s.Ancestors(d) {
		collect(ancestor)
	}
	return result
}

// Doc returns the parsed doc comment for a declaration or member, caching
// parses per entity for the lifetime of the store.
func (s *Store) Doc(entity interface{ docKey() (string, string) }) *javadoc.DocComment {
	key, raw := entity.docKey()
	if doc, ok := s.docs[key]; ok {
		return doc
	}
	doc := javadoc.Parse(raw)
	s.docs[key] = doc
	return doc
}

// Tags returns the ordered values of the named block tag attached to the
// given declaration or member, without the leading "@".
func (s *Store) Tags(entity interface{ docKey() (string, string) }, tag string) []string {
	return s.Doc(entity).TagValues(tag)
}

// Text returns the entity's description text with inline tags flattened to
// plain text.
func (s *Store) Text(entity interface{ docKey() (string, string) }) string {
	return javadoc.PlainText(s.Doc(entity).Body)
}

func (d *Declaration) docKey() (string, string) { return d.Name, d.Doc }

func (m *Member) docKey() (string, string) {
	owner := ""
	if m.Owner != nil {
		owner = m.Owner.Name
	}
	return owner + "#" + m.Signature(), m.Doc
}
