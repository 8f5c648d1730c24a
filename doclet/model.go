// Package doclet builds the documentation model for registered Ant tasks and
// types: it classifies class members into attributes and subelements by
// naming convention, partitions components into type groups declared through
// ancestor metadata tags, and resolves cross-references between documented
// entities into relative addresses.
package doclet

import (
	"strings"

	"github.com/aunkrig/antdoclet/decl"
)

// Component is one registered, documented unit: a task or type name bound to
// its implementing declaration. Components are created once during model
// building and immutable afterwards.
type Component struct {
	Name           string
	Implementation *decl.Declaration
	AdaptTo        *decl.Declaration // optional adapter target, usually nil
	CharacterData  *decl.Member      // the addText hook, nil if none
	Attributes     []*Attribute
	Subelements    []*Subelement
	Pos            decl.Position // position of the registration record
}

// Page returns the component's output file name within its group directory.
func (c *Component) Page() string {
	return c.Name + ".html"
}

// Attribute is a settable configuration key inferred from a setter member.
type Attribute struct {
	Name    string
	Member  *decl.Member
	Type    decl.Type
	Group   string // optional visual grouping label
	Hint    string // value placeholder, from the setter parameter name
	Default string // declared default value, "" if none
}

// Subelement is a nested configuration unit inferred from a creator or adder
// member. Name is empty for typed ("any assignable value") subelements.
type Subelement struct {
	Name   string
	Member *decl.Member
	Type   decl.Type
	Group  string
}

// subKey is the dedup identity of an attribute or subelement entry.
func subKey(name string, typ decl.Type) string {
	return name + "\x00" + typ.String()
}

// TypeGroup is a named category of components sharing a common documented
// ancestor. Identity is the qualified name of the ancestor that declares the
// group metadata; the built-in Task and catch-all groups use sentinel names.
type TypeGroup struct {
	Ancestor        string // qualified ancestor name, "" for the catch-all
	Subdir          string
	Name            string
	Heading         string
	TitleTemplate   string // renders a component name into a page title
	HeadingTemplate string // renders a component name into a page heading
	Components      []*Component
}

// Title renders the group's title template for one component name.
func (g *TypeGroup) Title(name string) string {
	return renderTemplate(g.TitleTemplate, name)
}

// ComponentHeading renders the group's heading template for one component name.
func (g *TypeGroup) ComponentHeading(name string) string {
	return renderTemplate(g.HeadingTemplate, name)
}

func renderTemplate(template, name string) string {
	return strings.ReplaceAll(template, "{0}", name)
}

func (g *TypeGroup) add(c *Component) {
	g.Components = append(g.Components, c)
}

// Find returns the group's component with the given registered name, or nil.
func (g *TypeGroup) Find(name string) *Component {
	for _, c := range g.Components {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Model is the complete grouped documentation model of one run.
type Model struct {
	Groups []*TypeGroup // seed groups first, then discovery order

	store      *decl.Store
	byAncestor map[string]*TypeGroup
	classifier *Classifier
	taskGroup  *TypeGroup
	otherGroup *TypeGroup
}

// TaskAncestor is the root task class. Extending it means Task-group
// membership unconditionally; the convention has no metadata tag for it.
const TaskAncestor = "org.apache.tools.ant.Task"

func NewModel(store *decl.Store, sink Sink) *Model {
	m := &Model{
		store:      store,
		byAncestor: make(map[string]*TypeGroup),
		classifier: NewClassifier(store, sink),
	}
	m.taskGroup = &TypeGroup{
		Ancestor:        TaskAncestor,
		Subdir:          "tasks",
		Name:            "Task",
		Heading:         "Tasks",
		TitleTemplate:   `Task "{0}"`,
		HeadingTemplate: `<{0}> Task`,
	}
	m.otherGroup = &TypeGroup{
		Subdir:          "other",
		Name:            "Other type",
		Heading:         "Other types",
		TitleTemplate:   `Type "{0}"`,
		HeadingTemplate: `<{0}> Type`,
	}
	m.Groups = []*TypeGroup{m.taskGroup, m.otherGroup}
	m.byAncestor[TaskAncestor] = m.taskGroup
	return m
}

// Store returns the declaration store the model was built over.
func (m *Model) Store() *decl.Store { return m.store }

// TaskGroup returns the built-in group for task components.
func (m *Model) TaskGroup() *TypeGroup { return m.taskGroup }

// OtherGroup returns the catch-all group for components whose ancestor chain
// declares no group metadata.
func (m *Model) OtherGroup() *TypeGroup { return m.otherGroup }

// GroupFor returns the registered group rooted at the given ancestor
// declaration name, or nil.
func (m *Model) GroupFor(ancestor string) *TypeGroup {
	return m.byAncestor[ancestor]
}

// ComponentFor finds the component implemented by the given declaration,
// preferring the given group when the component belongs to several. Returns
// the component and its addressing group, or (nil, nil).
func (m *Model) ComponentFor(d *decl.Declaration, prefer *TypeGroup) (*Component, *TypeGroup) {
	if prefer != nil {
		for _, c := range prefer.Components {
			if c.Implementation == d {
				return c, prefer
			}
		}
	}
	for _, g := range m.Groups {
		for _, c := range g.Components {
			if c.Implementation == d {
				return c, g
			}
		}
	}
	return nil, nil
}

// Classification returns the memoized classification of any declaration,
// whether or not it backs a registered component. The link resolver uses this
// to address attributes declared on subelement types.
func (m *Model) Classification(d *decl.Declaration) *Classification {
	return m.classifier.Classify(d)
}
