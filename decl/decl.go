// Package decl holds the declaration model the doclet runs over: class-like
// declarations, their method-like members, and the store that indexes them by
// qualified name.
package decl

import (
	"strconv"
	"strings"
)

type Kind string

const (
	KindClass     Kind = "class"
	KindInterface Kind = "interface"
	KindEnum      Kind = "enum"
)

// Position locates an entity in its source file, for diagnostics.
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) IsZero() bool {
	return p.File == "" && p.Line == 0
}

func (p Position) String() string {
	if p.File == "" {
		return "<unknown>"
	}
	s := p.File
	if p.Line > 0 {
		s += ":" + strconv.Itoa(p.Line)
		if p.Column > 0 {
			s += ":" + strconv.Itoa(p.Column)
		}
	}
	return s
}

// Type is an erased type reference: a qualified name plus array depth.
// Generics are not tracked; the doclet only needs assignability by name.
type Type struct {
	Name       string
	ArrayDepth int
}

func (t Type) IsVoid() bool {
	return t.Name == "void" && t.ArrayDepth == 0
}

func (t Type) IsPrimitive() bool {
	if t.ArrayDepth > 0 {
		return false
	}
	switch t.Name {
	case "boolean", "byte", "char", "short", "int", "long", "float", "double":
		return true
	}
	return false
}

// SimpleName returns the last dot-separated segment of the type name.
func (t Type) SimpleName() string {
	name := t.Name
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			name = name[i+1:]
			break
		}
	}
	for i := 0; i < t.ArrayDepth; i++ {
		name += "[]"
	}
	return name
}

func (t Type) String() string {
	s := t.Name
	for i := 0; i < t.ArrayDepth; i++ {
		s += "[]"
	}
	return s
}

// Declaration is a class-like entity. Instances are owned by the Store that
// produced them; consumers hold references and never mutate them.
type Declaration struct {
	Name       string // qualified, e.g. org.apache.tools.ant.taskdefs.Echo
	Package    string
	Kind       Kind
	SuperClass string   // qualified name, "" for none recorded
	Interfaces []string // qualified names, declaration order
	Members    []*Member
	// EnumConstants holds the constant names of an enum declaration, in
	// declaration order. Empty for classes and interfaces.
	EnumConstants []string
	Doc           string // raw doc comment including /** */ frame, "" for none
	Pos           Position
}

func (d *Declaration) SimpleName() string {
	name := d.Name
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[i+1:]
		}
	}
	return name
}

// Member is a method-like declaration on some Declaration.
type Member struct {
	Name       string
	Parameters []Parameter
	ReturnType Type
	Doc        string
	Owner      *Declaration
	Pos        Position
}

type Parameter struct {
	Name string
	Type Type
}

// Signature returns the member's erased signature: name plus parameter type
// names. Two members with equal signatures across an inheritance chain are
// the same logical member (one overrides the other).
func (m *Member) Signature() string {
	var sb strings.Builder
	sb.WriteString(m.Name)
	sb.WriteString("(")
	for i, p := range m.Parameters {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(p.Type.String())
	}
	sb.WriteString(")")
	return sb.String()
}
