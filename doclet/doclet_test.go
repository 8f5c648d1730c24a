package doclet

import (
	"github.com/aunkrig/antdoclet/decl"
)

// Test fixtures: hand-assembled declarations, no source scanning involved.

func newClass(name, super string, interfaces ...string) *decl.Declaration {
	return &decl.Declaration{
		Name:       name,
		Kind:       decl.KindClass,
		SuperClass: super,
		Interfaces: interfaces,
		Pos:        decl.Position{File: name + ".java", Line: 1},
	}
}

func withDoc(d *decl.Declaration, doc string) *decl.Declaration {
	d.Doc = doc
	return d
}

func method(d *decl.Declaration, name, doc string, returnType decl.Type, paramTypes ...decl.Type) *decl.Member {
	m := &decl.Member{
		Name:       name,
		ReturnType: returnType,
		Doc:        doc,
		Owner:      d,
		Pos:        decl.Position{File: d.Name + ".java", Line: len(d.Members) + 10},
	}
	for i, t := range paramTypes {
		name := "arg"
		if i > 0 {
			name = "arg" + string(rune('0'+i))
		}
		m.Parameters = append(m.Parameters, decl.Parameter{Name: name, Type: t})
	}
	d.Members = append(d.Members, m)
	return m
}

func setter(d *decl.Declaration, name, doc string, paramType string) *decl.Member {
	m := method(d, name, doc, decl.Type{Name: "void"}, decl.Type{Name: paramType})
	m.Parameters[0].Name = lowerFirst(name[3:])
	return m
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}

var (
	voidType   = decl.Type{Name: "void"}
	stringType = decl.Type{Name: "java.lang.String"}
)

const groupedAncestorDoc = `/**
 * Base class of all resource collections.
 *
 * @ant.typeGroupSubdir  resourceCollections
 * @ant.typeGroupName    Resource collection
 * @ant.typeGroupHeading Resource collections
 */`

func storeWith(decls ...*decl.Declaration) *decl.Store {
	s := decl.NewStore()
	for _, d := range decls {
		s.Add(d)
	}
	return s
}
