package javasrc

import (
	"fmt"
	"strings"

	"github.com/aunkrig/antdoclet/decl"
)

// File is the scan result for one compilation unit.
type File struct {
	Path         string
	Package      string
	Declarations []*decl.Declaration
}

type scanner struct {
	lexer   *Lexer
	tok     Token
	doc     string // most recent doc comment, not yet attached
	pkg     string
	imports map[string]string // simple name -> qualified name
	decls   []*decl.Declaration
}

// ParseFile scans one Java source file for top-level (and nested) type
// declarations and their public methods. It never fails on unexpected
// syntax — unrecognized constructs are skipped — but reports unreadable
// structure as an error when no package or declaration was found at all.
func ParseFile(content []byte, path string) (*File, error) {
	s := &scanner{
		lexer:   NewLexer(content, path),
		imports: make(map[string]string),
	}
	s.next()
	s.parseCompilationUnit()

	if s.pkg == "" && len(s.decls) == 0 {
		return nil, fmt.Errorf("%s: no Java declarations found", path)
	}
	return &File{Path: path, Package: s.pkg, Declarations: s.decls}, nil
}

// next advances to the next significant token, remembering the most recent
// doc comment so it can be attached to the following declaration.
func (s *scanner) next() {
	for {
		t := s.lexer.NextToken()
		switch t.Kind {
		case TokenWhitespace, TokenLineComment:
			continue
		case TokenComment:
			if strings.HasPrefix(t.Literal, "/**") {
				s.doc = t.Literal
			}
			continue
		}
		s.tok = t
		return
	}
}

// takeDoc consumes the pending doc comment.
func (s *scanner) takeDoc() string {
	doc := s.doc
	s.doc = ""
	return doc
}

func (s *scanner) is(literal string) bool {
	return s.tok.Literal == literal
}

func (s *scanner) accept(literal string) bool {
	if s.tok.Literal == literal {
		s.next()
		return true
	}
	return false
}

func (s *scanner) parseCompilationUnit() {
	for s.tok.Kind != TokenEOF {
		switch {
		case s.is("package"):
			s.next()
			s.pkg = s.parseQualifiedName()
			s.accept(";")
			s.doc = "" // file header comment does not belong to a type

		case s.is("import"):
			s.next()
			s.accept("static")
			name := s.parseQualifiedName()
			if s.is("*") {
				s.next() // wildcard imports are not resolved
			} else if idx := strings.LastIndex(name, "."); idx >= 0 {
				s.imports[name[idx+1:]] = name
			}
			s.accept(";")

		case s.is("@"):
			s.skipAnnotation()

		case s.is("class") || s.is("interface") || s.is("enum"):
			s.parseTypeDecl("", s.takeDoc())

		case s.tok.Kind == TokenIdent:
			// Modifier or stray token before a type declaration.
			s.next()

		default:
			s.next()
		}
	}
}

func (s *scanner) parseTypeDecl(outer, doc string) {
	var kind decl.Kind
	switch s.tok.Literal {
	case "interface":
		kind = decl.KindInterface
	case "enum":
		kind = decl.KindEnum
	default:
		kind = decl.KindClass
	}
	pos := s.tok.Pos
	s.next()

	if s.tok.Kind != TokenIdent {
		return
	}
	simple := s.tok.Literal
	s.next()

	if s.is("<") {
		s.skipAngles()
	}

	name := simple
	if outer != "" {
		name = outer + "." + simple
	}
	d := &decl.Declaration{
		Name:    s.qualify(name),
		Package: s.pkg,
		Kind:    kind,
		Doc:     doc,
		Pos:     pos,
	}

	for {
		switch {
		case s.is("extends"):
			s.next()
			types := s.parseTypeList()
			if kind == decl.KindInterface {
				for _, t := range types {
					d.Interfaces = append(d.Interfaces, t.Name)
				}
			} else if len(types) > 0 {
				d.SuperClass = types[0].Name
			}
			continue
		case s.is("implements"), s.is("permits"):
			isImplements := s.is("implements")
			s.next()
			types := s.parseTypeList()
			if isImplements {
				for _, t := range types {
					d.Interfaces = append(d.Interfaces, t.Name)
				}
			}
			continue
		}
		break
	}

	s.decls = append(s.decls, d)

	if !s.accept("{") {
		return
	}
	s.parseBody(d, name)
}

// parseBody scans type members until the matching closing brace.
func (s *scanner) parseBody(owner *decl.Declaration, outerName string) {
	if owner.Kind == decl.KindEnum {
		owner.EnumConstants = s.scanEnumConstants()
	}

	for s.tok.Kind != TokenEOF {
		if s.is("}") {
			s.next()
			return
		}
		if s.is(";") {
			s.doc = ""
			s.next()
			continue
		}
		if s.is("@") {
			s.skipAnnotation()
			continue
		}
		if s.is("{") {
			// Instance or static initializer block.
			s.skipBraces()
			s.doc = ""
			continue
		}
		if s.is("class") || s.is("interface") || s.is("enum") {
			s.parseTypeDecl(outerName, s.takeDoc())
			continue
		}

		doc := s.takeDoc()
		modifiers := s.parseModifiers()

		if s.is("class") || s.is("interface") || s.is("enum") {
			s.doc = doc
			continue // handled on the next iteration, doc restored
		}
		if s.is("{") {
			s.skipBraces() // static { ... }
			continue
		}
		if s.is("<") {
			s.skipAngles() // generic method type parameters
		}

		if s.tok.Kind != TokenIdent {
			s.next()
			continue
		}

		pos := s.tok.Pos
		first := s.parseTypeRef()

		if s.is("(") {
			// Constructor: the "type" was the class name.
			s.skipParens()
			s.skipToMemberEnd()
			continue
		}

		if s.tok.Kind != TokenIdent {
			// Field with initializer, or something we do not model.
			s.skipToMemberEnd()
			continue
		}

		memberName := s.tok.Literal
		s.next()

		if !s.is("(") {
			// Field declaration.
			s.skipToMemberEnd()
			continue
		}

		params := s.parseParams()
		s.skipThrows()
		s.skipToMemberEnd()

		if !memberVisible(owner, modifiers) {
			continue
		}
		owner.Members = append(owner.Members, &decl.Member{
			Name:       memberName,
			Parameters: params,
			ReturnType: first,
			Doc:        doc,
			Owner:      owner,
			Pos:        pos,
		})
	}
}

// memberVisible reports whether a member belongs in the model: public
// methods, plus unqualified interface methods which are implicitly public.
func memberVisible(owner *decl.Declaration, modifiers map[string]bool) bool {
	if modifiers["public"] {
		return true
	}
	if owner.Kind == decl.KindInterface {
		return !modifiers["private"]
	}
	return false
}

func (s *scanner) parseModifiers() map[string]bool {
	modifiers := make(map[string]bool)
	for s.tok.Kind == TokenIdent {
		switch s.tok.Literal {
		case "public", "protected", "private", "static", "final", "abstract",
			"synchronized", "native", "strictfp", "transient", "volatile", "default":
			modifiers[s.tok.Literal] = true
			s.next()
		default:
			return modifiers
		}
	}
	return modifiers
}

// parseTypeRef parses a possibly qualified, possibly generic, possibly array
// type reference and resolves it against the file's imports.
func (s *scanner) parseTypeRef() decl.Type {
	name := s.tok.Literal
	s.next()
	for s.is(".") {
		s.next()
		if s.tok.Kind != TokenIdent {
			break
		}
		name += "." + s.tok.Literal
		s.next()
	}
	if s.is("<") {
		s.skipAngles()
	}
	depth := 0
	for s.is("[") {
		s.next()
		s.accept("]")
		depth++
	}
	return decl.Type{Name: s.resolveType(name), ArrayDepth: depth}
}

func (s *scanner) parseTypeList() []decl.Type {
	var types []decl.Type
	for s.tok.Kind == TokenIdent {
		types = append(types, s.parseTypeRef())
		if !s.accept(",") {
			break
		}
	}
	return types
}

func (s *scanner) parseParams() []decl.Parameter {
	var params []decl.Parameter
	s.accept("(")
	for s.tok.Kind != TokenEOF && !s.is(")") {
		if s.is("@") {
			s.skipAnnotation()
			continue
		}
		if s.accept("final") {
			continue
		}
		if s.tok.Kind != TokenIdent {
			s.next()
			continue
		}
		typ := s.parseTypeRef()
		// Varargs: three dots after the type.
		if s.is(".") {
			for s.is(".") {
				s.next()
			}
			typ.ArrayDepth++
		}
		name := ""
		if s.tok.Kind == TokenIdent {
			name = s.tok.Literal
			s.next()
		}
		for s.is("[") {
			s.next()
			s.accept("]")
			typ.ArrayDepth++
		}
		params = append(params, decl.Parameter{Name: name, Type: typ})
		s.accept(",")
	}
	s.accept(")")
	return params
}

// resolveType maps a source type name to a qualified name: explicit
// qualification and primitives stay, imports win, java.lang types qualify
// there, anything else is assumed package-local.
func (s *scanner) resolveType(name string) string {
	if strings.Contains(name, ".") {
		return name
	}
	switch name {
	case "void", "boolean", "byte", "char", "short", "int", "long", "float", "double":
		return name
	}
	if qualified, ok := s.imports[name]; ok {
		return qualified
	}
	if javaLangTypes[name] {
		return "java.lang." + name
	}
	if s.pkg != "" {
		return s.pkg + "." + name
	}
	return name
}

var javaLangTypes = map[string]bool{
	"Object": true, "String": true, "CharSequence": true, "StringBuffer": true,
	"StringBuilder": true, "Boolean": true, "Byte": true, "Character": true,
	"Short": true, "Integer": true, "Long": true, "Float": true, "Double": true,
	"Number": true, "Class": true, "ClassLoader": true, "Comparable": true,
	"Cloneable": true, "Iterable": true, "Runnable": true, "AutoCloseable": true,
	"Thread": true, "Throwable": true, "Exception": true,
	"RuntimeException": true, "Error": true, "Void": true,
}

func (s *scanner) parseQualifiedName() string {
	var sb strings.Builder
	for s.tok.Kind == TokenIdent {
		sb.WriteString(s.tok.Literal)
		s.next()
		if !s.is(".") {
			break
		}
		sb.WriteString(".")
		s.next()
		if s.is("*") {
			break
		}
	}
	return sb.String()
}

func (s *scanner) qualify(simple string) string {
	if s.pkg == "" {
		return simple
	}
	return s.pkg + "." + simple
}

// skipAnnotation skips "@Name" or "@Name(...)".
func (s *scanner) skipAnnotation() {
	s.next() // @
	s.parseQualifiedName()
	if s.is("(") {
		s.skipParens()
	}
}

func (s *scanner) skipParens() { s.skipBalanced("(", ")") }
func (s *scanner) skipBraces() { s.skipBalanced("{", "}") }
func (s *scanner) skipAngles() { s.skipBalanced("<", ">") }

func (s *scanner) skipBalanced(open, close string) {
	if !s.accept(open) {
		return
	}
	depth := 1
	for s.tok.Kind != TokenEOF && depth > 0 {
		switch s.tok.Literal {
		case open:
			depth++
		case close:
			depth--
		}
		s.next()
	}
}

// skipToMemberEnd skips a member body ("{...}") or the remainder of a field
// or abstract-method declaration up to its semicolon.
func (s *scanner) skipToMemberEnd() {
	for s.tok.Kind != TokenEOF {
		switch {
		case s.is("{"):
			s.skipBraces()
			s.doc = ""
			return
		case s.is(";"):
			s.next()
			s.doc = ""
			return
		case s.is("("):
			s.skipParens()
		default:
			s.next()
		}
	}
}

func (s *scanner) skipThrows() {
	if !s.accept("throws") {
		return
	}
	s.parseTypeList()
}

// scanEnumConstants collects the constant names at the start of an enum
// body. The list ends at ';' or at the closing brace for constant-only enums
// (the caller consumes that brace).
func (s *scanner) scanEnumConstants() []string {
	var constants []string
	depth := 0
	expectName := true
	for s.tok.Kind != TokenEOF {
		switch {
		case s.is("(") || s.is("{"):
			depth++
			s.next()
		case s.is(")"):
			depth--
			s.next()
		case s.is("}"):
			if depth == 0 {
				return constants
			}
			depth--
			s.next()
		case s.is(";") && depth == 0:
			s.next()
			return constants
		case s.is(",") && depth == 0:
			expectName = true
			s.next()
		case s.is("@"):
			s.skipAnnotation()
		case s.tok.Kind == TokenIdent && depth == 0 && expectName:
			constants = append(constants, s.tok.Literal)
			expectName = false
			s.next()
		default:
			s.next()
		}
	}
	return constants
}
