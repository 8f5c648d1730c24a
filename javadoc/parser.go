package javadoc

import (
	"strings"
	"unicode"
)

// Parser is a recursive-descent parser for doc comments.
type Parser struct {
	input []rune
	pos   int
	len   int
}

// Parse parses a raw doc comment (with or without its /** */ frame) into a
// DocComment. An empty or absent comment parses to an empty DocComment.
func Parse(comment string) *DocComment {
	p := &Parser{input: []rune(comment)}
	p.len = len(p.input)
	return p.parseDocComment()
}

func (p *Parser) parseDocComment() *DocComment {
	p.skipCommentStart()

	doc := &DocComment{}
	doc.Body = trimBody(p.parseContent(false))
	doc.Tags = p.parseBlockTags()
	return doc
}

func (p *Parser) skipCommentStart() {
	p.skipWhitespace()
	if p.match("/**") {
		p.advance(3)
	}
	p.skipLinePrefix()
}

// skipLinePrefix skips leading whitespace and a single asterisk at the start
// of a comment line.
func (p *Parser) skipLinePrefix() {
	p.skipHorizontalWhitespace()
	if p.peek() == '*' && p.peekAt(1) != '/' {
		p.advance(1)
		if p.peek() == ' ' {
			p.advance(1)
		}
	}
}

// parseContent parses body content until the end of the comment or, when not
// inside an inline tag, a block tag at the start of a line. Inside an inline
// tag parsing stops at the matching unnested '}'.
func (p *Parser) parseContent(inInlineTag bool) []Node {
	var nodes []Node
	var textBuf strings.Builder
	depth := 0

	flushText := func() {
		if textBuf.Len() > 0 {
			nodes = append(nodes, Text{Content: textBuf.String()})
			textBuf.Reset()
		}
	}

	for p.pos < p.len {
		ch := p.peek()

		if ch == '*' && p.peekAt(1) == '/' {
			break
		}
		if !inInlineTag && p.isAtBlockTag() {
			break
		}

		switch ch {
		case '\n', '\r':
			textBuf.WriteRune('\n')
			p.advance(1)
			if ch == '\r' && p.peek() == '\n' {
				p.advance(1)
			}
			p.skipLinePrefix()

		case '{':
			if p.peekAt(1) == '@' {
				flushText()
				if node := p.parseInlineTag(); node != nil {
					nodes = append(nodes, node)
				}
			} else {
				if inInlineTag {
					depth++
				}
				textBuf.WriteRune(ch)
				p.advance(1)
			}

		case '}':
			if inInlineTag {
				if depth == 0 {
					flushText()
					return nodes
				}
				depth--
			}
			textBuf.WriteRune(ch)
			p.advance(1)

		default:
			textBuf.WriteRune(ch)
			p.advance(1)
		}
	}

	flushText()
	return nodes
}

// parseInlineTag parses one {@name ...} tag. The leading '{' has been seen
// but not consumed.
func (p *Parser) parseInlineTag() Node {
	p.advance(2) // {@
	name := p.scanTagName()
	p.skipWhitespace()

	switch name {
	case "code", "literal":
		return Code{Content: p.scanBalanced()}
	case "link", "linkplain":
		ref := p.scanReference()
		p.skipHorizontalWhitespace()
		label := strings.TrimSpace(p.scanBalanced())
		return Link{Reference: ref, Label: label, Plain: name == "linkplain"}
	case "value":
		return Link{Reference: strings.TrimSpace(p.scanBalanced())}
	default:
		// Unknown inline tag: keep its raw content as text.
		content := p.scanBalanced()
		if content == "" {
			return nil
		}
		return Text{Content: content}
	}
}

// scanBalanced consumes content up to the tag's closing '}', honoring nested
// braces so {@code class Foo { }} survives intact.
func (p *Parser) scanBalanced() string {
	var sb strings.Builder
	depth := 0
	for p.pos < p.len {
		ch := p.peek()
		if ch == '*' && p.peekAt(1) == '/' {
			break
		}
		if ch == '{' {
			depth++
		}
		if ch == '}' {
			if depth == 0 {
				p.advance(1)
				break
			}
			depth--
		}
		if ch == '\n' || ch == '\r' {
			sb.WriteRune('\n')
			p.advance(1)
			if ch == '\r' && p.peek() == '\n' {
				p.advance(1)
			}
			p.skipLinePrefix()
			continue
		}
		sb.WriteRune(ch)
		p.advance(1)
	}
	return sb.String()
}

// scanReference consumes a link reference: everything up to whitespace or the
// closing brace.
func (p *Parser) scanReference() string {
	var sb strings.Builder
	for p.pos < p.len {
		ch := p.peek()
		if unicode.IsSpace(ch) || ch == '}' {
			break
		}
		sb.WriteRune(ch)
		p.advance(1)
	}
	return sb.String()
}

func (p *Parser) parseBlockTags() []BlockTag {
	var tags []BlockTag
	for p.pos < p.len {
		if p.peek() == '*' && p.peekAt(1) == '/' {
			break
		}
		if !p.isAtBlockTag() {
			p.advance(1)
			continue
		}
		p.advance(1) // @
		name := p.scanTagName()
		p.skipHorizontalWhitespace()
		text := p.scanBlockTagText()
		tags = append(tags, BlockTag{Name: name, Text: text})
	}
	return tags
}

// scanBlockTagText consumes until the next block tag at the start of a line
// or the end of the comment.
func (p *Parser) scanBlockTagText() string {
	var sb strings.Builder
	for p.pos < p.len {
		ch := p.peek()
		if ch == '*' && p.peekAt(1) == '/' {
			break
		}
		if p.isAtBlockTag() {
			break
		}
		if ch == '\n' || ch == '\r' {
			sb.WriteRune('\n')
			p.advance(1)
			if ch == '\r' && p.peek() == '\n' {
				p.advance(1)
			}
			p.skipLinePrefix()
			p.skipHorizontalWhitespace()
			continue
		}
		sb.WriteRune(ch)
		p.advance(1)
	}
	return strings.TrimSpace(sb.String())
}

// isAtBlockTag reports whether an '@' at the current position starts a block
// tag, which requires being at the start of a (prefix-stripped) line.
func (p *Parser) isAtBlockTag() bool {
	if p.peek() != '@' {
		return false
	}
	next := p.peekAt(1)
	if !unicode.IsLetter(next) {
		return false
	}
	// Only '@' at the start of the logical line begins a block tag: look back
	// over horizontal whitespace and the line-prefix asterisk for the line
	// start.
	for i := p.pos - 1; i >= 0; i-- {
		ch := p.input[i]
		if ch == '\n' || ch == '\r' {
			return true
		}
		if ch == '*' {
			j := i - 1
			for j >= 0 && (p.input[j] == ' ' || p.input[j] == '\t') {
				j--
			}
			if j < 0 || p.input[j] == '\n' || p.input[j] == '\r' {
				return true
			}
		}
		if ch != ' ' && ch != '\t' {
			return false
		}
	}
	return true
}

func (p *Parser) scanTagName() string {
	var sb strings.Builder
	for p.pos < p.len {
		ch := p.peek()
		if !unicode.IsLetter(ch) && !unicode.IsDigit(ch) && ch != '.' {
			break
		}
		sb.WriteRune(ch)
		p.advance(1)
	}
	return sb.String()
}

func (p *Parser) peek() rune {
	if p.pos >= p.len {
		return 0
	}
	return p.input[p.pos]
}

func (p *Parser) peekAt(offset int) rune {
	if p.pos+offset >= p.len {
		return 0
	}
	return p.input[p.pos+offset]
}

func (p *Parser) advance(n int) {
	p.pos += n
	if p.pos > p.len {
		p.pos = p.len
	}
}

func (p *Parser) match(s string) bool {
	for i, ch := range s {
		if p.peekAt(i) != ch {
			return false
		}
	}
	return true
}

func (p *Parser) skipWhitespace() {
	for p.pos < p.len && unicode.IsSpace(p.peek()) {
		p.advance(1)
	}
}

func (p *Parser) skipHorizontalWhitespace() {
	for p.pos < p.len && (p.peek() == ' ' || p.peek() == '\t') {
		p.advance(1)
	}
}

// trimBody drops leading and trailing whitespace-only text nodes and trims
// the outermost text content.
func trimBody(nodes []Node) []Node {
	for len(nodes) > 0 {
		t, ok := nodes[0].(Text)
		if !ok {
			break
		}
		trimmed := strings.TrimLeft(t.Content, " \t\n")
		if trimmed != "" {
			nodes[0] = Text{Content: trimmed}
			break
		}
		nodes = nodes[1:]
	}
	for len(nodes) > 0 {
		t, ok := nodes[len(nodes)-1].(Text)
		if !ok {
			break
		}
		trimmed := strings.TrimRight(t.Content, " \t\n")
		if trimmed != "" {
			nodes[len(nodes)-1] = Text{Content: trimmed}
			break
		}
		nodes = nodes[:len(nodes)-1]
	}
	return nodes
}
