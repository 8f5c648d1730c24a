// Package javadoc parses doc comments into a description body and a multimap
// of block tags. Only the inline tags the doclet renders are modeled; anything
// else degrades to plain text.
package javadoc

// Node is implemented by all body nodes.
type Node interface {
	node()
}

// DocComment is one parsed doc comment.
type DocComment struct {
	Body []Node     // description, before the first block tag
	Tags []BlockTag // @tag entries in declaration order
}

// BlockTag is a single @name entry with its raw text content.
type BlockTag struct {
	Name string // without the leading "@"
	Text string
}

// Text is plain text content, HTML markup included verbatim.
type Text struct {
	Content string
}

func (Text) node() {}

// Code is an {@code ...} or {@literal ...} inline tag.
type Code struct {
	Content string
}

func (Code) node() {}

// Link is an {@link ...} or {@linkplain ...} inline tag.
type Link struct {
	Reference string // e.g. "org.apache.tools.ant.types.FileSet#setDir"
	Label     string // optional label text
	Plain     bool   // true for {@linkplain}
}

func (Link) node() {}

// TagValues returns the text of every block tag with the given name, in
// declaration order. The result is empty, never nil-checked by callers.
func (d *DocComment) TagValues(name string) []string {
	var values []string
	for _, t := range d.Tags {
		if t.Name == name {
			values = append(values, t.Text)
		}
	}
	return values
}

// TagValue returns the first value of the named block tag, or "".
func (d *DocComment) TagValue(name string) string {
	for _, t := range d.Tags {
		if t.Name == name {
			return t.Text
		}
	}
	return ""
}

// IsEmpty reports whether the comment has neither description nor tags.
func (d *DocComment) IsEmpty() bool {
	return len(d.Body) == 0 && len(d.Tags) == 0
}
