package javadoc

import (
	"testing"
)

func TestParseSimpleText(t *testing.T) {
	doc := Parse("/** Simple text. */")

	if len(doc.Body) != 1 {
		t.Fatalf("expected 1 body node, got %d", len(doc.Body))
	}

	text, ok := doc.Body[0].(Text)
	if !ok {
		t.Fatalf("expected Text node, got %T", doc.Body[0])
	}

	if text.Content != "Simple text." {
		t.Errorf("expected 'Simple text.', got %q", text.Content)
	}
}

func TestParseMultiLineComment(t *testing.T) {
	doc := Parse("/**\n * First line.\n * Second line.\n */")

	text := PlainText(doc.Body)
	if text != "First line. Second line." {
		t.Errorf("got %q", text)
	}
}

func TestParseCodeTag(t *testing.T) {
	doc := Parse("/** Use {@code Map<String, List<Integer>>} for this. */")

	if len(doc.Body) != 3 {
		t.Fatalf("expected 3 body nodes, got %d: %+v", len(doc.Body), doc.Body)
	}

	code, ok := doc.Body[1].(Code)
	if !ok {
		t.Fatalf("expected Code node, got %T", doc.Body[1])
	}

	expected := "Map<String, List<Integer>>"
	if code.Content != expected {
		t.Errorf("expected %q, got %q", expected, code.Content)
	}
}

func TestParseCodeTagWithBraces(t *testing.T) {
	doc := Parse("/** Use {@code class Foo { int x; }} for this. */")

	if len(doc.Body) != 3 {
		t.Fatalf("expected 3 body nodes, got %d: %+v", len(doc.Body), doc.Body)
	}

	code, ok := doc.Body[1].(Code)
	if !ok {
		t.Fatalf("expected Code node, got %T", doc.Body[1])
	}

	expected := "class Foo { int x; }"
	if code.Content != expected {
		t.Errorf("expected %q, got %q", expected, code.Content)
	}
}

func TestParseLinkTag(t *testing.T) {
	doc := Parse("/** See {@link org.apache.tools.ant.types.FileSet} for more. */")

	if len(doc.Body) != 3 {
		t.Fatalf("expected 3 body nodes, got %d", len(doc.Body))
	}

	link, ok := doc.Body[1].(Link)
	if !ok {
		t.Fatalf("expected Link node, got %T", doc.Body[1])
	}

	if link.Reference != "org.apache.tools.ant.types.FileSet" {
		t.Errorf("expected reference, got %q", link.Reference)
	}
	if link.Plain {
		t.Error("expected Plain to be false")
	}
}

func TestParseLinkTagWithLabel(t *testing.T) {
	doc := Parse("/** See {@link FileSet#setDir the directory} here. */")

	link, ok := doc.Body[1].(Link)
	if !ok {
		t.Fatalf("expected Link node, got %T", doc.Body[1])
	}

	if link.Reference != "FileSet#setDir" {
		t.Errorf("got reference %q", link.Reference)
	}
	if link.Label != "the directory" {
		t.Errorf("got label %q", link.Label)
	}
}

func TestParseLinkplainTag(t *testing.T) {
	doc := Parse("/** {@linkplain Task the task} */")

	link, ok := doc.Body[0].(Link)
	if !ok {
		t.Fatalf("expected Link node, got %T", doc.Body[0])
	}
	if !link.Plain {
		t.Error("expected Plain to be true")
	}
}

func TestParseBlockTags(t *testing.T) {
	doc := Parse(`/**
 * Sets the message.
 *
 * @param msg the message text
 * @since Ant 1.4
 */`)

	if len(doc.Tags) != 2 {
		t.Fatalf("expected 2 tags, got %d: %+v", len(doc.Tags), doc.Tags)
	}

	if doc.Tags[0].Name != "param" || doc.Tags[0].Text != "msg the message text" {
		t.Errorf("got tag %+v", doc.Tags[0])
	}
	if doc.Tags[1].Name != "since" || doc.Tags[1].Text != "Ant 1.4" {
		t.Errorf("got tag %+v", doc.Tags[1])
	}
}

func TestParseDottedTagNames(t *testing.T) {
	doc := Parse(`/**
 * A resource collection base.
 *
 * @ant.typeGroupSubdir    resourceCollections
 * @ant.typeGroupName      Resource collection
 * @ant.typeGroupHeading   Resource collections
 */`)

	if got := doc.TagValue("ant.typeGroupSubdir"); got != "resourceCollections" {
		t.Errorf("got subdir %q", got)
	}
	if got := doc.TagValue("ant.typeGroupName"); got != "Resource collection" {
		t.Errorf("got name %q", got)
	}
	if len(doc.TagValues("ant.typeGroupHeading")) != 1 {
		t.Errorf("got tags %+v", doc.Tags)
	}
}

func TestParseMultiLineBlockTag(t *testing.T) {
	doc := Parse(`/**
 * @param msg the message,
 *            possibly multi-line
 */`)

	if len(doc.Tags) != 1 {
		t.Fatalf("expected 1 tag, got %d", len(doc.Tags))
	}
	want := "msg the message,\npossibly multi-line"
	if doc.Tags[0].Text != want {
		t.Errorf("got %q, want %q", doc.Tags[0].Text, want)
	}
}

func TestAtSignInsideLineIsNotBlockTag(t *testing.T) {
	doc := Parse("/** Mail to user@example.com please. */")

	if len(doc.Tags) != 0 {
		t.Errorf("expected no tags, got %+v", doc.Tags)
	}
	if text := PlainText(doc.Body); text != "Mail to user@example.com please." {
		t.Errorf("got %q", text)
	}
}

func TestParseEmptyComment(t *testing.T) {
	for _, raw := range []string{"", "/** */", "/**\n *\n */"} {
		doc := Parse(raw)
		if !doc.IsEmpty() {
			t.Errorf("expected empty doc for %q, got %+v", raw, doc)
		}
	}
}

func TestFirstSentence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Echoes a message. The message may repeat.", "Echoes a message."},
		{"No trailing period", "No trailing period"},
		{"Ends with period.", "Ends with period."},
		{"Version 1.2 of the tool. Rest.", "Version 1.2 of the tool."},
	}
	for _, tt := range tests {
		if got := FirstSentence(tt.in); got != tt.want {
			t.Errorf("FirstSentence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
