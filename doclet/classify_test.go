package doclet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aunkrig/antdoclet/decl"
)

func classify(t *testing.T, store *decl.Store, d *decl.Declaration) (*Classification, *RecordingSink) {
	t.Helper()
	sink := &RecordingSink{}
	return NewClassifier(store, sink).Classify(d), sink
}

func TestClassifyEcho(t *testing.T) {
	echo := newClass("pkg.Echo", "")
	setter(echo, "setMessage", "/** The message. */", "java.lang.String")
	setter(echo, "setProject", "", "org.apache.tools.ant.Project")
	method(echo, "addText", "", voidType, stringType)
	method(echo, "addConfiguredFileSet", "", voidType, decl.Type{Name: "pkg.FileSet"})
	method(echo, "createPath", "", decl.Type{Name: "pkg.Path"})
	method(echo, "add", "", voidType, decl.Type{Name: "pkg.ResourceCollection"})
	method(echo, "execute", "", voidType)

	c, sink := classify(t, storeWith(echo), echo)

	require.Len(t, c.Attributes, 1, "setProject must be skipped")
	assert.Equal(t, "message", c.Attributes[0].Name)
	assert.Equal(t, stringType, c.Attributes[0].Type)
	assert.Equal(t, "message", c.Attributes[0].Hint)

	require.NotNil(t, c.CharacterData)
	assert.Equal(t, "addText", c.CharacterData.Name)

	require.Len(t, c.Subelements, 3)
	assert.Equal(t, "fileSet", c.Subelements[0].Name)
	assert.Equal(t, "pkg.FileSet", c.Subelements[0].Type.Name)
	assert.Equal(t, "", c.Subelements[1].Name, "created subelement is typed")
	assert.Equal(t, "pkg.Path", c.Subelements[1].Type.Name)
	assert.Equal(t, "", c.Subelements[2].Name, "bare add is typed")
	assert.Equal(t, "pkg.ResourceCollection", c.Subelements[2].Type.Name)

	assert.Empty(t, sink.Diagnostics)
}

func TestClassifyPrecedenceOrder(t *testing.T) {
	d := newClass("pkg.Sample", "")
	// addText with a non-String parameter is not the character-data hook;
	// the next matching rule (named adder) takes it.
	method(d, "addText", "", voidType, decl.Type{Name: "pkg.Text"})
	// A setter with two parameters is not an attribute and matches nothing.
	method(d, "setPair", "", voidType, stringType, stringType)
	// A creator with parameters is not a creator.
	method(d, "createThing", "", decl.Type{Name: "pkg.Thing"}, stringType)

	c, _ := classify(t, storeWith(d), d)

	assert.Nil(t, c.CharacterData)
	assert.Empty(t, c.Attributes)
	require.Len(t, c.Subelements, 1)
	assert.Equal(t, "text", c.Subelements[0].Name)
}

func TestAttributeOverrideKeepsDocumentedAncestor(t *testing.T) {
	base := newClass("pkg.Base", "")
	inherited := setter(base, "setDir", "/** The base directory. */", "java.io.File")
	derived := newClass("pkg.Derived", "pkg.Base")
	setter(derived, "setDir", "", "java.io.File")

	c, _ := classify(t, storeWith(base, derived), derived)

	require.Len(t, c.Attributes, 1)
	assert.Same(t, inherited, c.Attributes[0].Member,
		"undocumented override yields to the documented ancestor declaration")
}

func TestAttributeOverrideOwnClassWinsTies(t *testing.T) {
	base := newClass("pkg.Base", "")
	setter(base, "setDir", "/** Base doc. */", "java.io.File")
	derived := newClass("pkg.Derived", "pkg.Base")
	own := setter(derived, "setDir", "/** Derived doc. */", "java.io.File")

	c, _ := classify(t, storeWith(base, derived), derived)

	require.Len(t, c.Attributes, 1)
	assert.Same(t, own, c.Attributes[0].Member)
}

func TestAttributeCollisionWithoutDocsFirstSeenWins(t *testing.T) {
	base := newClass("pkg.Base", "")
	setter(base, "setDir", "", "java.io.File")
	derived := newClass("pkg.Derived", "pkg.Base")
	own := setter(derived, "setDir", "", "java.io.File")

	c, _ := classify(t, storeWith(base, derived), derived)

	require.Len(t, c.Attributes, 1)
	assert.Same(t, own, c.Attributes[0].Member)
}

func TestDifferentTypesAreDistinctAttributes(t *testing.T) {
	d := newClass("pkg.Sample", "")
	setter(d, "setValue", "", "java.lang.String")
	method(d, "setValue", "", voidType, decl.Type{Name: "int"})

	c, _ := classify(t, storeWith(d), d)

	assert.Len(t, c.Attributes, 2)
}

func TestSubelementReplacementKeepsPosition(t *testing.T) {
	base := newClass("pkg.Base", "")
	documented := method(base, "addConfiguredFileSet", "/** A set of files. */", voidType, decl.Type{Name: "pkg.FileSet"})
	derived := newClass("pkg.Derived", "pkg.Base")
	method(derived, "addConfiguredFileSet", "", voidType, decl.Type{Name: "pkg.FileSet"})
	method(derived, "addConfiguredPath", "", voidType, decl.Type{Name: "pkg.Path"})

	c, _ := classify(t, storeWith(base, derived), derived)

	require.Len(t, c.Subelements, 2)
	assert.Same(t, documented, c.Subelements[0].Member,
		"replacement happens in place, keeping first-seen order")
	assert.Equal(t, "path", c.Subelements[1].Name)
}

func TestCharacterDataMostDerivedWins(t *testing.T) {
	base := newClass("pkg.Base", "")
	method(base, "addText", "/** documented */", voidType, stringType)
	derived := newClass("pkg.Derived", "pkg.Base")
	own := method(derived, "addText", "", voidType, stringType)

	c, _ := classify(t, storeWith(base, derived), derived)

	// Unlike attributes there is no documentation tie-break for the
	// character-data hook; the most-derived declaration is it.
	assert.Same(t, own, c.CharacterData)
}

func TestSubelementOrderDirective(t *testing.T) {
	// The derived class re-declares fileSet without documentation, so the
	// documented base declaration takes the slot and the entry counts as
	// inherited. The directive then moves the own-declared path adder ahead
	// of it.
	base := newClass("pkg.Base", "")
	method(base, "addConfiguredFileSet", "/** Files to include. */", voidType, decl.Type{Name: "pkg.FileSet"})
	derived := withDoc(newClass("pkg.Derived", "pkg.Base"), `/**
 * @ant.subelementOrder inline
 */`)
	method(derived, "addConfiguredFileSet", "", voidType, decl.Type{Name: "pkg.FileSet"})
	method(derived, "addConfiguredPath", "", voidType, decl.Type{Name: "pkg.Path"})

	c, sink := classify(t, storeWith(base, derived), derived)

	require.Len(t, c.Subelements, 2)
	assert.Equal(t, "path", c.Subelements[0].Name)
	assert.Equal(t, "fileSet", c.Subelements[1].Name)
	assert.Empty(t, sink.Diagnostics)
}

func TestUnknownSubelementOrderWarns(t *testing.T) {
	d := withDoc(newClass("pkg.Sample", ""), `/**
 * @ant.subelementOrder alphabetical
 */`)
	method(d, "addConfiguredFileSet", "", voidType, decl.Type{Name: "pkg.FileSet"})

	_, sink := classify(t, storeWith(d), d)

	require.Len(t, sink.Warnings(), 1)
	assert.Contains(t, sink.Warnings()[0].Message, "subelement order")
}

func TestEnumDefaultValidated(t *testing.T) {
	level := &decl.Declaration{
		Name:          "pkg.Level",
		Kind:          decl.KindEnum,
		EnumConstants: []string{"INFO", "WARN", "ERROR"},
	}
	d := newClass("pkg.Log", "")
	method(d, "setLevel", `/**
 * The log level.
 *
 * @ant.default info
 */`, voidType, decl.Type{Name: "pkg.Level"})
	method(d, "setMode", `/**
 * @ant.default sideways
 */`, voidType, decl.Type{Name: "pkg.Level"})

	c, sink := classify(t, storeWith(level, d), d)

	require.Len(t, c.Attributes, 2)
	assert.Equal(t, "info", c.Attributes[0].Default)
	assert.Equal(t, "sideways", c.Attributes[1].Default)
	require.Len(t, sink.Warnings(), 1)
	assert.Contains(t, sink.Warnings()[0].Message, "sideways")
}

func TestClassificationMemoized(t *testing.T) {
	d := newClass("pkg.Sample", "")
	setter(d, "setName", "", "java.lang.String")

	sink := &RecordingSink{}
	cl := NewClassifier(storeWith(d), sink)
	first := cl.Classify(d)
	second := cl.Classify(d)

	assert.Same(t, first, second)
}
