package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()

	assert.Equal(t, []string{"src/main/java"}, c.Source)
	assert.Equal(t, "antdoc", c.Output)
	assert.Error(t, c.Validate(), "defaults alone name no antlib to document")
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "antdoclet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
title: de.unkrig.ant-contrib
source: [src/main/java, src/generated/java]
classpath: [build/classes]
antlibs: [src/main/resources/antlib.xml]
output: build/antdoc
links:
  - url: https://ant.apache.org/manual/
    names:
      org.apache.tools.ant.types.FileSet: Types/fileset.html
`), 0o644))

	c, err := LoadFromFile(path)
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, "de.unkrig.ant-contrib", c.Title)
	assert.Equal(t, []string{"src/main/java", "src/generated/java"}, c.Source)
	assert.Equal(t, []string{"src/main/java", "src/generated/java", "build/classes"}, c.SearchPath())
	assert.Equal(t, "build/antdoc", c.Output)
}

func TestLoadKeepsDefaultsForOmittedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "antdoclet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("antlibs: [antlib.xml]\n"), 0o644))

	c, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"src/main/java"}, c.Source)
	assert.Equal(t, "antdoc", c.Output)
	assert.NoError(t, c.Validate())
}

func TestLoadFailures(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("antlibs: ["), 0o644))
	_, err = LoadFromFile(bad)
	assert.Error(t, err)
}

func TestValidateLinkEntries(t *testing.T) {
	c := DefaultConfig()
	c.Antlibs = []string{"antlib.xml"}
	c.Links = []LinkConfig{{Names: map[string]string{"a.B": "b.html"}}}

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "links[0].url")
}

func TestExternalLinks(t *testing.T) {
	c := &Config{Links: []LinkConfig{{
		URL: "https://ant.apache.org/manual/",
		Names: map[string]string{
			"org.apache.tools.ant.types.FileSet": "Types/fileset.html",
		},
	}}}

	links := c.ExternalLinks()
	target, ok := links.Lookup("org.apache.tools.ant.types.FileSet")
	require.True(t, ok)
	assert.Equal(t, "https://ant.apache.org/manual/Types/fileset.html", target.URL)
	assert.Equal(t, "fileset", target.Label)

	_, ok = links.Lookup("org.apache.tools.ant.types.Path")
	assert.False(t, ok)
}
