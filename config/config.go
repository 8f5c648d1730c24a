// Package config provides run configuration loading for antdoclet.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aunkrig/antdoclet/doclet"
)

// Config represents one documentation run.
type Config struct {
	// Title is the documentation title shown on the overview page.
	Title string `yaml:"title"`
	// Source lists the source root directories, scanned recursively for
	// .java files.
	Source []string `yaml:"source"`
	// Classpath lists extra directories searched for registration resources
	// after the source roots.
	Classpath []string `yaml:"classpath"`
	// Antlibs lists the registration entry files (antlib XML documents).
	Antlibs []string `yaml:"antlibs"`
	// Output is the directory the page tree is written to.
	Output string `yaml:"output"`
	// Links points classes documented elsewhere at their pages.
	Links []LinkConfig `yaml:"links"`
}

// LinkConfig maps qualified class names to pages under one external
// documentation root. Each Names value is a page path relative to URL; the
// link label is the page's file stem.
type LinkConfig struct {
	URL   string            `yaml:"url"`
	Names map[string]string `yaml:"names"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:  "Ant library documentation",
		Source: []string{"src/main/java"},
		Output: "antdoc",
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if len(c.Antlibs) == 0 {
		return fmt.Errorf("antlibs is required: at least one registration file to document")
	}
	if len(c.Source) == 0 {
		return fmt.Errorf("source is required: at least one source root directory")
	}
	if c.Output == "" {
		return fmt.Errorf("output is required")
	}
	for i, link := range c.Links {
		if link.URL == "" {
			return fmt.Errorf("links[%d].url is required", i)
		}
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file, on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return config, nil
}

// SearchPath returns the resource lookup path: source roots first, then
// classpath directories.
func (c *Config) SearchPath() []string {
	return append(append([]string{}, c.Source...), c.Classpath...)
}

// ExternalLinks builds the external link registry from the links entries.
func (c *Config) ExternalLinks() *doclet.ExternalLinks {
	links := doclet.NewExternalLinks()
	for _, entry := range c.Links {
		base := strings.TrimSuffix(entry.URL, "/")
		for qualifiedName, page := range entry.Names {
			links.Add(qualifiedName, doclet.ExternalTarget{
				URL:   base + "/" + strings.TrimPrefix(page, "/"),
				Label: pageStem(page),
			})
		}
	}
	return links
}

func pageStem(page string) string {
	base := filepath.Base(page)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
