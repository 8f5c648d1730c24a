// Package antlib parses component-registration files: antlib XML documents
// listing taskdef/typedef records, and the properties format traditionally
// used by taskdef resources (name=classname per line).
package antlib

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aunkrig/antdoclet/decl"
)

// Kind is the registration record flavor, named after its XML element.
type Kind string

const (
	KindTask   Kind = "taskdef"
	KindType   Kind = "typedef"
	KindMacro  Kind = "macrodef"
	KindPreset Kind = "presetdef"
	KindScript Kind = "scriptdef"
)

// Supported reports whether records of this kind contribute components to
// the documentation model. Macro, preset and script definitions do not.
func (k Kind) Supported() bool {
	return k == KindTask || k == KindType
}

// Record is one registration entry. Exactly one of the three shapes is
// valid: {Name, ClassName[, AdaptTo]}, {File} or {Resource}; the model
// builder rejects other combinations per record.
type Record struct {
	Kind      Kind
	Name      string
	ClassName string
	AdaptTo   string
	File      string
	Resource  string
	Pos       decl.Position
}

// ParseFile reads and parses a registration file. Read and XML well-formedness
// failures are terminal: with no parsable records there is nothing to build.
func ParseFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registration file: %w", err)
	}
	return Parse(data, path)
}

// Parse parses an antlib XML document. The root element may be <antlib>,
// <project>, or a bare definition element.
func Parse(data []byte, path string) ([]Record, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	var records []Record

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: malformed XML: %w", path, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch Kind(start.Name.Local) {
		case KindTask, KindType, KindMacro, KindPreset, KindScript:
			rec := Record{
				Kind: Kind(start.Name.Local),
				Pos:  decl.Position{File: path, Line: lineAt(data, dec.InputOffset())},
			}
			for _, attr := range start.Attr {
				switch attr.Name.Local {
				case "name":
					rec.Name = attr.Value
				case "classname":
					rec.ClassName = attr.Value
				case "adaptto":
					rec.AdaptTo = attr.Value
				case "file":
					rec.File = attr.Value
				case "resource":
					rec.Resource = attr.Value
				}
			}
			records = append(records, rec)
			if err := dec.Skip(); err != nil {
				return nil, fmt.Errorf("%s: malformed XML: %w", path, err)
			}
		}
	}

	return records, nil
}

// ParseProperties parses the properties resource format: one
// "name=classname" pair per line, '#' and '!' comments, blank lines ignored.
// All records take the given kind.
func ParseProperties(data []byte, path string, kind Kind) []Record {
	var records []Record
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}
		eq := strings.IndexAny(line, "=:")
		if eq <= 0 {
			continue
		}
		records = append(records, Record{
			Kind:      kind,
			Name:      strings.TrimSpace(line[:eq]),
			ClassName: strings.TrimSpace(line[eq+1:]),
			Pos:       decl.Position{File: path, Line: i + 1},
		})
	}
	return records
}

// lineAt returns the 1-based line of the byte offset in data.
func lineAt(data []byte, offset int64) int {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	return 1 + bytes.Count(data[:offset], []byte("\n"))
}
