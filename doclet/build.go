package doclet

import (
	"os"
	"path/filepath"

	"github.com/aunkrig/antdoclet/antlib"
	"github.com/aunkrig/antdoclet/decl"
)

// Builder assembles the documentation model from registration records.
type Builder struct {
	Store *decl.Store
	Sink  Sink
	// SearchPath is the ordered lookup path for resource records: source
	// directories first, then classpath directories.
	SearchPath []string
}

// Build parses the entry registration files and assembles the grouped model.
// Record-level problems (bad attribute combinations, unknown classes, missing
// includes) are reported and skipped; only an unusable entry file is a
// terminal error, since then there is no model to build at all.
func (b *Builder) Build(entries ...string) (*Model, error) {
	model := NewModel(b.Store, b.Sink)
	state := &buildState{
		builder: b,
		model:   model,
		visited: make(map[string]bool),
		warned:  make(map[antlib.Kind]bool),
	}

	for _, entry := range entries {
		records, err := antlib.ParseFile(entry)
		if err != nil {
			return nil, err
		}
		state.markVisited(entry)
		state.process(records, filepath.Dir(entry))
	}

	return model, nil
}

type buildState struct {
	builder *Builder
	model   *Model
	visited map[string]bool // absolute include paths, cycle guard
	warned  map[antlib.Kind]bool
}

func (st *buildState) process(records []antlib.Record, baseDir string) {
	for _, rec := range records {
		st.processRecord(rec, baseDir)
	}
}

func (st *buildState) processRecord(rec antlib.Record, baseDir string) {
	sink := st.builder.Sink

	if !rec.Kind.Supported() {
		// Macro, preset and script definitions have no inspectable class.
		if !st.warned[rec.Kind] {
			st.warned[rec.Kind] = true
			warnf(sink, rec.Pos, "%s records are not supported and are not documented", rec.Kind)
		}
		return
	}

	switch {
	case rec.File != "" && rec.Name == "" && rec.ClassName == "" && rec.Resource == "":
		st.include(filepath.Join(baseDir, rec.File), rec)

	case rec.Resource != "" && rec.Name == "" && rec.ClassName == "" && rec.File == "":
		path, ok := st.findResource(rec.Resource)
		if !ok {
			errorf(sink, rec.Pos, "resource %q not found on the search path", rec.Resource)
			return
		}
		st.include(path, rec)

	case rec.Name != "" && rec.ClassName != "" && rec.File == "" && rec.Resource == "":
		st.register(rec)

	default:
		errorf(sink, rec.Pos,
			"invalid %s record: exactly one of name+classname, file or resource must be given", rec.Kind)
	}
}

// include expands a nested registration file in place. Self-referential
// includes are detected and skipped with a warning.
func (st *buildState) include(path string, rec antlib.Record) {
	if !st.markVisited(path) {
		warnf(st.builder.Sink, rec.Pos, "circular include of %s skipped", path)
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		errorf(st.builder.Sink, rec.Pos, "cannot read included registration file: %v", err)
		return
	}

	var records []antlib.Record
	if filepath.Ext(path) == ".properties" {
		records = antlib.ParseProperties(data, path, rec.Kind)
	} else {
		records, err = antlib.Parse(data, path)
		if err != nil {
			errorf(st.builder.Sink, rec.Pos, "included registration file is malformed: %v", err)
			return
		}
	}
	st.process(records, filepath.Dir(path))
}

func (st *buildState) markVisited(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if st.visited[abs] {
		return false
	}
	st.visited[abs] = true
	return true
}

func (st *buildState) findResource(resource string) (string, bool) {
	for _, dir := range st.builder.SearchPath {
		candidate := filepath.Join(dir, filepath.FromSlash(resource))
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// register builds one component from a direct name+classname record and files
// it under its type groups.
func (st *buildState) register(rec antlib.Record) {
	sink := st.builder.Sink

	impl := st.builder.Store.FindDeclaration(rec.ClassName)
	if impl == nil {
		errorf(sink, rec.Pos, "class %s of %s %q is unknown", rec.ClassName, rec.Kind, rec.Name)
		return
	}

	var adaptTo *decl.Declaration
	if rec.AdaptTo != "" {
		adaptTo = st.builder.Store.FindDeclaration(rec.AdaptTo)
		if adaptTo == nil {
			errorf(sink, rec.Pos, "adaptto class %s of %s %q is unknown", rec.AdaptTo, rec.Kind, rec.Name)
			return
		}
	}

	classification := st.model.Classification(impl)
	component := &Component{
		Name:           rec.Name,
		Implementation: impl,
		AdaptTo:        adaptTo,
		CharacterData:  classification.CharacterData,
		Attributes:     classification.Attributes,
		Subelements:    classification.Subelements,
		Pos:            rec.Pos,
	}

	if rec.Kind == antlib.KindTask {
		st.model.taskGroup.add(component)
		return
	}
	for _, g := range st.model.GroupsFor(impl, sink) {
		g.add(component)
	}
}
