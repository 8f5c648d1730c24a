package javasrc

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aunkrig/antdoclet/decl"
)

// ScanDirs scans every .java file under the given source directories into the
// store. Per-file failures are reported through report and do not stop the
// scan; only an unusable source directory is an error.
func ScanDirs(store *decl.Store, dirs []string, report func(path string, err error)) error {
	for _, dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			return fmt.Errorf("source directory %s: %w", dir, err)
		}
		matches, err := doublestar.FilepathGlob(filepath.Join(dir, "**", "*.java"))
		if err != nil {
			return fmt.Errorf("scan %s: %w", dir, err)
		}
		sort.Strings(matches)
		for _, path := range matches {
			if err := scanFile(store, path); err != nil && report != nil {
				report(path, err)
			}
		}
	}
	return nil
}

func scanFile(store *decl.Store, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	file, err := ParseFile(content, path)
	if err != nil {
		return err
	}
	for _, d := range file.Declarations {
		store.Add(d)
	}
	return nil
}
