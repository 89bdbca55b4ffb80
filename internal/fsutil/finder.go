// Package fsutil provides file system utility functions.
package fsutil

import (
	"io/fs"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// FindFilesByExtension recursively searches fsys for all files ending with
// the specified extension. Paths are returned in natural order, so
// "2-state.hcl" sorts before "10-closing.hcl".
func FindFilesByExtension(fsys fs.FS, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	SortNatural(files)
	return files, nil
}

// SortNatural sorts slash-separated paths in natural order, directory by
// directory.
func SortNatural(paths []string) {
	sort.SliceStable(paths, func(i, j int) bool {
		a, b := strings.Split(paths[i], "/"), strings.Split(paths[j], "/")
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return natural.Less(a[k], b[k])
			}
		}
		return len(a) < len(b)
	})
}
