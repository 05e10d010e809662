// Package fsutil provides file system utility functions.
package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FindFilesByExtension resolves each root to the files ending in extension:
// a file root is kept as is when it matches, a directory root is walked
// recursively in lexical order. Results are de-duplicated and keep the
// order in which they were found. Roots that do not exist are returned in
// missing instead of failing the search.
func FindFilesByExtension(roots []string, extension string) (files, missing []string, err error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			files = append(files, p)
			seen[p] = struct{}{}
		}
	}

	for _, root := range roots {
		info, statErr := os.Stat(root)
		if statErr != nil {
			if os.IsNotExist(statErr) {
				missing = append(missing, root)
				continue
			}
			return nil, nil, errors.Wrapf(statErr, "error accessing path %s", root)
		}

		if !info.IsDir() {
			if filepath.Ext(root) == extension {
				add(root)
			}
			continue
		}

		walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && filepath.Ext(path) == extension {
				add(path)
			}
			return nil
		})
		if walkErr != nil {
			return nil, nil, errors.Wrapf(walkErr, "error walking %s", root)
		}
	}

	return files, missing, nil
}
