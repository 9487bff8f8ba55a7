package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// listFiles returns the paths of all regular files under root, relative to
// root, slash separated and sorted. Symlinks to regular files are listed,
// symlinked folders are not descended into and other special files are skipped.
// A dangling symlink is an error.
func listFiles(root string) (list []string, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		switch {
		case d.Type().IsRegular():
		case d.Type()&fs.ModeSymlink != 0:
			fi, err := os.Stat(path)
			if err != nil {
				return err
			}
			if !fi.Mode().IsRegular() {
				return nil
			}
		default:
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		list = append(list, filepath.ToSlash(rel))

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(list)

	return
}
