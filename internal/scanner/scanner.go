package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindByExtension returns the regular files directly under dir whose
// extension matches ext (given without the leading dot). Matching is an
// exact suffix comparison, case-insensitive: "JPG" matches "jpg" and
// "JPG" but never "jpeg".
//
// An unreadable or missing directory is a soft failure and yields no
// results rather than an error; a restricted scan root must not abort
// the run. Subdirectories, symlinks to directories, and entries without
// an extension are excluded.
func FindByExtension(dir, ext string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		// Stat follows symlinks, so a symlink to a directory does not
		// pass the regular-file check.
		path := filepath.Join(dir, entry.Name())
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		fileExt := filepath.Ext(entry.Name())
		if fileExt == "" {
			continue
		}
		if strings.EqualFold(strings.TrimPrefix(fileExt, "."), ext) {
			paths = append(paths, path)
		}
	}

	return paths
}

// FindAll runs FindByExtension once per extension, merges the results,
// and sorts them lexicographically so that downstream output is
// deterministic regardless of directory read order.
func FindAll(dir string, exts []string) []string {
	var merged []string
	for _, ext := range exts {
		merged = append(merged, FindByExtension(dir, ext)...)
	}
	sort.Strings(merged)
	return merged
}
