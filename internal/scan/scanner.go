// Package scan walks the configured directory trees and produces the flat,
// deterministic list of candidate file paths for fingerprinting.
package scan

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
)

// Walk recursively lists every regular file under the given directories,
// excluding any whose base name starts with one of the ignore prefixes.
// Unreadable entries are logged and skipped, never fatal for the whole
// scan. The result is sorted path-lexicographically so repeated runs see
// files in the same order.
func Walk(directories []string, ignorePrefixes []string, logger *slog.Logger) ([]string, error) {
	var paths []string

	for _, dir := range directories {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == dir {
					return err
				}
				logger.Warn("skipping unreadable path", "path", path, "error", err)
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if ignored(d.Name(), ignorePrefixes) {
				return nil
			}
			paths = append(paths, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(paths)
	return paths, nil
}

func ignored(name string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
